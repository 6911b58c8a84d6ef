package sink

// Sink is a target that handlers write formatted lines to
type Sink interface {
	// Write records one line. The sink adds the line separator.
	Write(line string) error
}

// Func adapts an ordinary function to the Sink interface
type Func func(line string) error

// Write calls f(line)
func (f Func) Write(line string) error {
	return f(line)
}
