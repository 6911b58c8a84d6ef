package core

// Message is a single log event: a severity and its text.
// A Message is a value; it has no setters and is never changed after
// NewMessage returns, so it can be passed down a handler chain freely.
type Message struct {
	severity Severity
	text     string
}

// NewMessage creates a message
func NewMessage(severity Severity, text string) Message {
	return Message{severity: severity, text: text}
}

// Severity returns the message severity
func (m Message) Severity() Severity {
	return m.severity
}

// Text returns the message text
func (m Message) Text() string {
	return m.text
}

// String returns the message in "<Label>: <text>" form
func (m Message) String() string {
	return m.severity.Label() + ": " + m.text
}
