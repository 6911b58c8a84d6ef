package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logchain/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format renders a message as a single line without a trailing newline
	Format(msg core.Message) string
}

// Config holds common formatter configuration
type Config struct {
	// Labels overrides the label written for a severity (default: Severity.Label)
	Labels map[core.Severity]string
}

// label returns the configured label for s
func (c Config) label(s core.Severity) string {
	if l, ok := c.Labels[s]; ok {
		return l
	}
	return s.Label()
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
