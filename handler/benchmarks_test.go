package handler

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/sink"
)

func benchChain(b *testing.B) *Chain {
	b.Helper()
	c, err := Standard(StandardConfig{
		Console:   sink.NewConsoleSink(sink.ConsoleConfig{Writer: io.Discard}),
		ErrorSink: sink.NewConsoleSink(sink.ConsoleConfig{Writer: io.Discard}),
	})
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// BenchmarkDispatchFirstMatch measures a message claimed by the head
func BenchmarkDispatchFirstMatch(b *testing.B) {
	c := benchChain(b)
	msg := core.NewMessage(core.Warning, "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Dispatch(msg)
	}
}

// BenchmarkDispatchUnroutable walks the whole chain and fails
func BenchmarkDispatchUnroutable(b *testing.B) {
	c, err := New(
		NewWarning(sink.NewConsoleSink(sink.ConsoleConfig{Writer: io.Discard})),
		NewError(sink.NewConsoleSink(sink.ConsoleConfig{Writer: io.Discard})),
		NewFatal(),
	)
	if err != nil {
		b.Fatal(err)
	}
	msg := core.NewMessage(core.Unknown, "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Dispatch(msg)
	}
}

// BenchmarkDispatchLongChain measures forwarding cost through many links
func BenchmarkDispatchLongChain(b *testing.B) {
	handlers := make([]Handler, 0, 64)
	for i := 0; i < 63; i++ {
		handlers = append(handlers, NewLink(core.Warning, "filler", func(core.Message) error { return nil }))
	}
	handlers = append(handlers, NewCatchAll("tail", func(core.Message) error { return nil }))
	c := MustNew(handlers...)
	msg := core.NewMessage(core.Error, "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Dispatch(msg)
	}
}

// BenchmarkDispatchFile measures the open, append and close cycle
func BenchmarkDispatchFile(b *testing.B) {
	c, err := Standard(StandardConfig{
		Console:   sink.NewConsoleSink(sink.ConsoleConfig{Writer: io.Discard}),
		ErrorFile: filepath.Join(b.TempDir(), "errors.log"),
	})
	if err != nil {
		b.Fatal(err)
	}
	msg := core.NewMessage(core.Error, "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Dispatch(msg)
	}
}
