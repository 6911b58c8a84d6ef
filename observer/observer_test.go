package observer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/sink"
)

type countingObserver struct {
	Base
	warnings, errors, fatals int
	err                      error
}

func (o *countingObserver) OnWarning(string) error {
	o.warnings++
	return o.err
}

func (o *countingObserver) OnError(string) error {
	o.errors++
	return o.err
}

func (o *countingObserver) OnFatalError(string) error {
	o.fatals++
	return o.err
}

func TestSubject_AddDeduplicates(t *testing.T) {
	o := &countingObserver{}
	s := NewSubject(o, o)
	s.Add(o)
	s.Add(nil)

	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Warning("w"))
	assert.Equal(t, 1, o.warnings)
}

func TestSubject_BroadcastsToAll(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	s := NewSubject(a, b)

	require.NoError(t, s.Warning("w"))
	require.NoError(t, s.Error("e"))
	require.NoError(t, s.FatalError("f"))

	for _, o := range []*countingObserver{a, b} {
		assert.Equal(t, 1, o.warnings)
		assert.Equal(t, 1, o.errors)
		assert.Equal(t, 1, o.fatals)
	}
}

func TestSubject_Remove(t *testing.T) {
	a, b, c := &countingObserver{}, &countingObserver{}, &countingObserver{}
	s := NewSubject(a, b, c)

	s.Remove(b)
	s.Remove(&countingObserver{})

	assert.Equal(t, 2, s.Len())
	require.NoError(t, s.Error("e"))
	assert.Equal(t, 1, a.errors)
	assert.Equal(t, 0, b.errors)
	assert.Equal(t, 1, c.errors)
}

func TestSubject_CombinesErrors(t *testing.T) {
	errA, errB := errors.New("a failed"), errors.New("b failed")
	a := &countingObserver{err: errA}
	b := &countingObserver{err: errB}
	ok := &countingObserver{}
	s := NewSubject(a, ok, b)

	err := s.Error("e")

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, 1, ok.errors, "observers after a failing one are still notified")
}

func TestSubject_Notify(t *testing.T) {
	o := &countingObserver{}
	s := NewSubject(o)

	require.NoError(t, s.Notify(core.NewMessage(core.Warning, "w")))
	require.NoError(t, s.Notify(core.NewMessage(core.FatalError, "f")))
	assert.ErrorIs(t, s.Notify(core.NewMessage(core.Unknown, "u")), core.ErrUnroutable)

	assert.Equal(t, 1, o.warnings)
	assert.Equal(t, 1, o.fatals)
}

func TestBuiltinObservers(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	consoleSink := sink.NewConsoleSink(sink.ConsoleConfig{Writer: &console})

	errorFile := filepath.Join(dir, "error.log")
	fatalFile := filepath.Join(dir, "fatal.log")
	errorSink, err := sink.NewFileSink(sink.FileConfig{Filename: errorFile})
	require.NoError(t, err)
	fatalSink, err := sink.NewFileSink(sink.FileConfig{Filename: fatalFile})
	require.NoError(t, err)

	s := NewSubject(
		NewWarningObserver(consoleSink),
		NewErrorObserver(errorSink),
		NewFatalErrorObserver(consoleSink, fatalSink),
	)

	require.NoError(t, s.Warning("This a warning message."))
	require.NoError(t, s.Error("This is an error message."))
	require.NoError(t, s.FatalError("This is a fatal error message."))

	assert.Equal(t,
		"Warning: This a warning message.\nFatal error: This is a fatal error message.\n",
		console.String())

	data, err := os.ReadFile(errorFile)
	require.NoError(t, err)
	assert.Equal(t, "Error: This is an error message.\n", string(data))

	data, err = os.ReadFile(fatalFile)
	require.NoError(t, err)
	assert.Equal(t, "Fatal Error: This is a fatal error message.\n", string(data))
}

func TestFatalErrorObserver_FileFailure(t *testing.T) {
	var console bytes.Buffer
	badFile, err := sink.NewFileSink(sink.FileConfig{Filename: t.TempDir()})
	require.NoError(t, err)

	o := NewFatalErrorObserver(sink.NewConsoleSink(sink.ConsoleConfig{Writer: &console}), badFile)

	err = o.OnFatalError("disk gone")
	assert.True(t, core.IsSinkFailure(err))
	assert.Equal(t, "Fatal error: disk gone\n", console.String())
}
