// Package sink provides the write targets that handlers emit lines to.
//
// A Sink receives an already formatted line and adds the line
// separator itself. Built-in sinks:
//
//   - ConsoleSink writes to any io.Writer (default: os.Stdout) and never
//     reports an error.
//   - FileSink appends to a file. Each Write opens the file in append
//     mode, writes through a small bufio.Writer, flushes and closes it,
//     so no handle outlives the call. Failures are *core.SinkError
//     values; an unopenable path reports "cannot open log file".
//   - ZapSink forwards lines into a *zap.Logger.
//   - MultiSink fans a line out to several sinks and combines their
//     errors with go.uber.org/multierr.
package sink
