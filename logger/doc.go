// Package logger is the public API of logchain. Most users only need to
// import this package.
//
// A Logger is immutable after construction. It turns each call into a
// core.Message and hands it to a dispatcher, normally a *handler.Chain,
// and returns whatever the chain returned:
//
//	c, _ := handler.Standard(handler.StandardConfig{ErrorFile: "errors.log"})
//	log := logger.NewBuilder().WithHandler(c).Build()
//
//	if err := log.Error("disk quota exceeded"); err != nil {
//	    // unroutable, unwritable or halted
//	}
//
// The package initializes a default Logger in init(): warnings go to
// stdout, errors are appended to errors.log, and fatal or unknown
// messages return a *core.HaltError. The package-level functions
// delegate to it:
//
//	logger.Warning("cache miss rate above 50%")
//
// Nothing is silently dropped: a Logger without a dispatcher reports
// every message as unroutable.
package logger
