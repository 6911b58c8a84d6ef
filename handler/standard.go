package handler

import (
	"fmt"
	"strings"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
	"github.com/philipp01105/logchain/sink"
)

// DefaultOrder is the standard chain order
var DefaultOrder = []core.Severity{core.Warning, core.Error, core.FatalError, core.Unknown}

// StandardConfig holds configuration for the standard chain
type StandardConfig struct {
	// Console receives warnings (default: ConsoleSink on os.Stdout)
	Console sink.Sink
	// ErrorSink receives errors (default: FileSink on ErrorFile)
	ErrorSink sink.Sink
	// ErrorFile is the error log path used when ErrorSink is nil (default: errors.log)
	ErrorFile string
	// Formatter renders lines for both sinks (default: TextFormatter)
	Formatter formatter.Formatter
	// Order lists the handlers by severity. A severity left out has no
	// handler, so its messages are unroutable. (default: DefaultOrder)
	Order []core.Severity
	// SelfRouting builds the fatal and unknown handlers as Routers
	SelfRouting bool
}

// applyStandardDefaults fills in zero-value fields with defaults.
func applyStandardDefaults(cfg *StandardConfig) error {
	if cfg.Console == nil {
		cfg.Console = sink.NewConsoleSink(sink.ConsoleConfig{})
	}
	if cfg.ErrorFile == "" {
		cfg.ErrorFile = "errors.log"
	}
	if cfg.ErrorSink == nil {
		fs, err := sink.NewFileSink(sink.FileConfig{Filename: cfg.ErrorFile})
		if err != nil {
			return err
		}
		cfg.ErrorSink = fs
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if len(cfg.Order) == 0 {
		cfg.Order = DefaultOrder
	}
	return nil
}

// Standard builds the warning, error, fatal and unknown handlers and
// links them in cfg.Order.
func Standard(cfg StandardConfig) (*Chain, error) {
	if err := applyStandardDefaults(&cfg); err != nil {
		return nil, err
	}

	handlers := make([]Handler, 0, len(cfg.Order))
	seen := make(map[core.Severity]bool, len(cfg.Order))
	for _, s := range cfg.Order {
		if seen[s] {
			return nil, fmt.Errorf("severity %s listed twice in chain order", s)
		}
		seen[s] = true

		switch s {
		case core.Warning:
			handlers = append(handlers, NewWriter(core.Warning, "warning", cfg.Console, cfg.Formatter))
		case core.Error:
			handlers = append(handlers, NewWriter(core.Error, "error", cfg.ErrorSink, cfg.Formatter))
		case core.FatalError:
			if cfg.SelfRouting {
				handlers = append(handlers, NewFatalRouter())
			} else {
				handlers = append(handlers, NewFatal())
			}
		case core.Unknown:
			if cfg.SelfRouting {
				handlers = append(handlers, NewUnknownRouter())
			} else {
				handlers = append(handlers, NewUnknown())
			}
		default:
			return nil, fmt.Errorf("no standard handler for severity %d", s)
		}
	}

	return New(handlers...)
}

// ParseOrder parses a comma separated list of severities, e.g.
// "warning,error,fatal,unknown".
func ParseOrder(s string) ([]core.Severity, error) {
	var order []core.Severity
	seen := make(map[core.Severity]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sev, err := core.ParseSeverity(part)
		if err != nil {
			return nil, err
		}
		if seen[sev] {
			return nil, fmt.Errorf("severity %s listed twice in chain order", sev)
		}
		seen[sev] = true
		order = append(order, sev)
	}
	if len(order) == 0 {
		return nil, ErrEmptyChain
	}
	return order, nil
}
