package parser

import "github.com/arloliu/c45/internal/options"

// Diagnostic describes one skipped data row.
type Diagnostic struct {
	// Line is the 1-based line number in the data file.
	Line int
	// Text is the trimmed line content that failed to parse.
	Text string
	// Err is the row error that caused the skip.
	Err error
}

// DiagnosticSink receives one Diagnostic per skipped data row. Sinks are
// called synchronously from the parsing loop.
type DiagnosticSink func(d Diagnostic)

// Config holds the record-parser configuration assembled from options.
type Config struct {
	sink         DiagnosticSink
	strictValues bool
}

func newConfig() *Config {
	return &Config{
		sink: func(Diagnostic) {},
	}
}

// Option represents a functional option for configuring record parsing.
type Option = options.Option[*Config]

// WithDiagnosticSink routes skipped-row diagnostics to the given sink.
// The default sink discards diagnostics; pass one to observe dirty rows.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return options.NoError(func(c *Config) {
		if sink != nil {
			c.sink = sink
		}
	})
}

// WithStrictValues makes record parsing validate ID and Nominal tokens
// against their feature domains eagerly. By default validation is deferred
// to float export, so a dataset with out-of-domain symbols still parses;
// with strict values such rows are skipped like any other malformed row.
func WithStrictValues() Option {
	return options.NoError(func(c *Config) {
		c.strictValues = true
	})
}
