package amoskeag

import "github.com/rs/zerolog"

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

type compileConfig struct {
	logger zerolog.Logger
}

func collectCompileOptions(opts ...CompileOption) *compileConfig {
	cfg := &compileConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger attaches a zerolog.Logger that Compile uses to emit structured
// diagnostics about the compilation itself (parse and validation failures,
// and the program ID and elapsed time on success).
// It never affects the Program produced. The default is zerolog.Nop(), so
// embedding Amoskeag produces no log output unless a host opts in.
func WithLogger(logger zerolog.Logger) CompileOption {
	return func(cfg *compileConfig) {
		cfg.logger = logger
	}
}

// EvalOption configures Program.Evaluate.
type EvalOption func(*evalConfig)

type evalConfig struct {
	logger zerolog.Logger
}

func collectEvalOptions(opts ...EvalOption) *evalConfig {
	cfg := &evalConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithEvalLogger attaches a zerolog.Logger that Evaluate uses to emit
// structured diagnostics about the evaluation itself (timing, errors at
// warn level). It never affects the returned Value.
func WithEvalLogger(logger zerolog.Logger) EvalOption {
	return func(cfg *evalConfig) {
		cfg.logger = logger
	}
}
