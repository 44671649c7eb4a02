package ustar

import "log/slog"

// config holds shared encode/decode configuration.
type config struct {
	logger *slog.Logger
}

// Option configures encoding and decoding.
type Option func(*config)

// WithLogger attaches a structured logger. Archive milestones log at Info,
// per-entry events at Debug. Without a logger, nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// log returns the configured logger, falling back to a discard logger.
func (cfg *config) log() *slog.Logger {
	if cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.logger
}
