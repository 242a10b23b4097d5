package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/payload"
)

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects how a saved payload is printed.
func WithOutputFormat(format payload.Format) Option {
	return func(s *Session) {
		if format != "" {
			s.format = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageSize sets how many rows select prompts show at once.
func WithPageSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.pageSize = size
		}
	}
}
