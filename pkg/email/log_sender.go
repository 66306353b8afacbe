package email

import (
	"context"
	"log/slog"
)

// LogSender writes emails to a logger instead of sending them.
// Used in development and demos.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender returns a LogSender writing to logger, or to slog.Default when nil.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send validates params and logs recipient, subject and tag.
func (s *LogSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "email sent",
		slog.String("to", params.To),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
	)
	return nil
}
