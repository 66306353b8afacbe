// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, attaches static attributes and wraps the handler with
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on each
// record.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(logger.FromConfig(cfg))
//	log.Debug("notification gated",
//	    logger.UserID("u1"),
//	    logger.Channel("push"),
//	)
//
// Error and UserID return an empty slog.Attr for zero values, so they can be
// passed unconditionally.
package logger
