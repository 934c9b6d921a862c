// Package logging builds the structured loggers used by uuidgen.
//
// It wraps log/slog so that the server, the session sweeper and the CLI all
// log the same way, with the level and format taken from configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//
//	logger.Info("web server listening", "addr", addr)
//
// Components accept a *slog.Logger through an option or setter and default
// to logging.Nop().
package logging
