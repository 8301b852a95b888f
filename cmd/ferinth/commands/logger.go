package commands

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// setupLogger configures the zerolog logger used for verbose output.
// Interactive terminals get the human-readable console format; everything
// else (pipes, CI) gets JSON lines.
func setupLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// commandLogger adapts a zerolog.Logger to the modrinth.Logger interface
// so the HTTP layer's request/response logging shows up in verbose mode.
type commandLogger struct {
	logger zerolog.Logger
}

func newCommandLogger(verbose bool) *commandLogger {
	return &commandLogger{logger: setupLogger(verbose)}
}

func (l *commandLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *commandLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *commandLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *commandLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
