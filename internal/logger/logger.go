// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds logging options, embeddable as a go-flags option group.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Logging level"  choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Logging format" choice:"text" choice:"json" default:"text"`
}

// Setup applies the options to the global logger. Text format uses the
// console writer, colored only when stderr is a terminal.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if l.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
}
