package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a colored
// console writer; everything else stays structured JSON.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// LogRequest records the outcome of a handler. Error detail lands in the log
// only; what the client sees is decided by the handler.
func LogRequest(email *string, status int, operation string, err error) {
	user := "unknown"
	if email != nil {
		user = *email
	}

	evt := log.Info()
	if status >= 500 {
		evt = log.Error()
	} else if status >= 400 {
		evt = log.Warn()
	}
	if err != nil {
		evt = evt.Err(err)
	}

	evt.Str("user", user).Int("status", status).Str("op", operation).Msg("request")
}
