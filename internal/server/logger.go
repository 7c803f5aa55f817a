package server

import (
	"os"
	"paypal-subscribe/internal/config"
	"strings"

	"github.com/labstack/gommon/log"
)

// NewLogger returns the application logger. It is also installed as echo's
// logger so handlers can reach it through the request context.
func NewLogger(cfg config.Log) *log.Logger {
	l := log.New("paypal-subscribe")
	l.SetOutput(os.Stdout)
	l.SetLevel(parseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "text") {
		l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	}

	return l
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
