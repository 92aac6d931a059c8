package logger

import (
	"os"
	"strings"

	"sitera-backend/config"

	"github.com/sirupsen/logrus"
)

// Log adalah instance logger global untuk seluruh aplikasi.
var Log = logrus.New()

// Init menyiapkan level dan format log berdasarkan konfigurasi.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Log level '%s' tidak dikenal, pakai 'info'", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if cfg.Environment == "production" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
