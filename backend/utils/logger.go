package utils

import (
	"io"
	"log"
	"os"

	"coursehub/backend/config"
)

// LoggerConfig controls InitLogger
type LoggerConfig struct {
	// text or plain
	Format string
	// defaults to os.Stdout
	Output io.Writer
	// colour the prefix on terminals
	EnableColors bool
}

// InitLogger returns the process logger
func InitLogger(opts ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(opts) > 0 {
		cfg = opts[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Course Catalog] "

	var logger *log.Logger
	if cfg.Format == config.LogFormatPlain {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	}

	return logger
}
