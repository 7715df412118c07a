package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func ParseLogLevel(s string) log.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ConfigureLogging sets up the global logrus logger. Console output always
// goes to stdout; when LogFilePath is set every level is also written to a
// rotating file.
func ConfigureLogging(cfg *Config) error {
	log.SetLevel(ParseLogLevel(cfg.LogLevel))
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	if cfg.LogFilePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	writers := lfshook.WriterMap{}
	for _, lvl := range log.AllLevels {
		writers[lvl] = rotator
	}
	log.AddHook(lfshook.NewHook(writers, &log.TextFormatter{DisableColors: true, FullTimestamp: true}))
	return nil
}
