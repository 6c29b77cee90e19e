package utils

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Формат логов (text/json)
	Format string
	// Уровень логирования (debug, info, warn, error)
	Level string
	// Выходной поток (os.Stdout, файл и т.д.)
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// InitLogger инициализирует логгер и делает его логгером по умолчанию для logrus
func InitLogger(config ...LoggerConfig) *logrus.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.SetOutput(cfg.Output)
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   cfg.EnableColors,
		})
	}

	// Пакеты services и middleware пишут через глобальный logrus
	logrus.SetOutput(logger.Out)
	logrus.SetLevel(logger.GetLevel())
	logrus.SetFormatter(logger.Formatter)

	return logger
}
