package api

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/handler"
)

// Format selects the log output encoding.
type Format string

const (
	timeFormat = time.RFC3339Nano

	JSON  Format = "json"
	Plain Format = "plain"
)

// NewLogger initializes a new (logrus) Logger instance.
// Supported log formats are: plain, json
func NewLogger(logLevel, logFormat string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	format := Format(logFormat)
	if err := checkFormat(format); err != nil {
		return nil, err
	}

	l := newFormattedLogger(lvl, format)

	logger := logrus.NewEntry(l)
	logger.Level = l.Level
	logger = logger.WithFields(logrus.Fields{
		"serviceName": handler.ServiceName,
		"version":     handler.Version,
	})
	return logger, nil
}

// newFormattedLogger returns a formatted Logger object (log format is JSON by default)
func newFormattedLogger(logLevel logrus.Level, logFormat Format) *logrus.Logger {
	l := logrus.New()
	var formatter logrus.Formatter
	switch logFormat {
	case Plain:
		formatter = &logrus.TextFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
			TimestampFormat: timeFormat,
		}
	default:
		formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
			TimestampFormat: timeFormat,
		}
	}

	l.SetFormatter(formatter)
	l.Level = logLevel

	return l
}

func checkFormat(w Format) error {
	switch w {
	case JSON, Plain:
		return nil
	default:
		return fmt.Errorf("invalid %s log format input '%v'", handler.ServiceName, w)
	}
}
