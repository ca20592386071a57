package internal

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// log rotation
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// NewLogFile opens a size-rotated log file
func NewLogFile(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		LocalTime:  true,
	}
}
