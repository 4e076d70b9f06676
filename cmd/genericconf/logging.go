// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package genericconf

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ethereum/go-ethereum/log"
)

// logFile is the rotating file the default logger tees into. Writes never
// fail, so a full disk cannot stall request handling.
type logFile struct {
	mu     sync.Mutex
	writer *lumberjack.Logger
}

var activeLogFile logFile

func (f *logFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writer != nil {
		_, _ = f.writer.Write(p)
	}
	return len(p), nil
}

func (f *logFile) open(config *FileLoggingConfig, filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.closeLocked(); err != nil {
		return err
	}
	f.writer = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		LocalTime:  config.LocalTime,
		Compress:   config.Compress,
	}
	return nil
}

func (f *logFile) closeLocked() error {
	if f.writer == nil {
		return nil
	}
	err := f.writer.Close()
	f.writer = nil
	return err
}

// RotateLogFile starts a new log file, moving the current one aside. It is a
// no-op when file logging is disabled.
func RotateLogFile() error {
	activeLogFile.mu.Lock()
	defer activeLogFile.mu.Unlock()
	if activeLogFile.writer == nil {
		return nil
	}
	return activeLogFile.writer.Rotate()
}

// CloseLogFile flushes and closes the log file opened by InitLog.
func CloseLogFile() error {
	activeLogFile.mu.Lock()
	defer activeLogFile.mu.Unlock()
	return activeLogFile.closeLocked()
}

// InitLog installs the default geth logger writing to stderr and, when file
// logging is enabled, to a rotating log file resolved by pathResolver.
func InitLog(logType string, logLevel string, fileLoggingConfig *FileLoggingConfig, pathResolver func(string) string) error {
	slogLevel, err := ToSlogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", logLevel, err)
	}
	if err := CloseLogFile(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	var output io.Writer = os.Stderr
	if fileLoggingConfig.Enable {
		if err := activeLogFile.open(fileLoggingConfig, pathResolver(fileLoggingConfig.File)); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		output = io.MultiWriter(output, &activeLogFile)
	}
	handler, err := HandlerFromLogType(logType, output)
	if err != nil {
		return fmt.Errorf("error parsing log type when creating handler: %w", err)
	}
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(slogLevel)
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
