// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testhelpers

import (
	"context"
	"crypto/rand"
	"log/slog"
	"os"
	"regexp"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// Fail a test should an error occur
func RequireImpl(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatal(printables, err)
	}
}

func FailImpl(t *testing.T, printables ...interface{}) {
	t.Helper()
	t.Fatal(printables...)
}

func RandomizeSlice(slice []byte) []byte {
	_, err := rand.Read(slice)
	if err != nil {
		panic(err)
	}
	return slice
}

func RandomSlice(size uint64) []byte {
	return RandomizeSlice(make([]byte, size))
}

func RandomHash() common.Hash {
	var hash common.Hash
	RandomizeSlice(hash[:])
	return hash
}

func RandomAddress() common.Address {
	var address common.Address
	RandomizeSlice(address[:])
	return address
}

// LogHandler records every log line it prints so tests can assert on them.
type LogHandler struct {
	mutex           sync.Mutex
	t               *testing.T
	records         []slog.Record
	terminalHandler *log.TerminalHandler
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.terminalHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return h.terminalHandler.WithGroup(name)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.terminalHandler.WithAttrs(attrs)
}

func (h *LogHandler) Handle(ctx context.Context, record slog.Record) error {
	if err := h.terminalHandler.Handle(ctx, record); err != nil {
		return err
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *LogHandler) WasLogged(pattern string) bool {
	re, err := regexp.Compile(pattern)
	RequireImpl(h.t, err)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, record := range h.records {
		if re.MatchString(record.Message) {
			return true
		}
	}
	return false
}

// LoggedAttr reports whether any record carries an attribute whose value matches pattern.
func (h *LogHandler) LoggedAttr(key string, pattern string) bool {
	re, err := regexp.Compile(pattern)
	RequireImpl(h.t, err)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, record := range h.records {
		found := false
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key && re.MatchString(attr.Value.String()) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

func newLogHandler(t *testing.T) *LogHandler {
	return &LogHandler{
		t:               t,
		records:         make([]slog.Record, 0),
		terminalHandler: log.NewTerminalHandler(os.Stderr, false),
	}
}

func InitTestLog(t *testing.T, level slog.Level) *LogHandler {
	handler := newLogHandler(t)
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(level)
	log.SetDefault(log.NewLogger(glogger))
	return handler
}
