// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"log/slog"
	"testing/fstest"

	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// newTestConfig returns a [*Config] whose DataFS serves the given files.
func newTestConfig(files map[string]string) *Config {
	mapfs := fstest.MapFS{}
	for name, content := range files {
		mapfs[name] = &fstest.MapFile{Data: []byte(content)}
	}
	cfg := NewConfig()
	cfg.DataFS = mapfs
	return cfg
}
