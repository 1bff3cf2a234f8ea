// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/chainfn/chain"
)

// NewReadLinesFunc returns a new [*ReadLinesFunc] reading from [Config.DataFS].
//
// The cfg argument contains the common configuration for contacts stages.
//
// The logger argument is the [chain.SLogger] to use for structured logging.
func NewReadLinesFunc(cfg *Config, logger chain.SLogger) *ReadLinesFunc {
	return &ReadLinesFunc{
		FS:            cfg.DataFS,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ReadLinesFunc reads a data file into its non-blank lines.
//
// Lines are returned in file order with their original content; only
// lines that are blank after trimming whitespace are dropped. A missing
// file surfaces as an error satisfying errors.Is(err, [fs.ErrNotExist]).
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ReadLinesFunc struct {
	// FS is the filesystem to read data files from.
	//
	// Set by [NewReadLinesFunc] from [Config.DataFS].
	FS fs.FS

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewReadLinesFunc] from [Config.ErrClassifier].
	ErrClassifier chain.ErrClassifier

	// Logger is the [chain.SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewReadLinesFunc] to the user-provided logger.
	Logger chain.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewReadLinesFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ chain.Func[string, []string] = &ReadLinesFunc{}

// Call reads the file at the given path and returns its non-blank lines.
func (op *ReadLinesFunc) Call(ctx context.Context, path string) ([]string, error) {
	t0 := op.TimeNow()
	op.logReadLinesStart(path, t0)
	lines, err := op.readLines(ctx, path)
	op.logReadLinesDone(path, len(lines), t0, err)
	return lines, err
}

func (op *ReadLinesFunc) readLines(ctx context.Context, path string) ([]string, error) {
	// fs.ReadFile cannot be interrupted, so honor the context up front
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(op.FS, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (op *ReadLinesFunc) logReadLinesStart(path string, t0 time.Time) {
	op.Logger.Info(
		"readLinesStart",
		slog.String("path", path),
		slog.Time("t", t0),
	)
}

func (op *ReadLinesFunc) logReadLinesDone(path string, count int, t0 time.Time, err error) {
	op.Logger.Info(
		"readLinesDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Int("lineCount", count),
		slog.String("path", path),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
