// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chainfn/chain"
)

// NewParseRecordsFunc returns a new [*ParseRecordsFunc].
//
// The cfg argument contains the common configuration for contacts stages.
//
// The logger argument is the [chain.SLogger] to use for structured logging.
func NewParseRecordsFunc(cfg *Config, logger chain.SLogger) *ParseRecordsFunc {
	return &ParseRecordsFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ParseRecordsFunc parses each input line as one JSON object.
//
// The first malformed line fails the whole stage with an error naming
// the 1-based line number; there is no partial output.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ParseRecordsFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewParseRecordsFunc] from [Config.ErrClassifier].
	ErrClassifier chain.ErrClassifier

	// Logger is the [chain.SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewParseRecordsFunc] to the user-provided logger.
	Logger chain.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewParseRecordsFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ chain.Func[[]string, []Record] = &ParseRecordsFunc{}

// Call parses the given lines into records.
func (op *ParseRecordsFunc) Call(ctx context.Context, lines []string) ([]Record, error) {
	t0 := op.TimeNow()
	op.logParseStart(len(lines), t0)
	records, err := parseRecords(lines)
	op.logParseDone(len(lines), len(records), t0, err)
	return records, err
}

func parseRecords(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		var rec Record
		if err := json.UnmarshalFromString(line, &rec); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (op *ParseRecordsFunc) logParseStart(lineCount int, t0 time.Time) {
	op.Logger.Info(
		"parseRecordsStart",
		slog.Int("lineCount", lineCount),
		slog.Time("t", t0),
	)
}

func (op *ParseRecordsFunc) logParseDone(lineCount, recordCount int, t0 time.Time, err error) {
	op.Logger.Info(
		"parseRecordsDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Int("lineCount", lineCount),
		slog.Int("recordCount", recordCount),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
