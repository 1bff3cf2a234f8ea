// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chainfn/chain"
)

// NewContactsFunc returns a new [*ContactsFunc].
//
// The cfg argument contains the common configuration for contacts stages.
//
// The logger argument is the [chain.SLogger] to use for structured logging.
func NewContactsFunc(cfg *Config, logger chain.SLogger) *ContactsFunc {
	return &ContactsFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ContactsFunc converts parsed records into [Contact] models.
//
// The first invalid record fails the whole stage with an error naming
// the 1-based record number; there is no partial output.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ContactsFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewContactsFunc] from [Config.ErrClassifier].
	ErrClassifier chain.ErrClassifier

	// Logger is the [chain.SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewContactsFunc] to the user-provided logger.
	Logger chain.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewContactsFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ chain.Func[[]Record, []Contact] = &ContactsFunc{}

// Call converts the given records into contacts.
func (op *ContactsFunc) Call(ctx context.Context, records []Record) ([]Contact, error) {
	t0 := op.TimeNow()
	op.logConvertStart(len(records), t0)
	result, err := convertContacts(records)
	op.logConvertDone(len(records), len(result), t0, err)
	return result, err
}

func convertContacts(records []Record) ([]Contact, error) {
	result := make([]Contact, 0, len(records))
	for i, rec := range records {
		contact, err := contactFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		result = append(result, contact)
	}
	return result, nil
}

func (op *ContactsFunc) logConvertStart(recordCount int, t0 time.Time) {
	op.Logger.Info(
		"convertContactsStart",
		slog.Int("recordCount", recordCount),
		slog.Time("t", t0),
	)
}

func (op *ContactsFunc) logConvertDone(recordCount, contactCount int, t0 time.Time, err error) {
	op.Logger.Info(
		"convertContactsDone",
		slog.Int("contactCount", contactCount),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Int("recordCount", recordCount),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
