// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/chainfn/chain"
)

// ErrInvalidArea indicates that an area name cannot name a data file.
var ErrInvalidArea = errors.New("contacts: invalid area name")

// NewFilepathFunc returns a new [*FilepathFunc].
//
// The cfg argument contains the common configuration for contacts stages.
//
// The logger argument is the [chain.SLogger] to use for structured logging.
func NewFilepathFunc(cfg *Config, logger chain.SLogger) *FilepathFunc {
	return &FilepathFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// FilepathFunc maps an area name to the path of that area's data file.
//
// Returns either a valid path relative to [Config.DataFS] or an error,
// never both. Area names that are empty, contain path separators, or
// are otherwise not valid single-element fs paths are rejected with
// [ErrInvalidArea] so a hostile area cannot escape the data directory.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type FilepathFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewFilepathFunc] from [Config.ErrClassifier].
	ErrClassifier chain.ErrClassifier

	// Logger is the [chain.SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewFilepathFunc] to the user-provided logger.
	Logger chain.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewFilepathFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ chain.Func[string, string] = &FilepathFunc{}

// Call maps the given area name to its data file path.
func (op *FilepathFunc) Call(ctx context.Context, area string) (string, error) {
	t0 := op.TimeNow()
	op.logFilepathStart(area, t0)
	path, err := areaPath(area)
	op.logFilepathDone(area, path, t0, err)
	return path, err
}

// areaPath validates the area name and derives the data file path.
func areaPath(area string) (string, error) {
	if area == "" || strings.ContainsAny(area, `/\`) || !fs.ValidPath(area) {
		return "", ErrInvalidArea
	}
	return area + ".txt", nil
}

func (op *FilepathFunc) logFilepathStart(area string, t0 time.Time) {
	op.Logger.Info(
		"createFilepathStart",
		slog.String("area", area),
		slog.Time("t", t0),
	)
}

func (op *FilepathFunc) logFilepathDone(area, path string, t0 time.Time, err error) {
	op.Logger.Info(
		"createFilepathDone",
		slog.String("area", area),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("path", path),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
