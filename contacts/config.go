// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"io/fs"
	"os"
	"time"

	"github.com/chainfn/chain"
)

// Config holds common configuration for contacts pipeline stages.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// DataFS is the filesystem containing the per-area data files.
	//
	// Set by [NewConfig] to the "data_files" directory.
	DataFS fs.FS

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [chain.DefaultErrClassifier].
	ErrClassifier chain.ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DataFS:        os.DirFS("data_files"),
		ErrClassifier: chain.DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
