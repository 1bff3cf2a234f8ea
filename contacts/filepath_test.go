// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"testing"

	"github.com/chainfn/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewFilepathFunc populates all fields from Config and the provided logger.
func TestNewFilepathFunc(t *testing.T) {
	cfg := NewConfig()
	logger := chain.DefaultSLogger()

	fn := NewFilepathFunc(cfg, logger)

	require.NotNil(t, fn)
	assert.NotNil(t, fn.ErrClassifier)
	assert.NotNil(t, fn.Logger)
	assert.NotNil(t, fn.TimeNow)
}

// Call maps area names to data file paths and rejects unusable names.
func TestFilepathFunc(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// area is the input area name.
		area string

		// wantPath is the expected path on success.
		wantPath string

		// wantErr is the expected error, if any.
		wantErr error
	}{
		{
			name:     "simple area",
			area:     "east",
			wantPath: "east.txt",
		},

		{
			name:     "hyphenated area",
			area:     "north-west",
			wantPath: "north-west.txt",
		},

		{
			name:    "empty area",
			area:    "",
			wantErr: ErrInvalidArea,
		},

		{
			name:    "path separator",
			area:    "east/../secrets",
			wantErr: ErrInvalidArea,
		},

		{
			name:    "backslash separator",
			area:    `east\secrets`,
			wantErr: ErrInvalidArea,
		},

		{
			name:    "parent directory",
			area:    "..",
			wantErr: ErrInvalidArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := NewFilepathFunc(NewConfig(), chain.DefaultSLogger())
			path, err := fn.Call(context.Background(), tt.area)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, path)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

// Call emits createFilepathStart/createFilepathDone log events.
func TestFilepathFuncLogging(t *testing.T) {
	logger, records := newCapturingLogger()

	fn := NewFilepathFunc(NewConfig(), logger)
	_, err := fn.Call(context.Background(), "east")
	require.NoError(t, err)

	require.Len(t, *records, 2)
	assert.Equal(t, "createFilepathStart", (*records)[0].Message)
	assert.Equal(t, "createFilepathDone", (*records)[1].Message)
}
