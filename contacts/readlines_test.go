// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/chainfn/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewReadLinesFunc populates all fields from Config and the provided logger.
func TestNewReadLinesFunc(t *testing.T) {
	cfg := NewConfig()
	logger := chain.DefaultSLogger()

	fn := NewReadLinesFunc(cfg, logger)

	require.NotNil(t, fn)
	assert.NotNil(t, fn.FS)
	assert.NotNil(t, fn.ErrClassifier)
	assert.NotNil(t, fn.Logger)
	assert.NotNil(t, fn.TimeNow)
}

// Call returns the file's non-blank lines in order.
func TestReadLinesFunc(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// content is the data file content.
		content string

		// want is the expected output.
		want []string
	}{
		{
			name:    "plain lines",
			content: "alpha\nbeta\ngamma",
			want:    []string{"alpha", "beta", "gamma"},
		},

		{
			name:    "blank lines dropped",
			content: "alpha\n\n   \n\t\nbeta\n",
			want:    []string{"alpha", "beta"},
		},

		{
			name:    "content preserved verbatim",
			content: "  padded  \nplain",
			want:    []string{"  padded  ", "plain"},
		},

		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(map[string]string{"east.txt": tt.content})

			fn := NewReadLinesFunc(cfg, chain.DefaultSLogger())
			lines, err := fn.Call(context.Background(), "east.txt")

			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

// Call surfaces a missing file as fs.ErrNotExist.
func TestReadLinesFuncMissingFile(t *testing.T) {
	cfg := newTestConfig(nil)

	fn := NewReadLinesFunc(cfg, chain.DefaultSLogger())
	lines, err := fn.Call(context.Background(), "nowhere.txt")

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, lines)
}

// Call honors an already-done context before touching the filesystem.
func TestReadLinesFuncContext(t *testing.T) {
	cfg := newTestConfig(map[string]string{"east.txt": "alpha"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	fn := NewReadLinesFunc(cfg, chain.DefaultSLogger())
	_, err := fn.Call(ctx, "east.txt")

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// Call emits readLinesStart/readLinesDone log events.
func TestReadLinesFuncLogging(t *testing.T) {
	logger, records := newCapturingLogger()
	cfg := newTestConfig(map[string]string{"east.txt": "alpha\nbeta"})

	fn := NewReadLinesFunc(cfg, logger)
	_, err := fn.Call(context.Background(), "east.txt")
	require.NoError(t, err)

	require.Len(t, *records, 2)
	assert.Equal(t, "readLinesStart", (*records)[0].Message)
	assert.Equal(t, "readLinesDone", (*records)[1].Message)
}
