// SPDX-License-Identifier: GPL-3.0-or-later

package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bassosimone/errclass"
	"github.com/stretchr/testify/assert"
)

func TestDefaultErrClassifier(t *testing.T) {
	// Should return empty string for nil error
	assert.Equal(t, "", DefaultErrClassifier.Classify(nil))

	// Should return empty string for any error (no-op default)
	assert.Equal(t, "", DefaultErrClassifier.Classify(errors.New("whatever")))
}

func TestErrClassifierFunc(t *testing.T) {
	classifier := ErrClassifierFunc(errclass.New)

	// Should classify known errors using errclass
	result := classifier.Classify(context.DeadlineExceeded)
	assert.Equal(t, errclass.ETIMEDOUT, result)

	// Should return EGENERIC for unknown errors
	result = classifier.Classify(errors.New("unknown error"))
	assert.Equal(t, errclass.EGENERIC, result)
}
