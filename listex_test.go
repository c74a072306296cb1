package listex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/listex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := listex.Errorf(listex.EFETCH, "HTTP %d for %s", 404, "https://example.com/home")

	assert.Equal(t, listex.EFETCH, listex.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com/home", listex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, listex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, listex.EINTERNAL, listex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, listex.ErrorMessage(nil))
}
