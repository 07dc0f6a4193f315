package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationCarriesCodeAndDetails(t *testing.T) {
	err := Validation(CodeMissingFields, "missing required fields",
		WithDetail("fields", []string{"product", "amount"}))

	assert.Equal(t, KindBadRequest, err.Kind())
	assert.Equal(t, CodeMissingFields, err.Code())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	assert.Equal(t, []string{"product", "amount"}, err.Details()["fields"])
}

func TestDefaultCodes(t *testing.T) {
	assert.Equal(t, CodeNotFound, NotFound("gone").Code())
	assert.Equal(t, CodeInvalidPayload, BadRequest("bad").Code())
	assert.Equal(t, CodeStorageError, Internal("boom").Code())
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("").StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("").StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("").StatusCode())
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := From(cause)

	require.NotNil(t, appErr)
	assert.Equal(t, KindInternal, appErr.Kind())
	assert.Equal(t, CodeStorageError, appErr.Code())
	assert.ErrorIs(t, appErr, cause)
}

func TestFromPassesAppErrorsThrough(t *testing.T) {
	orig := NotFound("order not found")
	assert.Same(t, orig, From(orig))
}

func TestErrorIncludesCause(t *testing.T) {
	err := Internal("failed to list orders", WithCause(errors.New("timeout")))
	assert.Equal(t, "failed to list orders: timeout", err.Error())
}
