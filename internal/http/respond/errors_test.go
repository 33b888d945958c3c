package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/rates"
	"github.com/hongminglow/finance-be/internal/storage"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", fmt.Errorf("get asset: %w", storage.ErrNotFound), http.StatusNotFound, "not found"},
		{"validation", &dto.ValidationError{Field: "amount", Message: "must be a number"}, http.StatusBadRequest, "amount: must be a number"},
		{"no symbols", rates.ErrNoSymbols, http.StatusBadRequest, rates.ErrNoSymbols.Error()},
		{"not configured", rates.ErrNotConfigured, http.StatusInternalServerError, rates.ErrNotConfigured.Error()},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, message := StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestFailNamesSubjectOnNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, storage.ErrNotFound, "Asset")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Asset not found", body.Error)
}
