package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/rates"
	"github.com/hongminglow/finance-be/internal/storage"
)

const internalMessage = "internal server error"

// StatusFor maps a domain error to the status code and message shown to clients.
// Missing and foreign records both map to 404; unexpected failures never leak details.
func StatusFor(err error) (int, string) {
	var vErr *dto.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, rates.ErrNoSymbols):
		return http.StatusBadRequest, rates.ErrNoSymbols.Error()
	case errors.Is(err, rates.ErrNotConfigured):
		return http.StatusInternalServerError, rates.ErrNotConfigured.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

// Fail writes err using StatusFor. subject names the resource in 404 messages
// ("Asset not found") and in the server log line for internal errors.
func Fail(w http.ResponseWriter, err error, subject string) {
	status, message := StatusFor(err)
	switch {
	case status == http.StatusNotFound && subject != "":
		message = subject + " not found"
	case status >= http.StatusInternalServerError:
		log.Printf("%s: %v", subject, err)
	}
	Error(w, status, message)
}
