package handlers

import (
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/hongminglow/finance-be/internal/http/respond"
	"github.com/hongminglow/finance-be/internal/middleware"
	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/storage"
)

// ReceiptStore keeps uploaded receipt files.
type ReceiptStore interface {
	Save(r io.Reader, originalName string) (string, error)
	Remove(url string) error
}

// TransactionHandler exposes CRUD over the caller's transactions, with optional receipt uploads.
type TransactionHandler struct {
	store     storage.TransactionStore
	receipts  ReceiptStore
	maxUpload int64
	now       func() time.Time
}

// NewTransactionHandler constructs the handler. maxUpload bounds multipart bodies in bytes.
func NewTransactionHandler(store storage.TransactionStore, receipts ReceiptStore, maxUpload int64) *TransactionHandler {
	return &TransactionHandler{store: store, receipts: receipts, maxUpload: maxUpload, now: time.Now}
}

// Register attaches transaction routes to the mux.
func (h *TransactionHandler) Register(mux *http.ServeMux, gate *middleware.Gate) {
	mux.Handle("GET /transactions", gate.Require(h.handleList))
	mux.Handle("POST /transactions", gate.Require(h.handleCreate))
	mux.Handle("GET /transactions/{id}", gate.Require(h.handleGet))
	mux.Handle("PUT /transactions/{id}", gate.Require(h.handleUpdate))
	mux.Handle("DELETE /transactions/{id}", gate.Require(h.handleDelete))
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request, user models.User) {
	txs, err := h.store.ListTransactions(r.Context(), user.ID)
	if err != nil {
		respond.Fail(w, err, "list transactions")
		return
	}
	respond.JSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) handleGet(w http.ResponseWriter, r *http.Request, user models.User) {
	tx, err := h.store.GetTransaction(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respond.Fail(w, err, "Transaction")
		return
	}
	respond.JSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request, user models.User) {
	in, upload, ok := h.readInput(w, r)
	if !ok {
		return
	}
	if upload != nil {
		defer upload.body.Close()
	}
	tx, err := in.NewTransaction(user.ID, h.now())
	if err != nil {
		respond.Fail(w, err, "create transaction")
		return
	}
	if upload != nil {
		url, err := h.saveReceipt(upload)
		if err != nil {
			respond.Fail(w, err, "save receipt")
			return
		}
		tx.ReceiptURL = &url
	}

	created, err := h.store.CreateTransaction(r.Context(), tx)
	if err != nil {
		h.discardReceipt(tx.ReceiptURL)
		respond.Fail(w, err, "create transaction")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *TransactionHandler) handleUpdate(w http.ResponseWriter, r *http.Request, user models.User) {
	in, upload, ok := h.readInput(w, r)
	if !ok {
		return
	}
	if upload != nil {
		defer upload.body.Close()
	}
	existing, err := h.store.GetTransaction(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respond.Fail(w, err, "Transaction")
		return
	}
	merged, err := in.Apply(existing)
	if err != nil {
		respond.Fail(w, err, "update transaction")
		return
	}
	if upload != nil {
		url, err := h.saveReceipt(upload)
		if err != nil {
			respond.Fail(w, err, "save receipt")
			return
		}
		merged.ReceiptURL = &url
	}

	updated, err := h.store.UpdateTransaction(r.Context(), merged)
	if err != nil {
		if upload != nil {
			h.discardReceipt(merged.ReceiptURL)
		}
		respond.Fail(w, err, "Transaction")
		return
	}
	if upload != nil {
		h.discardReceipt(existing.ReceiptURL)
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *TransactionHandler) handleDelete(w http.ResponseWriter, r *http.Request, user models.User) {
	existing, err := h.store.GetTransaction(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respond.Fail(w, err, "Transaction")
		return
	}
	if err := h.store.DeleteTransaction(r.Context(), user.ID, existing.ID); err != nil {
		respond.Fail(w, err, "Transaction")
		return
	}
	h.discardReceipt(existing.ReceiptURL)
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

type receiptUpload struct {
	body io.ReadCloser
	name string
}

// readInput accepts either a JSON body or a multipart form with an optional
// "receipt" file. It writes a 400 and returns false on malformed bodies.
func (h *TransactionHandler) readInput(w http.ResponseWriter, r *http.Request) (dto.TransactionInput, *receiptUpload, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var in dto.TransactionInput
		return in, nil, decodeJSON(w, r, &in)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, "receipt is too large")
			return dto.TransactionInput{}, nil, false
		}
		respond.Error(w, http.StatusBadRequest, "invalid multipart payload")
		return dto.TransactionInput{}, nil, false
	}
	in := dto.TransactionInputFromForm(r.MultipartForm.Value)

	file, header, err := r.FormFile("receipt")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return in, nil, true
	case err != nil:
		respond.Error(w, http.StatusBadRequest, "invalid receipt upload")
		return dto.TransactionInput{}, nil, false
	}
	return in, &receiptUpload{body: file, name: header.Filename}, true
}

func (h *TransactionHandler) saveReceipt(upload *receiptUpload) (string, error) {
	return h.receipts.Save(upload.body, upload.name)
}

// discardReceipt removes a receipt file, logging instead of failing the request.
func (h *TransactionHandler) discardReceipt(url *string) {
	if url == nil {
		return
	}
	if err := h.receipts.Remove(*url); err != nil {
		log.Printf("remove receipt %s: %v", *url, err)
	}
}
