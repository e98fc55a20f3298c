package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/lussekatt/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

// writeError emits the {"detail": "..."} error envelope used on every
// non-2xx response.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeStoreError translates a failed write for the client: integrity
// violations become a 409 carrying the handler's message, anything else a
// generic 500.
func writeStoreError(w http.ResponseWriter, err error, conflictMsg string) {
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, conflictMsg)
		return
	}
	logger.Error.Printf("Store failure: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

type validatable interface {
	Validate() error
}

// decodeBody parses the JSON body into dst and, if dst carries validation
// rules, enforces them. Writes the 400 itself and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	v, ok := dst.(validatable)
	if !ok {
		return true
	}
	if err := v.Validate(); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			writeError(w, http.StatusBadRequest, validationDetail(validateErrs))
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func validationDetail(errs validator.ValidationErrors) string {
	var msgs []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// pathID parses the named integer path segment. A non-numeric value never
// matches a stored row, so callers respond 404 when ok is false.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query param, falling back when absent or garbled.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
