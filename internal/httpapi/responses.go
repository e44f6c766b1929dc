package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

const maxJSONBody = 1 << 20

var validate = validator.New()

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, conversation.ErrUnknownAgent):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, conversation.ErrEmptyInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, conversation.ErrBusy):
		return http.StatusConflict, "BUSY"
	case errors.Is(err, conversation.ErrUploadNotAllowed):
		return http.StatusConflict, "UPLOAD_NOT_ALLOWED"
	case errors.Is(err, models.ErrUnsupportedFile):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_FILE"
	case errors.Is(err, models.ErrTransport):
		return http.StatusBadGateway, "UPSTREAM"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeJSON(w, status, errorEnvelope{Error: apiError{Code: code, Message: err.Error()}})
}

// decodeJSON reads a JSON body into dst and validates struct tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", models.ErrInvalidArgument)
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	if err := validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// dst is not a struct, nothing to check
			return nil
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	return nil
}
