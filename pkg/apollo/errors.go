package apollo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is returned when Apollo answers with a 4xx/5xx status
type APIError struct {
	StatusCode int
	Message    string // upstream "message" field, may be empty
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// ErrorMessage returns the text a caller should see for err.
// Upstream messages win over transport details.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return err.Error()
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Message.(string); ok {
			apiErr.Message = msg
		}
	}

	return apiErr
}
