package spacetraders

import (
	"fmt"
	"net/http"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spacetraders: status %d", e.StatusCode)
	}
	if e.Code != 0 {
		return fmt.Sprintf("spacetraders: %s (code %d, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("spacetraders: %s (status %d)", e.Message, e.StatusCode)
}

// Is lets errors.Is(err, domain.ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}
