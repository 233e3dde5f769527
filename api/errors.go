package api

import "fmt"

// APIError is returned for any non-2xx response that has no more specific
// type. Body holds the decoded JSON error body, or the raw string when the
// body was not JSON.
type APIError struct {
	StatusCode int
	Body       any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %v", e.StatusCode, e.Body)
}

// BadRequestError is returned for 400 responses: the request payload was
// rejected by the service's validation.
type BadRequestError struct {
	APIError
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %v", e.Body)
}

// InternalServerError is returned for 500 responses.
type InternalServerError struct {
	APIError
}

func (e *InternalServerError) Error() string {
	return fmt.Sprintf("internal server error: %v", e.Body)
}
