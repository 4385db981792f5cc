package waqi

import "fmt"

// NetworkError is a failed request: the connection never completed or the API
// answered with a non-2xx status.
type NetworkError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseFormatError is a response body that could not be decoded into the
// shape the API documents.
type ResponseFormatError struct {
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// APIError is a well-formed WAQI error envelope (invalid token, over quota,
// unknown station) carrying the API's own message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.Message)
}
