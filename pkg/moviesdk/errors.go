package moviesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is any non-success response from the API.
type APIError struct {
	StatusCode int

	// Message is the detail flattened to text.
	Message string

	// Issues is set for 422 responses.
	Issues []ValidationIssue

	// Challenge is the WWW-Authenticate header, if any.
	Challenge string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moviesdk: HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports a 401: bad credentials or a bad or expired token.
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }

// IsNotFound reports a 404.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// parseErrorResponse turns a failed response into an *APIError. detail may be
// a string, an {"error": "..."} object or a list of validation issues.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Challenge:  resp.Header.Get("WWW-Authenticate"),
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		apiErr.Message = text
		return apiErr
	}

	var obj ErrorDetail
	if err := json.Unmarshal(envelope.Detail, &obj); err == nil && obj.Error != "" {
		apiErr.Message = obj.Error
		return apiErr
	}

	var issues []ValidationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err == nil && len(issues) > 0 {
		apiErr.Issues = issues
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, strings.Join(issue.Location, ".")+": "+issue.Message)
		}
		apiErr.Message = strings.Join(msgs, "; ")
		return apiErr
	}

	apiErr.Message = string(envelope.Detail)
	return apiErr
}
