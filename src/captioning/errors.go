package captioning

import (
	"encoding/json"
	"fmt"
)

// TransportError means the endpoint could not be reached or read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("caption transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is a response with status >= 400. Message is error.message from
// the JSON body when present, otherwise the decoded body, otherwise the raw text.
type HTTPError struct {
	StatusCode int
	Message    interface{}
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("caption http %d: %s", e.StatusCode, e.Body)
}

func newHTTPError(status int, raw []byte) *HTTPError {
	e := &HTTPError{StatusCode: status, Body: string(raw), Message: string(raw)}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		var other interface{}
		if json.Unmarshal(raw, &other) == nil {
			e.Message = other
		}
		return e
	}
	e.Message = payload
	if inner, ok := payload["error"].(map[string]interface{}); ok {
		if msg, ok := inner["message"]; ok {
			e.Message = msg
		}
	}
	return e
}

// InvalidResponseError means a successful response was not JSON.
type InvalidResponseError struct {
	Body string
}

func (e *InvalidResponseError) Error() string {
	return "caption response is not valid json"
}

// EmptyResponseError means the response carried no output_text fragment.
type EmptyResponseError struct {
	Payload interface{}
}

func (e *EmptyResponseError) Error() string {
	return "caption response has no output_text"
}
