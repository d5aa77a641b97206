package types

import (
	"encoding/json"
	"net/http"
)

// Response is a completed RFID API exchange as delivered by the transport.
// Body holds the bytes the server sent, untouched.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Status     string      `json:"status"`
	Header     http.Header `json:"header,omitempty"`
	Body       []byte      `json:"body"`
}

// JSON decodes Body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
