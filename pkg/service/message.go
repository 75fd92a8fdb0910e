package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wehubfusion/Daedalus/pkg/processors/dateformatter"
)

// Request is a date-format request received over NATS. Operation is implied
// by the subject the request arrives on; the body carries the spec(s) and
// payload.
type Request struct {
	// CorrelationID is a unique identifier for tracking related messages
	// across the system. A missing ID is filled in by the service.
	CorrelationID string `json:"correlationId,omitempty"`

	// Spec is the date-format spec for parse and format requests
	Spec string `json:"spec,omitempty"`

	// InSpec and OutSpec are the specs for convert requests
	InSpec  string `json:"inSpec,omitempty"`
	OutSpec string `json:"outSpec,omitempty"`

	// Input is the date string for parse and convert requests
	Input string `json:"input,omitempty"`

	// Date carries the components for format requests
	Date *dateformatter.DateValue `json:"date,omitempty"`

	// Is24Hour optionally overrides the hour mode derived from the spec
	Is24Hour *bool `json:"is24Hour,omitempty"`

	// CreatedAt is the timestamp when the request was created
	CreatedAt string `json:"createdAt,omitempty"`
}

// NewRequest creates a request with a fresh correlation ID and timestamp.
func NewRequest() *Request {
	return &Request{
		CorrelationID: uuid.NewString(),
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

// WithSpec sets the spec for parse and format requests
func (r *Request) WithSpec(spec string) *Request {
	r.Spec = spec
	return r
}

// WithInput sets the input string for parse and convert requests
func (r *Request) WithInput(input string) *Request {
	r.Input = input
	return r
}

// WithConversion sets the spec pair for convert requests
func (r *Request) WithConversion(inSpec, outSpec string) *Request {
	r.InSpec = inSpec
	r.OutSpec = outSpec
	return r
}

// WithDate sets the date components for format requests
func (r *Request) WithDate(date dateformatter.DateValue) *Request {
	r.Date = &date
	return r
}

// ToBytes serializes the request to JSON bytes
func (r *Request) ToBytes() ([]byte, error) {
	return json.Marshal(r)
}

// RequestFromBytes deserializes a request from JSON bytes
func RequestFromBytes(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ErrorInfo carries error details in a failed response
type ErrorInfo struct {
	// Code classifies the failure: "INVALID_REQUEST", "SPEC_ERROR",
	// "PARSE_ERROR" or "FORMAT_ERROR"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`
}

// Response is the reply to a Request.
type Response struct {
	// CorrelationID echoes the request's correlation ID
	CorrelationID string `json:"correlationId,omitempty"`

	// Status is "success" or "failed"
	Status string `json:"status"`

	// Result is the rendered string for format and convert requests
	Result string `json:"result,omitempty"`

	// Date carries the parsed components for parse requests
	Date *dateformatter.DateValue `json:"date,omitempty"`

	// Error is present when Status is "failed"
	Error *ErrorInfo `json:"error,omitempty"`

	// CreatedAt is the timestamp when the response was created
	CreatedAt string `json:"createdAt"`
}

func newResponse(correlationID string) *Response {
	return &Response{
		CorrelationID: correlationID,
		Status:        "success",
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

func errorResponse(correlationID, code string, err error) *Response {
	return &Response{
		CorrelationID: correlationID,
		Status:        "failed",
		Error:         &ErrorInfo{Code: code, Message: err.Error()},
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

// IsSuccess returns true if the request succeeded
func (r *Response) IsSuccess() bool {
	return r.Status == "success"
}

// ToBytes serializes the response to JSON bytes
func (r *Response) ToBytes() ([]byte, error) {
	return json.Marshal(r)
}

// ResponseFromBytes deserializes a response from JSON bytes
func ResponseFromBytes(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
