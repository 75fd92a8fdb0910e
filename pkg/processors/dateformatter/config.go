package dateformatter

import (
	"encoding/json"
	"fmt"
)

// Config defines the configuration for a date formatter operation
type Config struct {
	// Operation specifies which operation to perform: "parse", "format" or
	// "convert"
	Operation string `json:"operation"`

	// Params contains operation-specific parameters
	Params json.RawMessage `json:"params"`
}

// ParseParams defines parameters for the parse operation
type ParseParams struct {
	// Spec is the date-format spec the input strings must match
	// (e.g. "YYYY-MM-DD hh:mm:ss.SSSS+HH:MM")
	Spec string `json:"spec"`

	// Is24Hour optionally overrides the hour mode derived from the spec
	Is24Hour *bool `json:"is_24hour,omitempty"`
}

// FormatParams defines parameters for the format operation
type FormatParams struct {
	// Spec is the date-format spec used to render the date value
	Spec string `json:"spec"`

	// Is24Hour optionally overrides the hour mode derived from the spec
	Is24Hour *bool `json:"is_24hour,omitempty"`
}

// ConvertParams defines parameters for the convert operation, which parses
// with one spec and re-renders with another
type ConvertParams struct {
	InSpec   string `json:"in_spec"`
	OutSpec  string `json:"out_spec"`
	Is24Hour *bool  `json:"is_24hour,omitempty"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Operation {
	case "":
		return NewConfigError("operation", "operation cannot be empty")
	case "parse":
		var params ParseParams
		if err := json.Unmarshal(c.Params, &params); err != nil {
			return NewConfigError("params", fmt.Sprintf("invalid parse params: %v", err))
		}
		return params.Validate()
	case "format":
		var params FormatParams
		if err := json.Unmarshal(c.Params, &params); err != nil {
			return NewConfigError("params", fmt.Sprintf("invalid format params: %v", err))
		}
		return params.Validate()
	case "convert":
		var params ConvertParams
		if err := json.Unmarshal(c.Params, &params); err != nil {
			return NewConfigError("params", fmt.Sprintf("invalid convert params: %v", err))
		}
		return params.Validate()
	default:
		return NewConfigError("operation",
			fmt.Sprintf("invalid operation '%s', supported operations are 'parse', 'format' and 'convert'", c.Operation))
	}
}

// Validate checks if the parse parameters are valid
func (p *ParseParams) Validate() error {
	if p.Spec == "" {
		return NewConfigError("params.spec", "spec cannot be empty")
	}
	return nil
}

// Validate checks if the format parameters are valid
func (p *FormatParams) Validate() error {
	if p.Spec == "" {
		return NewConfigError("params.spec", "spec cannot be empty")
	}
	return nil
}

// Validate checks if the convert parameters are valid
func (p *ConvertParams) Validate() error {
	if p.InSpec == "" {
		return NewConfigError("params.in_spec", "input spec cannot be empty")
	}
	if p.OutSpec == "" {
		return NewConfigError("params.out_spec", "output spec cannot be empty")
	}
	return nil
}
