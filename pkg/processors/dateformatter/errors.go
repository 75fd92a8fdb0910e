package dateformatter

import "fmt"

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("dateformatter config error [%s]: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("dateformatter config error: %s", e.Message)
}

func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// OperationError represents a failure while executing an operation.
type OperationError struct {
	Operation string
	Message   string
	Err       error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dateformatter %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("dateformatter %s failed: %s", e.Operation, e.Message)
}

func (e *OperationError) Unwrap() error { return e.Err }

func NewOperationError(operation, message string, err error) *OperationError {
	return &OperationError{Operation: operation, Message: message, Err: err}
}
