package schema

import "fmt"

// ValidationError is returned when a value is assigned to a field it does not fit
type ValidationError struct {
	Model  string
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("invalid value for field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid value for field %s.%s: %s", e.Model, e.Field, e.Reason)
}

// ConfigurationError is returned when a model definition can not be built
type ConfigurationError struct {
	Model  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Model == "" {
		return "invalid model configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid model %s: %s", e.Model, e.Reason)
}

func configErrorf(model string, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Model: model, Reason: fmt.Sprintf(format, args...)}
}
