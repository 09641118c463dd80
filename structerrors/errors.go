package structerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotRecordType indicates a conversion target that does not denote a
	// constructible record type.
	ErrNotRecordType = errors.New("not a record type")

	// ErrUnknownKeys indicates input keys not declared on the target record.
	ErrUnknownKeys = errors.New("unknown keys")

	// ErrMissingKeys indicates required target fields absent from the input.
	ErrMissingKeys = errors.New("missing keys")

	// ErrUnresolvableKeys indicates textual keys that resolve to no interned
	// symbol.
	ErrUnresolvableKeys = errors.New("unresolvable keys")

	// ErrInvalidKeys indicates keys that are neither symbolic nor textual.
	ErrInvalidKeys = errors.New("invalid keys")

	// ErrConfig indicates a malformed nested conversion configuration.
	ErrConfig = errors.New("configuration error")
)

// TargetError represents a conversion target that cannot be constructed.
// The convert engine wraps every such failure in a TargetError so callers
// can recover the offending target reference.
type TargetError struct {
	// Target is the target type reference that failed to resolve
	Target string
	// Message provides additional context, if any
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TargetError) Error() string {
	msg := "not a record type"
	if e.Target != "" {
		msg += ": " + e.Target
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TargetError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TargetError) Is(target error) bool {
	return target == ErrNotRecordType
}

// KeyCategory identifies which key-set validation failed.
type KeyCategory int

const (
	// KeysUnknown: input keys not declared as fields on the target record.
	KeysUnknown KeyCategory = iota

	// KeysMissing: required target fields absent from the input.
	KeysMissing

	// KeysUnresolvable: textual keys with no interned symbol.
	KeysUnresolvable

	// KeysInvalid: keys that are neither symbolic nor textual.
	KeysInvalid
)

// String returns the string representation of the category.
func (c KeyCategory) String() string {
	switch c {
	case KeysUnknown:
		return "unknown keys"
	case KeysMissing:
		return "missing keys"
	case KeysUnresolvable:
		return "unresolvable keys"
	case KeysInvalid:
		return "invalid keys"
	default:
		return "unknown category"
	}
}

// KeyError represents a key-set validation failure from the strict engine.
// Exactly one category applies; Keys holds the offending key names in sorted
// order for deterministic output.
type KeyError struct {
	// Category is the validation that failed
	Category KeyCategory
	// Target is the record type being constructed
	Target string
	// Keys are the offending keys, sorted. Non-string keys are rendered
	// with their Go formatting.
	Keys []string
}

// Error returns a human-readable error message.
func (e *KeyError) Error() string {
	msg := e.Category.String()
	if e.Target != "" {
		msg += " for " + e.Target
	}
	if len(e.Keys) > 0 {
		msg += ": [" + strings.Join(e.Keys, ", ") + "]"
	}
	return msg
}

// Unwrap returns nil as KeyError has no underlying cause.
func (e *KeyError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error's category sentinel.
func (e *KeyError) Is(target error) bool {
	switch e.Category {
	case KeysUnknown:
		return target == ErrUnknownKeys
	case KeysMissing:
		return target == ErrMissingKeys
	case KeysUnresolvable:
		return target == ErrUnresolvableKeys
	case KeysInvalid:
		return target == ErrInvalidKeys
	default:
		return false
	}
}

// ConfigError represents a malformed nested conversion configuration, such
// as a reserved key with an unusable payload shape.
type ConfigError struct {
	// Key is the configuration key with the problem
	Key string
	// Value is the problematic payload (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Key != "" {
		msg += " for " + e.Key
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
