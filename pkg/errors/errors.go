package errors

import (
	"fmt"
)

// UnknownFamilyError reports a semantic color family name outside the
// declared set. The resolver never substitutes a default family; callers
// must fix the name.
type UnknownFamilyError struct {
	Family string
}

// NewUnknownFamilyError constructs an UnknownFamilyError.
func NewUnknownFamilyError(family string) error {
	return &UnknownFamilyError{Family: family}
}

func (e *UnknownFamilyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown color family: %q", e.Family)
}

// UnknownShadeError reports a shade name outside the declared five-step scale.
type UnknownShadeError struct {
	Shade string
}

// NewUnknownShadeError constructs an UnknownShadeError.
func NewUnknownShadeError(shade string) error {
	return &UnknownShadeError{Shade: shade}
}

func (e *UnknownShadeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown shade: %q", e.Shade)
}

// UnknownContextError reports an undeclared theme context name.
type UnknownContextError struct {
	Context string
}

// NewUnknownContextError constructs an UnknownContextError.
func NewUnknownContextError(context string) error {
	return &UnknownContextError{Context: context}
}

func (e *UnknownContextError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown theme context: %q", e.Context)
}

// UnknownSchemeError reports an undeclared color-scheme name.
type UnknownSchemeError struct {
	Scheme string
}

// NewUnknownSchemeError constructs an UnknownSchemeError.
func NewUnknownSchemeError(scheme string) error {
	return &UnknownSchemeError{Scheme: scheme}
}

func (e *UnknownSchemeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown color scheme: %q", e.Scheme)
}

// InvalidColorError reports a color value that is not a six-digit hex triplet.
type InvalidColorError struct {
	Value string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value string) error {
	return &InvalidColorError{Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color value: %q (want #RRGGBB)", e.Value)
}

// ParseError represents a palette file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette configuration issues such as a family
// missing one of its five shades.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
