package stitcher

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrSyntax        = errors.New("stitcher: syntax error")
	ErrDomain        = errors.New("stitcher: geometry outside arcsine domain")
	ErrConfiguration = errors.New("stitcher: invalid configuration")
)

// SyntaxError reports a malformed command string. Pos is the byte offset of
// Token in the input.
type SyntaxError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at %d (end of input): %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("syntax error at %d near %q: %s", e.Pos, e.Token, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// DomainError reports shape parameters for which the radial scale of a hole
// is undefined.
type DomainError struct {
	Hole  int
	Value float64
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error at hole %d (%g): %s", e.Hole, e.Value, e.Msg)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// ConfigurationError reports a value the grammar accepts but the drawing
// cannot use, such as a zero hole count.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
