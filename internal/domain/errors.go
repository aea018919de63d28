package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the export taxonomy. Every *Error unwraps to exactly one of these.
var (
	// ErrConfiguration is returned for misaligned inputs, unknown identities and missing network identifiers
	ErrConfiguration = errors.New("configuration error")

	// ErrResolution is returned when an address does not resolve to a deployed instance of the expected contract
	ErrResolution = errors.New("resolution error")

	// ErrParse is returned when an existing registry file is malformed
	ErrParse = errors.New("parse error")

	// ErrIO is returned for filesystem failures
	ErrIO = errors.New("io error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindResolution    ErrorKind = "resolution"
	KindParse         ErrorKind = "parse"
	KindIO            ErrorKind = "io"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindResolution:
		return ErrResolution
	case KindParse:
		return ErrParse
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Kind     ErrorKind
	Op       string
	Identity ContractIdentity
	Path     string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Identity != "" {
		fmt.Fprintf(&b, " %s", e.Identity)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	fmt.Fprintf(&b, ": %s error", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ConfigurationError builds a configuration error for op.
func ConfigurationError(op string, err error) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

// ResolutionError builds a resolution error for an identity.
func ResolutionError(op string, identity ContractIdentity, err error) *Error {
	return &Error{Kind: KindResolution, Op: op, Identity: identity, Err: err}
}

// ParseError builds a parse error for a file.
func ParseError(op, path string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Path: path, Err: err}
}

// IOError builds an I/O error for a file.
func IOError(op, path string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// UnknownIdentityErr is returned when an identity has no configured artifact paths
type UnknownIdentityErr struct {
	Identity    ContractIdentity
	Suggestions []string
}

func (e UnknownIdentityErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("contract %q is not configured for export", e.Identity)
	}
	return fmt.Sprintf("contract %q is not configured for export (did you mean %s?)",
		e.Identity, strings.Join(e.Suggestions, ", "))
}

// MisalignedInputErr is returned when identities and addresses cannot be paired positionally
type MisalignedInputErr struct {
	Identities int
	Addresses  int
}

func (e MisalignedInputErr) Error() string {
	return fmt.Sprintf("got %d contract identities but %d addresses", e.Identities, e.Addresses)
}
