package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapsToKindAndCause(t *testing.T) {
	err := IOError("write registry", "/tmp/TokenAddress.json", fs.ErrPermission)
	wrapped := fmt.Errorf("sync Token: %w", err)

	assert.True(t, errors.Is(wrapped, ErrIO))
	assert.True(t, errors.Is(wrapped, fs.ErrPermission))
	assert.False(t, errors.Is(wrapped, ErrParse))
	assert.Equal(t, KindIO, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{
		Kind:     KindResolution,
		Op:       "resolve contract",
		Identity: "Token",
		Err:      errors.New("no code at address"),
	}
	assert.Equal(t, "resolve contract Token: resolution error: no code at address", err.Error())

	err = ParseError("read registry", "TokenAddress.json", errors.New("bad"))
	assert.Equal(t, "read registry (TokenAddress.json): parse error: bad", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestUnknownIdentityErr(t *testing.T) {
	assert.Equal(t, `contract "Tokn" is not configured for export (did you mean Token?)`,
		UnknownIdentityErr{Identity: "Tokn", Suggestions: []string{"Token"}}.Error())
	assert.Equal(t, `contract "X" is not configured for export`,
		UnknownIdentityErr{Identity: "X"}.Error())
}
