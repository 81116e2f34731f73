package pkcs7

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	err := wrapError(DecodeError, "decode", io.ErrUnexpectedEOF, "bad input")

	require.True(t, errors.Is(err, ErrDecode))
	require.False(t, errors.Is(err, ErrFormat))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, io.ErrUnexpectedEOF, errors.Cause(errors.Unwrap(err)))
	require.True(t, IsKind(err, DecodeError))
	require.False(t, IsKind(io.EOF, DecodeError))
}

func TestErrorString(t *testing.T) {
	err := errorf(VerifyError, "verify", "no signers")
	require.Equal(t, "pkcs7: verify: verify error: no signers", err.Error())

	require.Equal(t, "pkcs7: argument error", ErrArgument.Error())
	require.Equal(t, "error kind 42", Kind(42).String())
}

func TestErrorWrapped(t *testing.T) {
	err := errors.Wrap(newError(SignError, "sign", io.EOF), "outer")

	require.True(t, errors.Is(err, ErrSign))
	require.True(t, IsKind(err, SignError))
}
