package pkcs7

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of a pkcs7 error.
type Kind int

const (
	// FormatError means the input matched none of the requested encodings.
	FormatError Kind = iota + 1

	// DecodeError means the encoding was recognized but the ASN.1 inside it
	// is malformed or doesn't match its content type.
	DecodeError

	// SignError means a signature could not be produced.
	SignError

	// VerifyError means the message can't be checked at all, as opposed to a
	// check that ran and failed.
	VerifyError

	// EncryptError means enveloping failed or an algorithm is unsupported.
	EncryptError

	// ArgumentError means the caller passed a value the operation can't use,
	// such as the wrong container variant.
	ArgumentError
)

func (k Kind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case DecodeError:
		return "decode error"
	case SignError:
		return "sign error"
	case VerifyError:
		return "verify error"
	case EncryptError:
		return "encrypt error"
	case ArgumentError:
		return "argument error"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Error is the error type returned by Engine operations.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := "pkcs7"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrVerify) works
// regardless of the cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrFormat   = &Error{Kind: FormatError}
	ErrDecode   = &Error{Kind: DecodeError}
	ErrSign     = &Error{Kind: SignError}
	ErrVerify   = &Error{Kind: VerifyError}
	ErrEncrypt  = &Error{Kind: EncryptError}
	ErrArgument = &Error{Kind: ArgumentError}
)

func newError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: errors.Errorf(format, args...)}
}

func wrapError(kind Kind, op string, err error, msg string) error {
	return &Error{Kind: kind, Op: op, Err: errors.Wrap(err, msg)}
}

// IsKind reports whether err is a pkcs7 error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
