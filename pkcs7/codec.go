package pkcs7

import (
	"bytes"
	"encoding/pem"
	"io"
	"strings"

	"github.com/github/pkcs7/protocol"
	"github.com/pkg/errors"
)

// Format is a PKCS7 transfer encoding.
type Format int

const (
	// FormatAuto tries DER, then PEM, then S/MIME.
	FormatAuto Format = iota
	FormatDER
	FormatPEM
	FormatSMIME
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatDER:
		return "der"
	case FormatPEM:
		return "pem"
	case FormatSMIME:
		return "smime"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted by String.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "der":
		return FormatDER, nil
	case "pem":
		return FormatPEM, nil
	case "smime":
		return FormatSMIME, nil
	default:
		return 0, errorf(ArgumentError, "parse format", "unknown format %q", name)
	}
}

// PEM block types accepted when decoding. Encode always writes PKCS7.
var pemTypes = map[string]bool{
	"PKCS7":               true,
	"PKCS #7 SIGNED DATA": true,
	"CMS":                 true,
	"SIGNED MESSAGE":      true,
}

// decodeResult is the outcome of one decoding attempt. recognized is false
// when the input isn't in the attempted encoding at all.
type decodeResult struct {
	container  Container
	content    []byte
	recognized bool
	err        error
}

type decoder func(e *Engine, b []byte) decodeResult

var decoders = map[Format]decoder{
	FormatDER:   decodeDER,
	FormatPEM:   decodePEM,
	FormatSMIME: decodeSMIME,
}

// Decode reads a PKCS7 container from r. For multipart/signed S/MIME input the
// second return value is the detached content; it is nil otherwise.
//
// If r is an io.Seeker it is rewound to its starting offset before each
// attempt, otherwise the input is buffered once. r is not closed.
func (e *Engine) Decode(r io.Reader, format Format) (Container, []byte, error) {
	const op = "decode"

	var order []Format
	switch format {
	case FormatAuto:
		order = []Format{FormatDER, FormatPEM, FormatSMIME}
	case FormatDER, FormatPEM, FormatSMIME:
		order = []Format{format}
	default:
		return nil, nil, errorf(ArgumentError, op, "unknown format %d", int(format))
	}
	if r == nil {
		return nil, nil, errorf(ArgumentError, op, "nil reader")
	}

	load, err := newLoader(r)
	if err != nil {
		return nil, nil, wrapError(FormatError, op, err, "failed to read input")
	}

	var firstErr error
	for _, f := range order {
		b, err := load()
		if err != nil {
			return nil, nil, wrapError(FormatError, op, err, "failed to read input")
		}

		e.log.Debugf("pkcs7: trying %s decoding", f)
		res := decoders[f](e, b)
		if !res.recognized {
			continue
		}
		if res.err != nil {
			e.log.Debugf("pkcs7: %s decoding failed: %v", f, res.err)
			if firstErr == nil {
				firstErr = newError(DecodeError, op, res.err)
			}
			continue
		}

		return res.container, res.content, nil
	}

	if firstErr != nil {
		return nil, nil, firstErr
	}

	return nil, nil, errorf(FormatError, op, "input is not %s encoded PKCS7", format)
}

// DecodeBytes decodes a PKCS7 container from b. b is copied.
func (e *Engine) DecodeBytes(b []byte, format Format) (Container, []byte, error) {
	return e.Decode(bytes.NewReader(clone(b)), format)
}

// newLoader returns a function that yields the whole input for each decoding
// attempt.
func newLoader(r io.Reader) (func() ([]byte, error), error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err == nil {
			return func() ([]byte, error) {
				if _, err := rs.Seek(start, io.SeekStart); err != nil {
					return nil, err
				}
				return io.ReadAll(rs)
			}, nil
		}
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return func() ([]byte, error) {
		return io.ReadAll(bytes.NewReader(buf))
	}, nil
}

func decodeDER(_ *Engine, b []byte) decodeResult {
	// Every ContentInfo is a SEQUENCE.
	if len(b) == 0 || b[0] != 0x30 {
		return decodeResult{}
	}

	c, err := parseContainer(b)

	return decodeResult{container: c, recognized: true, err: err}
}

func decodePEM(_ *Engine, b []byte) decodeResult {
	block, _ := pem.Decode(b)
	if block == nil || !pemTypes[block.Type] {
		return decodeResult{}
	}

	c, err := parseContainer(block.Bytes)

	return decodeResult{container: c, recognized: true, err: err}
}

func parseContainer(ber []byte) (Container, error) {
	ci, err := protocol.ParseContentInfo(ber)
	if err != nil {
		return nil, errors.Wrap(err, "bad ContentInfo")
	}

	c, err := fromContentInfo(ci)
	if err != nil {
		return nil, errors.Wrapf(err, "bad %s content", typeName(ci.ContentType))
	}

	return c, nil
}

// Encode writes c as DER, PEM or S/MIME. S/MIME output never carries detached
// content; use EncodeSMIME for that.
func (e *Engine) Encode(c Container, format Format) ([]byte, error) {
	const op = "encode"

	if c == nil {
		return nil, errorf(ArgumentError, op, "nil container")
	}

	switch format {
	case FormatDER:
		der, err := c.der()
		if err != nil {
			return nil, wrapError(ArgumentError, op, err, "failed to encode container")
		}
		return der, nil
	case FormatPEM:
		der, err := c.der()
		if err != nil {
			return nil, wrapError(ArgumentError, op, err, "failed to encode container")
		}
		return pem.EncodeToMemory(&pem.Block{Type: "PKCS7", Bytes: der}), nil
	case FormatSMIME:
		return e.EncodeSMIME(c, nil, 0)
	default:
		return nil, errorf(ArgumentError, op, "cannot encode as %s", format)
	}
}
