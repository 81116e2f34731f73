package pkcs7

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"io"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/protocol"
)

// Digest creates a DigestData over content with the engine's digest
// algorithm.
func (e *Engine) Digest(content io.Reader) (*DigestData, error) {
	const op = "digest"

	if content == nil {
		return nil, errorf(ArgumentError, op, "nil content")
	}

	d, ok := e.algs.DigestByHash(e.digest)
	if !ok || !d.Hash.Available() {
		return nil, errorf(SignError, op, "unsupported digest %v", e.digest)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, wrapError(SignError, op, err, "failed to read content")
	}
	inner, err := asn1.Marshal(append([]byte{}, data...))
	if err != nil {
		return nil, wrapError(SignError, op, err, "failed to encode content")
	}

	pdd := &protocol.DigestedData{
		Version:         0,
		DigestAlgorithm: pkix.AlgorithmIdentifier{Algorithm: d.OID, Parameters: asn1.NullRawValue},
		ContentInfo:     protocol.NewContentInfo(oid.ContentTypeData, inner),
		Digest:          hashSum(d.Hash, data),
	}

	return &DigestData{pdd: pdd}, nil
}

// CheckDigest reports whether a DigestData's digest matches its content. A
// DigestData without content or with an unknown algorithm is an error.
func (e *Engine) CheckDigest(dd *DigestData) (bool, error) {
	const op = "check digest"

	if dd == nil {
		return false, errorf(ArgumentError, op, "nil digest data")
	}

	d, ok := e.algs.DigestByOID(dd.pdd.DigestAlgorithm.Algorithm)
	if !ok || !d.Hash.Available() {
		return false, errorf(VerifyError, op, "unsupported digest algorithm %s", dd.pdd.DigestAlgorithm.Algorithm)
	}

	content := dd.Content()
	if content == nil {
		return false, errorf(VerifyError, op, "no content")
	}

	return bytes.Equal(hashSum(d.Hash, content), dd.pdd.Digest), nil
}
