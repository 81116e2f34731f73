package pkcs7

import (
	"crypto"
	"crypto/sha512"
	"strings"
	"testing"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/protocol"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	e := New(WithDigest(crypto.SHA512))

	dd, err := e.Digest(strings.NewReader("hello"))
	require.NoError(t, err)
	require.Equal(t, 0, dd.Version())
	require.True(t, dd.DigestAlgorithm().Algorithm.Equal(oid.DigestAlgorithmSHA512))
	require.True(t, dd.InnerContentType().Equal(oid.ContentTypeData))
	require.Equal(t, []byte("hello"), dd.Content())

	sum := sha512.Sum512([]byte("hello"))
	require.Equal(t, sum[:], dd.Digest())

	ok, err := e.CheckDigest(dd)
	require.NoError(t, err)
	require.True(t, ok)

	// survives a round trip
	der, err := e.Encode(dd, FormatDER)
	require.NoError(t, err)
	c, _, err := e.DecodeBytes(der, FormatDER)
	require.NoError(t, err)

	ok, err = New().CheckDigest(c.(*DigestData))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckDigestMismatch(t *testing.T) {
	e := New()

	dd, err := e.Digest(strings.NewReader("hello"))
	require.NoError(t, err)
	dd.pdd.Digest[0] ^= 0xFF

	ok, err := e.CheckDigest(dd)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDigestErrors(t *testing.T) {
	_, err := New().Digest(nil)
	require.True(t, IsKind(err, ArgumentError))

	_, err = New(WithDigest(crypto.MD4)).Digest(strings.NewReader("hello"))
	require.True(t, IsKind(err, SignError))

	_, err = New().CheckDigest(nil)
	require.True(t, IsKind(err, ArgumentError))

	dd, err := New().Digest(strings.NewReader("hello"))
	require.NoError(t, err)

	noContent := &DigestData{pdd: &protocol.DigestedData{
		DigestAlgorithm: dd.pdd.DigestAlgorithm,
		ContentInfo:     protocol.NewContentInfo(oid.ContentTypeData, nil),
		Digest:          dd.pdd.Digest,
	}}
	_, err = New().CheckDigest(noContent)
	require.True(t, IsKind(err, VerifyError))

	dd.pdd.DigestAlgorithm.Algorithm = oid.DigestAlgorithmMD5
	_, err = New().CheckDigest(dd)
	require.True(t, IsKind(err, VerifyError))
}
