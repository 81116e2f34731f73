package pkcs7

import (
	"bytes"
	"crypto"
	"crypto/cipher"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"io"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/protocol"
	"github.com/pkg/errors"
)

// Encrypt envelopes content for recipients, which must have RSA keys. An empty
// cipher name uses the engine's default cipher. The Text flag converts content
// to a text/plain MIME entity first.
func (e *Engine) Encrypt(content io.Reader, recipients []*x509.Certificate, cipherName string, flags Flags) (*EnvelopedData, error) {
	const op = "encrypt"

	if content == nil {
		return nil, errorf(ArgumentError, op, "nil content")
	}
	if len(recipients) == 0 {
		return nil, errorf(EncryptError, op, "no recipients")
	}

	if cipherName == "" {
		cipherName = e.cipher
	}
	c, ok := e.algs.CipherByName(cipherName)
	if !ok {
		return nil, errorf(EncryptError, op, "unknown cipher %q", cipherName)
	}

	for _, cert := range recipients {
		if cert == nil {
			return nil, errorf(ArgumentError, op, "nil recipient")
		}
		if _, ok := cert.PublicKey.(*rsa.PublicKey); !ok {
			return nil, errorf(EncryptError, op, "recipient %s doesn't have an RSA key", cert.Subject)
		}
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to read content")
	}
	if flags.Has(Text) {
		data = textContent(data)
	}

	key := make([]byte, c.KeySize)
	if _, err = io.ReadFull(e.rand, key); err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to generate key")
	}
	iv := make([]byte, c.BlockSize)
	if _, err = io.ReadFull(e.rand, iv); err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to generate iv")
	}

	block, err := c.New(key)
	if err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to create cipher")
	}
	padded := pad(data, c.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	params, err := asn1.Marshal(iv)
	if err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to encode iv")
	}
	algo := pkix.AlgorithmIdentifier{
		Algorithm:  c.OID,
		Parameters: asn1.RawValue{FullBytes: params},
	}

	ped := &protocol.EnvelopedData{
		Version:              0,
		RecipientInfos:       make([]protocol.RecipientInfo, 0, len(recipients)),
		EncryptedContentInfo: protocol.NewEncryptedContentInfo(oid.ContentTypeData, algo, ciphertext),
	}

	for _, cert := range recipients {
		ek, err := rsa.EncryptPKCS1v15(e.rand, cert.PublicKey.(*rsa.PublicKey), key)
		if err != nil {
			return nil, wrapError(EncryptError, op, err, "failed to encrypt key")
		}
		ri, err := protocol.NewRecipientInfo(cert, ek)
		if err != nil {
			return nil, wrapError(EncryptError, op, err, "bad recipient certificate")
		}
		ped.RecipientInfos = append(ped.RecipientInfos, ri)
	}

	e.log.Debugf("pkcs7: encrypted %d bytes with %s for %d recipients", len(data), c.Name, len(recipients))

	// Round trip through DER so the container holds only what was encoded.
	der, err := ped.ContentInfoDER()
	if err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to encode")
	}
	ci, err := protocol.ParseContentInfo(der)
	if err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to encode")
	}
	if ped, err = ci.EnvelopedDataContent(); err != nil {
		return nil, wrapError(EncryptError, op, err, "failed to encode")
	}

	return &EnvelopedData{ped: ped}, nil
}

// Decrypt recovers the content of an EnvelopedData or SignedAndEnvelopedData
// addressed to cert. key is the matching private key, either an
// *rsa.PrivateKey or a crypto.Decrypter. If the message isn't addressed to
// cert, uses a cipher missing from the algorithm table or key can't open it,
// Decrypt returns false with a nil error.
func (e *Engine) Decrypt(c Container, cert *x509.Certificate, key crypto.PrivateKey) ([]byte, bool, error) {
	const op = "decrypt"

	var (
		ris []protocol.RecipientInfo
		eci protocol.EncryptedContentInfo
	)
	switch c := c.(type) {
	case *EnvelopedData:
		ris, eci = c.ped.RecipientInfos, c.ped.EncryptedContentInfo
	case *SignedAndEnvelopedData:
		ris, eci = c.psed.RecipientInfos, c.psed.EncryptedContentInfo
	default:
		return nil, false, errorf(ArgumentError, op, "container is not enveloped")
	}
	if cert == nil {
		return nil, false, errorf(ArgumentError, op, "nil certificate")
	}

	if key == nil {
		e.log.Warnf("pkcs7: no key to decrypt with")
		return nil, false, nil
	}

	var ri *protocol.RecipientInfo
	for i := range ris {
		if ris[i].IssuerAndSerialNumber.Matches(cert) {
			ri = &ris[i]
			break
		}
	}
	if ri == nil {
		e.log.Warnf("pkcs7: message is not addressed to %s", cert.Subject)
		return nil, false, nil
	}

	ciph, ok := e.algs.CipherByOID(eci.ContentEncryptionAlgorithm.Algorithm)
	if !ok {
		e.log.Warnf("pkcs7: unsupported cipher %s", eci.ContentEncryptionAlgorithm.Algorithm)
		return nil, false, nil
	}

	cek, err := unwrapKey(key, ri.EncryptedKey)
	if err != nil {
		e.log.Warnf("pkcs7: failed to decrypt content key: %v", err)
		return nil, false, nil
	}
	if len(cek) != ciph.KeySize {
		e.log.Warnf("pkcs7: content key is %d bytes, want %d", len(cek), ciph.KeySize)
		return nil, false, nil
	}

	iv, err := eci.IV()
	if err != nil || len(iv) != ciph.BlockSize {
		e.log.Warnf("pkcs7: bad iv")
		return nil, false, nil
	}

	ciphertext, err := eci.Ciphertext()
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%ciph.BlockSize != 0 {
		e.log.Warnf("pkcs7: bad ciphertext length")
		return nil, false, nil
	}

	block, err := ciph.New(cek)
	if err != nil {
		e.log.Warnf("pkcs7: %v", err)
		return nil, false, nil
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	data, err := unpad(plaintext, ciph.BlockSize)
	if err != nil {
		e.log.Warnf("pkcs7: %v", err)
		return nil, false, nil
	}

	return data, true, nil
}

func unwrapKey(key crypto.PrivateKey, encryptedKey []byte) ([]byte, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return rsa.DecryptPKCS1v15(nil, k, encryptedKey)
	case crypto.Decrypter:
		if _, ok := k.Public().(*rsa.PublicKey); !ok {
			return nil, errors.New("key transport requires an RSA key")
		}
		return k.Decrypt(nil, encryptedKey, &rsa.PKCS1v15DecryptOptions{})
	default:
		return nil, errors.Errorf("unsupported private key %T", key)
	}
}

// pad appends PKCS#7 padding.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize

	return append(clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty plaintext")
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("bad padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("bad padding")
		}
	}

	return data[:len(data)-n], nil
}
