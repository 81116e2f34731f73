package pkcs7

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/asn1"
	"io"

	"github.com/github/pkcs7/protocol"
	"github.com/pkg/errors"
)

// VerifyOptions control Verify.
type VerifyOptions struct {
	// ExtraCerts are searched for signer certificates and used as untrusted
	// intermediates.
	ExtraCerts []*x509.Certificate

	// Content is the signed content for a detached signature. It must be nil
	// for a signature that embeds its content.
	Content io.Reader

	// Output receives the verified content. Nothing is written unless
	// verification succeeds.
	Output io.Writer

	// Flags may include Text, NoVerify, NoSigs, NoIntern and NoChain.
	Flags Flags
}

// Verify checks every signature on a SignedData. It returns true and the
// signer certificates only if all signers pass. A signature or chain that
// doesn't check out is a false result with a nil error; an error means the
// message couldn't be checked at all.
func (e *Engine) Verify(c Container, store TrustStore, opts VerifyOptions) (bool, []*x509.Certificate, error) {
	const op = "verify"

	sd, ok := c.(*SignedData)
	if !ok || sd == nil {
		return false, nil, errorf(VerifyError, op, "container is not signed data")
	}
	if store == nil && !opts.Flags.Has(NoVerify) {
		return false, nil, errorf(ArgumentError, op, "nil trust store")
	}

	psd := sd.psd
	if len(psd.SignerInfos) == 0 {
		return false, nil, errorf(VerifyError, op, "no signers")
	}
	for _, si := range psd.SignerInfos {
		if h := si.Hash(); h == 0 || !h.Available() {
			return false, nil, errorf(VerifyError, op, "unsupported digest algorithm %s", si.DigestAlgorithm.Algorithm)
		}
		if si.PublicKeyAlgorithm() == x509.UnknownPublicKeyAlgorithm {
			return false, nil, errorf(VerifyError, op, "unsupported signature algorithm %s", si.SignatureAlgorithm.Algorithm)
		}
	}

	var data []byte
	if psd.EncapContentInfo.IsDetached() {
		if opts.Content == nil {
			return false, nil, errorf(VerifyError, op, "detached signature without content")
		}
		var err error
		if data, err = io.ReadAll(opts.Content); err != nil {
			return false, nil, wrapError(VerifyError, op, err, "failed to read content")
		}
	} else {
		if opts.Content != nil {
			return false, nil, errorf(VerifyError, op, "content given for a signature that embeds its content")
		}
		var err error
		if data, err = psd.EncapContentInfo.DigestInput(); err != nil {
			return false, nil, wrapError(VerifyError, op, err, "bad content")
		}
	}

	embedded, err := psd.X509Certificates()
	if err != nil {
		return false, nil, wrapError(VerifyError, op, err, "bad certificates")
	}

	var candidates, intermediates []*x509.Certificate
	if !opts.Flags.Has(NoIntern) {
		candidates = append(candidates, embedded...)
	}
	candidates = append(candidates, opts.ExtraCerts...)
	if !opts.Flags.Has(NoChain) {
		intermediates = append(intermediates, embedded...)
	}
	intermediates = append(intermediates, opts.ExtraCerts...)

	signers := make([]*x509.Certificate, 0, len(psd.SignerInfos))
	for _, si := range psd.SignerInfos {
		cert, err := si.FindCertificate(candidates)
		if err != nil {
			e.log.Warnf("pkcs7: signer certificate not found: %v", err)
			return false, nil, nil
		}

		if !opts.Flags.Has(NoVerify) {
			if _, err := store.VerifyChain(cert, intermediates); err != nil {
				e.log.Warnf("pkcs7: signer certificate %s not trusted: %v", cert.Subject, err)
				return false, nil, nil
			}
		}

		if !opts.Flags.Has(NoSigs) {
			if err := checkSignature(si, cert, psd.EncapContentInfo.EContentType, data); err != nil {
				e.log.Warnf("pkcs7: bad signature from %s: %v", cert.Subject, err)
				return false, nil, nil
			}
		}

		cc, err := copyCertificate(cert)
		if err != nil {
			return false, nil, wrapError(VerifyError, op, err, "bad signer certificate")
		}
		signers = append(signers, cc)
	}

	if opts.Output != nil {
		out := data
		if opts.Flags.Has(Text) {
			if out, ok = stripTextHeader(data); !ok {
				e.log.Warnf("pkcs7: content is not text/plain")
				return false, nil, nil
			}
		}
		if _, err := opts.Output.Write(out); err != nil {
			return false, nil, wrapError(VerifyError, op, err, "failed to write content")
		}
	}

	return true, signers, nil
}

// checkSignature checks one SignerInfo's signature with cert's key. With
// signed attributes the content type and message digest attributes must match
// and the signature covers the attributes; without them it covers content.
func checkSignature(si protocol.SignerInfo, cert *x509.Certificate, contentType asn1.ObjectIdentifier, content []byte) error {
	hash := si.Hash()
	if hash == 0 || !hash.Available() {
		return errors.Errorf("unsupported digest algorithm %s", si.DigestAlgorithm.Algorithm)
	}
	if alg := si.PublicKeyAlgorithm(); alg != cert.PublicKeyAlgorithm {
		return errors.Errorf("signature algorithm %s doesn't match %s key", si.SignatureAlgorithm.Algorithm, cert.PublicKeyAlgorithm)
	}

	signed := content
	if si.SignedAttrs != nil {
		ct, err := si.GetContentTypeAttribute()
		if err != nil {
			return errors.Wrap(err, "content type attribute")
		}
		if !ct.Equal(contentType) {
			return errors.New("content type attribute doesn't match content")
		}

		md, err := si.GetMessageDigestAttribute()
		if err != nil {
			return errors.Wrap(err, "message digest attribute")
		}
		if !bytes.Equal(md, hashSum(hash, content)) {
			return errors.New("message digest mismatch")
		}

		if signed, err = si.SignedAttrs.MarshaledForSigning(); err != nil {
			return err
		}
	}

	hashed := hashSum(hash, signed)

	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return rsa.VerifyPKCS1v15(pub, hash, hashed, si.Signature)
	case *ecdsa.PublicKey:
		if !ecdsa.VerifyASN1(pub, hashed, si.Signature) {
			return errors.New("ecdsa verification failure")
		}
		return nil
	default:
		return errors.Errorf("unsupported public key %T", pub)
	}
}

func hashSum(h crypto.Hash, b []byte) []byte {
	md := h.New()
	md.Write(b)

	return md.Sum(nil)
}
