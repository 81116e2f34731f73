package pkcs7

import (
	"crypto"
	"crypto/x509"
	"io"
	"time"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/protocol"
)

// Sign creates a SignedData over content. key must hold the private half of
// cert's public key. extra certificates are attached alongside the signer's
// unless NoCerts is set. Content is signed with CRLF line endings unless
// Binary is set. Sign honors the Text, Binary, NoCerts, Detached,
// NoAttributes, NoSmimeCap and NoSignatureCheck flags.
func (e *Engine) Sign(content io.Reader, cert *x509.Certificate, key crypto.Signer, extra []*x509.Certificate, flags Flags) (*SignedData, error) {
	const op = "sign"

	if content == nil {
		return nil, errorf(ArgumentError, op, "nil content")
	}
	if cert == nil {
		return nil, errorf(ArgumentError, op, "nil certificate")
	}
	if key == nil {
		return nil, errorf(ArgumentError, op, "nil key")
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, wrapError(SignError, op, err, "failed to read content")
	}
	switch {
	case flags.Has(Text):
		data = textContent(data)
	case !flags.Has(Binary):
		data = canonicalizeCRLF(data)
	}
	if data == nil {
		data = []byte{}
	}

	digest, ok := e.algs.DigestByHash(e.digest)
	if !ok || !digest.Hash.Available() {
		return nil, errorf(SignError, op, "unsupported digest %v", e.digest)
	}

	signerCert, err := copyCertificate(cert)
	if err != nil {
		return nil, wrapError(ArgumentError, op, err, "bad signer certificate")
	}

	eci, err := protocol.NewEncapsulatedContentInfo(oid.ContentTypeData, data)
	if err != nil {
		return nil, wrapError(SignError, op, err, "failed to encapsulate content")
	}
	psd, err := protocol.NewSignedData(eci)
	if err != nil {
		return nil, wrapError(SignError, op, err, "failed to create SignedData")
	}

	opts := protocol.SignerInfoOptions{
		Hash:         digest.Hash,
		NoAttributes: flags.Has(NoAttributes),
		Rand:         e.rand,
	}
	if !opts.NoAttributes {
		if opts.ExtraAttributes, err = e.signingAttributes(flags); err != nil {
			return nil, wrapError(SignError, op, err, "failed to create attributes")
		}
	}

	e.log.Debugf("pkcs7: signing %d bytes with %s", len(data), digest.Name)
	if err = psd.AddSignerInfo(signerCert, key, data, opts); err != nil {
		return nil, wrapError(SignError, op, err, "failed to sign")
	}

	if !flags.Has(NoCerts) {
		if err = psd.AddCertificate(signerCert); err != nil {
			return nil, wrapError(SignError, op, err, "failed to attach certificate")
		}
		for _, c := range extra {
			if c == nil {
				continue
			}
			cc, err := copyCertificate(c)
			if err != nil {
				return nil, wrapError(ArgumentError, op, err, "bad extra certificate")
			}
			if err = psd.AddCertificate(cc); err != nil {
				return nil, wrapError(SignError, op, err, "failed to attach certificate")
			}
		}
	}

	if flags.Has(Detached) {
		psd.EncapContentInfo = protocol.EncapsulatedContentInfo{EContentType: oid.ContentTypeData}
	}

	if !flags.Has(NoSignatureCheck) {
		for _, si := range psd.SignerInfos {
			if err = checkSignature(si, signerCert, oid.ContentTypeData, data); err != nil {
				return nil, wrapError(SignError, op, err, "signature check failed")
			}
		}
	}

	return &SignedData{psd: psd}, nil
}

// signingAttributes are the authenticated attributes added alongside
// contentType and messageDigest.
func (e *Engine) signingAttributes(flags Flags) (protocol.Attributes, error) {
	st, err := protocol.NewAttribute(oid.AttributeSigningTime, e.now().UTC().Truncate(time.Second))
	if err != nil {
		return nil, err
	}
	attrs := protocol.Attributes{st}

	if !flags.Has(NoSmimeCap) {
		caps, err := protocol.NewAttribute(oid.AttributeSMIMECapabilities, e.algs.smimeCapabilities())
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, caps)
	}

	return attrs, nil
}
