package main

import (
	"bytes"
	"crypto/x509"

	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandSign() error {
	userIdent, err := findIdentity(*localUserOpt)
	if err != nil {
		return errors.Wrap(err, "failed to get identity matching specified user-id")
	}
	if userIdent == nil {
		return errors.Errorf("could not find identity matching specified user-id: %s", *localUserOpt)
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	e, err := newEngine()
	if err != nil {
		return err
	}

	// Git is looking for "\n[GNUPG:] SIG_CREATED ", meaning we need to print a
	// line before SIG_CREATED. BEGIN_SIGNING seems appropriate. GPG emits this,
	// though GPGSM does not.
	sBeginSigning.emit()

	chain, err := userIdent.CertificateChain()
	if err != nil {
		return errors.Wrap(err, "failed to get identity certificate chain")
	}

	signer, err := userIdent.Signer()
	if err != nil {
		return errors.Wrap(err, "failed to get identity signer")
	}

	data, err := readInput()
	if err != nil {
		return err
	}

	var flags pkcs7.Flags
	if *detachSignFlag {
		flags |= pkcs7.Detached
	}
	if *textFlag {
		flags |= pkcs7.Text
	}
	if *noAttributesFlag {
		flags |= pkcs7.NoAttributes
	}
	// Git hands the verifier the exact bytes it signed. Only S/MIME output is
	// sent with canonical line endings.
	if format != pkcs7.FormatSMIME {
		flags |= pkcs7.Binary
	}

	certs := certsForInclusion(chain, *includeCertsOpt)
	if *noCertsFlag || len(certs) == 0 {
		flags |= pkcs7.NoCerts
		certs = nil
	} else {
		certs = certs[1:]
	}

	sd, err := e.Sign(bytes.NewReader(data), chain[0], signer, certs, flags)
	if err != nil {
		return errors.Wrap(err, "failed to sign message")
	}

	var out []byte
	if format == pkcs7.FormatSMIME {
		out, err = e.EncodeSMIME(sd, data, flags&pkcs7.Text)
	} else {
		out, err = e.Encode(sd, format)
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode signature")
	}

	digest, _ := e.Algorithms().DigestByName(*digestOpt)
	emitSigCreated(chain[0], digest.Hash, *detachSignFlag)

	return writeOutput(out)
}

// certsForInclusion picks the chain certificates to embed, per
// --include-certs. The leaf is always first when anything is included.
func certsForInclusion(chain []*x509.Certificate, n int) []*x509.Certificate {
	switch {
	case n == -3:
		for i, cert := range chain {
			if len(cert.IssuingCertificateURL) > 0 {
				chain = chain[:i+1]
				break
			}
		}
		return withoutRoots(chain)
	case n == -2:
		return withoutRoots(chain)
	case n == -1:
		return chain
	case n == 0:
		return nil
	case n >= len(chain):
		return chain
	case n > 0:
		return chain[:n]
	default:
		return withoutRoots(chain)
	}
}

// withoutRoots drops self-signed certificates, keeping a lone leaf.
func withoutRoots(chain []*x509.Certificate) []*x509.Certificate {
	certs := make([]*x509.Certificate, 0, len(chain))
	for i, cert := range chain {
		if i > 0 && bytes.Equal(cert.RawIssuer, cert.RawSubject) {
			continue
		}
		certs = append(certs, cert)
	}

	return certs
}
