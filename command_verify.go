package main

import (
	"bytes"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandVerify() error {
	sNewSig.emit()

	e, err := newEngine()
	if err != nil {
		return err
	}

	format, err := pkcs7.ParseFormat(*informOpt)
	if err != nil {
		return err
	}

	// Read in signature
	var sig, content []byte
	if len(fileArgs) == 0 {
		if sig, err = io.ReadAll(stdin); err != nil {
			return errors.Wrap(err, "failed to read signature")
		}
	} else if sig, err = os.ReadFile(fileArgs[0]); err != nil {
		return errors.Wrapf(err, "failed to read signature file (%s)", fileArgs[0])
	}

	// Read in signed data
	if len(fileArgs) > 1 {
		if fileArgs[1] == "-" {
			content, err = io.ReadAll(stdin)
		} else {
			content, err = os.ReadFile(fileArgs[1])
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read message file (%s)", fileArgs[1])
		}
	}

	c, smimeContent, err := e.DecodeBytes(sig, format)
	if err != nil {
		emitErrSig(nil, nil, 4)
		return errors.Wrap(err, "failed to parse signature")
	}

	sd, ok := c.(*pkcs7.SignedData)
	if !ok {
		emitErrSig(nil, nil, 4)
		return errors.New("input is not a signature")
	}

	// multipart/signed carries its own content
	if content == nil && smimeContent != nil && sd.IsDetached() {
		content = smimeContent
	}

	store, err := trustStore()
	if err != nil {
		return err
	}

	var flags pkcs7.Flags
	if *noVerifyFlag {
		flags |= pkcs7.NoVerify
	}
	if *textFlag {
		flags |= pkcs7.Text
	}

	opts := pkcs7.VerifyOptions{Flags: flags}
	if content != nil {
		opts.Content = bytes.NewReader(content)
	}
	output := new(bytes.Buffer)
	if len(*outputOpt) > 0 {
		opts.Output = output
	}

	sis := sd.SignerInfos()
	signers, err := verify(e, sd, store, opts)
	if err != nil {
		if len(sis) > 0 {
			emitErrSig(&sis[0], signerCertificate(sd, sis[0]), 4)
		} else {
			emitErrSig(nil, nil, 4)
		}
		return errors.Wrap(err, "failed to verify signature")
	}

	if signers == nil {
		for _, si := range sis {
			if cert := signerCertificate(sd, si); cert != nil {
				emitBadSig(cert)
			} else {
				emitErrSig(&si, nil, 9)
			}
		}
		return errors.New("failed to verify signature")
	}

	for i, cert := range signers {
		fmt.Fprintf(stderr, "pkcs7: Signature made using certificate ID 0x%s\n", certHexFingerprint(cert))
		emitGoodSig(cert)
		emitValidSig(cert, sis[i])

		fmt.Fprintf(stderr, "pkcs7: Good signature from \"%s\"\n", pkcs7.RDNSequenceString(cert.Subject.ToRDNSequence()))
		if !*noVerifyFlag {
			emitTrustFully()
		}
	}

	if opts.Output != nil {
		return writeOutput(output.Bytes())
	}

	return nil
}

// verify wraps Engine.Verify, returning nil signers for a signature that
// doesn't check out.
func verify(e *pkcs7.Engine, sd *pkcs7.SignedData, store pkcs7.TrustStore, opts pkcs7.VerifyOptions) ([]*x509.Certificate, error) {
	ok, signers, err := e.Verify(sd, store, opts)
	if err != nil || !ok {
		return nil, err
	}

	return signers, nil
}

// signerCertificate finds the embedded certificate si identifies.
func signerCertificate(sd *pkcs7.SignedData, si pkcs7.SignerInfo) *x509.Certificate {
	for _, cert := range sd.Certificates() {
		if si.SerialNumber != nil && bytes.Equal(cert.RawIssuer, si.Issuer) && cert.SerialNumber.Cmp(si.SerialNumber) == 0 {
			return cert
		}
		if len(si.SubjectKeyID) > 0 && bytes.Equal(cert.SubjectKeyId, si.SubjectKeyID) {
			return cert
		}
	}

	return nil
}

// signingTime reads the signingTime attribute, defaulting to now.
func signingTime(si pkcs7.SignerInfo) time.Time {
	for _, attr := range si.SignedAttributes {
		if !attr.Type.Equal(oid.AttributeSigningTime) || len(attr.Values) == 0 {
			continue
		}

		var t time.Time
		if rest, err := asn1.Unmarshal(attr.Values[0], &t); err == nil && len(rest) == 0 {
			return t
		}
	}

	return time.Now()
}
