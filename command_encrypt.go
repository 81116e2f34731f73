package main

import (
	"bytes"
	"crypto/x509"
	"os"

	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandEncrypt() error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	e, err := newEngine()
	if err != nil {
		return err
	}

	var recipients []*x509.Certificate
	for _, r := range listOpt(recipientOpt) {
		certs, err := findRecipient(r)
		if err != nil {
			return err
		}
		recipients = append(recipients, certs...)
	}

	data, err := readInput()
	if err != nil {
		return err
	}

	var flags pkcs7.Flags
	if *textFlag {
		flags |= pkcs7.Text
	}

	sBeginEncryption.emitf("0 %d", symAlgo(*cipherOpt))

	ed, err := e.Encrypt(bytes.NewReader(data), recipients, *cipherOpt, flags)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt message")
	}

	out, err := e.Encode(ed, format)
	if err != nil {
		return errors.Wrap(err, "failed to encode message")
	}

	sEndEncryption.emit()

	return writeOutput(out)
}

// findRecipient loads the certificates in a file, or failing that, the
// certificate of the loaded identity matching a user-id.
func findRecipient(r string) ([]*x509.Certificate, error) {
	if _, err := os.Stat(r); err == nil {
		certs, err := readCertificates(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read recipient")
		}
		// only the first certificate in a chain file is the recipient
		return certs[:1], nil
	}

	ident, err := findIdentity(r)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		return nil, errors.Errorf("could not find recipient: %s", r)
	}

	cert, err := ident.Certificate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity certificate")
	}

	return []*x509.Certificate{cert}, nil
}
