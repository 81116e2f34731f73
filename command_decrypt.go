package main

import (
	"github.com/github/pkcs7/certstore"
	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandDecrypt() error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	format, err := pkcs7.ParseFormat(*informOpt)
	if err != nil {
		return err
	}

	candidates := idents
	if len(*localUserOpt) > 0 {
		ident, err := findIdentity(*localUserOpt)
		if err != nil {
			return errors.Wrap(err, "failed to get identity matching specified user-id")
		}
		if ident == nil {
			return errors.Errorf("could not find identity matching specified user-id: %s", *localUserOpt)
		}
		candidates = []certstore.Identity{ident}
	}
	if len(candidates) == 0 {
		return errors.New("no identities to decrypt with; use --identity")
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	c, _, err := e.DecodeBytes(input, format)
	if err != nil {
		return errors.Wrap(err, "failed to parse message")
	}

	sBeginDecryption.emit()
	defer sEndDecryption.emit()

	for _, ident := range candidates {
		cert, err := ident.Certificate()
		if err != nil {
			return errors.Wrap(err, "failed to get identity certificate")
		}

		key, err := ident.Decrypter()
		if err != nil {
			logger.Debugf("skipping %s: %v", certHexFingerprint(cert), err)
			continue
		}

		data, ok, err := e.Decrypt(c, cert, key)
		if err != nil {
			sDecryptionFailed.emit()
			return errors.Wrap(err, "failed to decrypt message")
		}
		if !ok {
			continue
		}

		logger.Debugf("decrypted with %s", certHexFingerprint(cert))
		sDecryptionOkay.emit()
		return writeOutput(data)
	}

	sDecryptionFailed.emit()
	return errors.New("no identity could decrypt the message")
}
