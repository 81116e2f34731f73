package main

import (
	"bytes"
	"crypto/sha1"
	"crypto/x509"
	"encoding/asn1"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"io"
	"net/mail"
	"os"
	"regexp"
	"strings"

	"github.com/github/pkcs7/certstore"
	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

// normalizeFingerprint converts a string fingerprint to hex, removing leading
// "0x", if present.
func normalizeFingerprint(sfpr string) []byte {
	if len(sfpr) == 0 {
		return nil
	}

	hfpr, err := hex.DecodeString(strings.TrimPrefix(sfpr, "0x"))
	if err != nil {
		return nil
	}

	return hfpr
}

// certHasFingerprint checks if the given certificate has the given fingerprint.
func certHasFingerprint(cert *x509.Certificate, fpr []byte) bool {
	if len(fpr) == 0 {
		return false
	}

	return bytes.HasSuffix(certFingerprint(cert), fpr)
}

// certHexFingerprint calculated the hex SHA1 fingerprint of a certificate.
func certHexFingerprint(cert *x509.Certificate) string {
	return hex.EncodeToString(certFingerprint(cert))
}

// certFingerprint calculated the SHA1 fingerprint of a certificate.
func certFingerprint(cert *x509.Certificate) []byte {
	if len(cert.Raw) == 0 {
		return nil
	}

	fpr := sha1.Sum(cert.Raw)
	return fpr[:]
}

// normalizeEmail extracts an email address from a user-id string such as
// "Full Name (Comment) <email@example.com>".
func normalizeEmail(id string) string {
	addr, err := mail.ParseAddress(id)
	if err != nil {
		return ""
	}

	return addr.Address
}

var oidEmailAddress = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
var oidCommonName = asn1.ObjectIdentifier{2, 5, 4, 3}

// certHasEmail checks if a certificate contains the given email address in its
// subject (CN/emailAddress) or SAN fields.
func certHasEmail(cert *x509.Certificate, email string) bool {
	if len(email) == 0 {
		return false
	}

	for _, other := range certEmails(cert) {
		if strings.EqualFold(other, email) {
			return true
		}
	}

	return false
}

// borrowed from http://emailregex.com/
var emailRegexp = regexp.MustCompile(`(^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$)`)

// certEmails extracts email addresses from a certificate's subject
// (CN/emailAddress) and SAN extensions.
func certEmails(cert *x509.Certificate) []string {
	// From SAN
	emails := append([]string(nil), cert.EmailAddresses...)

	// From CN and emailAddress fields in subject.
	for _, name := range cert.Subject.Names {
		if !name.Type.Equal(oidEmailAddress) && !name.Type.Equal(oidCommonName) {
			continue
		}

		if email, isStr := name.Value.(string); isStr && emailRegexp.MatchString(email) {
			emails = append(emails, email)
		}
	}

	return emails
}

// findIdentity finds the loaded identity matching a user-id, which is either
// an email address or a (suffix of a) hex SHA1 certificate fingerprint.
func findIdentity(userID string) (certstore.Identity, error) {
	var (
		email string
		fpr   []byte
	)

	if strings.ContainsRune(userID, '@') {
		email = normalizeEmail(userID)
	} else {
		fpr = normalizeFingerprint(userID)
	}

	if len(email) == 0 && len(fpr) == 0 {
		return nil, errors.Errorf("bad user-id format: %s", userID)
	}

	for _, ident := range idents {
		cert, err := ident.Certificate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get identity certificate")
		}

		if certHasEmail(cert, email) || certHasFingerprint(cert, fpr) {
			return ident, nil
		}
	}

	return nil, nil
}

// readInput reads the message from the first file argument, or from stdin
// when there is none or it's "-".
func readInput() ([]byte, error) {
	if len(fileArgs) > 0 && fileArgs[0] != "-" {
		data, err := os.ReadFile(fileArgs[0])
		return data, errors.Wrapf(err, "failed to read input file (%s)", fileArgs[0])
	}

	data, err := io.ReadAll(stdin)
	return data, errors.Wrap(err, "failed to read from stdin")
}

// writeOutput writes to --output, or stdout.
func writeOutput(data []byte) error {
	if len(*outputOpt) == 0 || *outputOpt == "-" {
		_, err := stdout.Write(data)
		return errors.Wrap(err, "failed to write output")
	}

	return errors.Wrapf(os.WriteFile(*outputOpt, data, 0644), "failed to write output file (%s)", *outputOpt)
}

// outputFormat picks the encoding for sign and encrypt output.
func outputFormat() (pkcs7.Format, error) {
	switch {
	case *armorFlag && *smimeFlag:
		return 0, errors.New("armor and smime cannot both be specified")
	case *armorFlag:
		return pkcs7.FormatPEM, nil
	case *smimeFlag:
		return pkcs7.FormatSMIME, nil
	default:
		return pkcs7.FormatDER, nil
	}
}

// readCertificates loads every certificate in a PEM or DER file.
func readCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var certs []*x509.Certificate
	for rest := data; ; {
		var blk *pem.Block
		if blk, rest = pem.Decode(rest); blk == nil {
			break
		}
		if blk.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(blk.Bytes)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse certificate in %s", path)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		der, err := x509.ParseCertificates(data)
		if err != nil || len(der) == 0 {
			return nil, errors.Errorf("no certificates found in %s", path)
		}
		certs = der
	}

	return certs, nil
}

// keyUsageNames contains the mapping between a KeyUsage and its Name.
var keyUsageNames = []struct {
	keyUsage x509.KeyUsage
	name     string
}{
	{x509.KeyUsageDigitalSignature, "DigitalSignature"},
	{x509.KeyUsageContentCommitment, "ContentCommitment"},
	{x509.KeyUsageKeyEncipherment, "KeyEncipherment"},
	{x509.KeyUsageDataEncipherment, "DataEncipherment"},
	{x509.KeyUsageKeyAgreement, "KeyAgreement"},
	{x509.KeyUsageCertSign, "CertSign"},
	{x509.KeyUsageCRLSign, "CRLSign"},
	{x509.KeyUsageEncipherOnly, "EncipherOnly"},
	{x509.KeyUsageDecipherOnly, "DecipherOnly"},
}

func keyUsageToNames(ku x509.KeyUsage) []string {
	var kus []string

	for _, k2n := range keyUsageNames {
		if ku&k2n.keyUsage != 0 {
			kus = append(kus, k2n.name)
		}
	}

	return kus
}

// extKeyUsageNames contains the mapping between an ExtKeyUsage and its Name.
var extKeyUsageNames = map[x509.ExtKeyUsage]string{
	x509.ExtKeyUsageAny:             "Any",
	x509.ExtKeyUsageServerAuth:      "ServerAuth",
	x509.ExtKeyUsageClientAuth:      "ClientAuth",
	x509.ExtKeyUsageCodeSigning:     "CodeSigning",
	x509.ExtKeyUsageEmailProtection: "EmailProtection",
	x509.ExtKeyUsageTimeStamping:    "TimeStamping",
	x509.ExtKeyUsageOCSPSigning:     "OCSPSigning",
}

// certExtKeyUsages names the certificate's extended key usages.
func certExtKeyUsages(cert *x509.Certificate) []string {
	var ekus []string

	for _, eku := range cert.ExtKeyUsage {
		if name, ok := extKeyUsageNames[eku]; ok {
			ekus = append(ekus, name)
		} else {
			ekus = append(ekus, fmt.Sprintf("Unknown(%d)", eku))
		}
	}

	return ekus
}
