package main

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/github/pkcs7/pkcs7"
	"golang.org/x/crypto/openpgp/packet"
	"golang.org/x/crypto/openpgp/s2k"
)

// This file implements gnupg's "status protocol". When the --status-fd argument
// is passed, gpg will output machine-readable status updates to that fd.
// Details on the "protocol" can be found at https://git.io/vFFKC

type status string

const (
	// BEGIN_SIGNING
	//   Mark the start of the actual signing process. Git looks for a line
	//   before SIG_CREATED.
	sBeginSigning status = "BEGIN_SIGNING"

	// SIG_CREATED <type> <pk_algo> <hash_algo> <class> <timestamp> <keyfpr>
	//   A signature has been created using these parameters.
	//   Values for type <type> are:
	//     - D :: detached
	//     - C :: cleartext
	//     - S :: standard
	//   (only the first character should be checked)
	//
	//   <class> are 2 hex digits with the OpenPGP signature class.
	sSigCreated status = "SIG_CREATED"

	// NEWSIG [<signers_uid>]
	//   Is issued right before a signature verification starts.
	sNewSig status = "NEWSIG"

	// GOODSIG  <long_keyid_or_fpr>  <username>
	//   The signature with the keyid is good. The username is the primary
	//   one encoded in UTF-8 and %XX escaped.
	sGoodSig status = "GOODSIG"

	// BADSIG <long_keyid_or_fpr> <username>
	//   The signature with the keyid has not been verified okay.
	sBadSig status = "BADSIG"

	// ERRSIG  <keyid>  <pkalgo> <hashalgo> <sig_class> <time> <rc>
	//   It was not possible to check the signature. This may be caused by
	//   a missing public key or an unsupported algorithm. A RC of 4
	//   indicates unknown algorithm, a 9 indicates a missing public key.
	sErrSig status = "ERRSIG"

	// VALIDSIG <fingerprint_in_hex> <sig_creation_date> <sig-timestamp>
	//          <expire-timestamp> <sig-version> <reserved> <pubkey-algo>
	//          <hash-algo> <sig-class>
	//
	//   The sig-version as well as the sig class is not defined for CMS and
	//   currently set to 0 and 00.
	sValidSig status = "VALIDSIG"

	// TRUST_FULLY [0  [<validation_model>]]
	//   Emitted for good signatures whose certificate chains to a trusted
	//   root. The X.509 validation model is "shell".
	sTrustFully status = "TRUST_FULLY"

	// BEGIN_ENCRYPTION  <mdc_method> <sym_algo>
	// END_ENCRYPTION
	//   Mark the start and end of the actual encryption process.
	sBeginEncryption status = "BEGIN_ENCRYPTION"
	sEndEncryption   status = "END_ENCRYPTION"

	// BEGIN_DECRYPTION
	// END_DECRYPTION
	//   Mark the start and end of the actual decryption process. These
	//   are also emitted when in --list-only mode.
	sBeginDecryption status = "BEGIN_DECRYPTION"
	sEndDecryption   status = "END_DECRYPTION"

	// DECRYPTION_OKAY
	//   The decryption process succeeded.
	// DECRYPTION_FAILED
	//   The symmetric decryption failed or no recipient key was usable.
	sDecryptionOkay   status = "DECRYPTION_OKAY"
	sDecryptionFailed status = "DECRYPTION_FAILED"
)

// statusWriter receives status lines. It is nil unless --status-fd was given.
var statusWriter io.Writer

// setupStatus opens the --status-fd file descriptor.
func setupStatus() {
	switch fd := *statusFdOpt; {
	case fd == 1:
		statusWriter = stdout
	case fd == 2:
		statusWriter = stderr
	case fd > 2:
		statusWriter = os.NewFile(uintptr(fd), "status")
	}
}

func (s status) emit(args ...string) {
	s.emitf("%s", strings.Join(args, " "))
}

func (s status) emitf(format string, args ...interface{}) {
	if statusWriter == nil {
		return
	}

	line := "[GNUPG:] " + string(s)
	if msg := fmt.Sprintf(format, args...); len(msg) > 0 {
		line += " " + msg
	}

	if _, err := io.WriteString(statusWriter, line+"\n"); err != nil {
		logger.Debugf("failed to write status line: %v", err)
	}
}

// pubKeyAlgo maps a certificate's key to its OpenPGP algorithm number.
func pubKeyAlgo(cert *x509.Certificate) byte {
	switch cert.PublicKeyAlgorithm {
	case x509.RSA:
		return byte(packet.PubKeyAlgoRSA)
	case x509.ECDSA:
		return byte(packet.PubKeyAlgoECDSA)
	default:
		return 0
	}
}

// hashAlgo maps a digest to its OpenPGP algorithm number. Digests OpenPGP
// doesn't define are 0.
func hashAlgo(h crypto.Hash) byte {
	id, _ := s2k.HashToHashId(h)
	return id
}

// symAlgo maps a cipher name to its OpenPGP algorithm number.
func symAlgo(name string) byte {
	switch name {
	case "aes-128-cbc":
		return byte(packet.CipherAES128)
	case "aes-192-cbc":
		return byte(packet.CipherAES192)
	case "aes-256-cbc":
		return byte(packet.CipherAES256)
	case "des-ede3-cbc":
		return byte(packet.Cipher3DES)
	default:
		return 0
	}
}

func emitSigCreated(cert *x509.Certificate, h crypto.Hash, isDetached bool) {
	sigType := "S"
	if isDetached {
		sigType = "D"
	}

	// gpgsm seems to always use 0x00 for the class
	sSigCreated.emitf("%s %d %d 00 %d %s", sigType, pubKeyAlgo(cert), hashAlgo(h), time.Now().Unix(), certHexFingerprint(cert))
}

func emitGoodSig(cert *x509.Certificate) {
	sGoodSig.emit(certHexFingerprint(cert), url.PathEscape(pkcs7.RDNSequenceString(cert.Subject.ToRDNSequence())))
}

func emitBadSig(cert *x509.Certificate) {
	sBadSig.emit(certHexFingerprint(cert), url.PathEscape(pkcs7.RDNSequenceString(cert.Subject.ToRDNSequence())))
}

// emitErrSig reports a signature that couldn't be checked. rc 9 means no
// certificate was found for the signer.
func emitErrSig(si *pkcs7.SignerInfo, cert *x509.Certificate, rc int) {
	var (
		keyID  = "0"
		pkAlgo byte
		hAlgo  byte
	)
	if cert != nil {
		keyID = certHexFingerprint(cert)
		pkAlgo = pubKeyAlgo(cert)
	} else if si != nil && si.SerialNumber != nil {
		keyID = si.SerialNumber.Text(16)
	}
	if si != nil {
		if d, ok := pkcs7.DefaultAlgorithms().DigestByOID(si.DigestAlgorithm.Algorithm); ok {
			hAlgo = hashAlgo(d.Hash)
		}
	}

	sErrSig.emitf("%s %d %d 00 %d %d", keyID, pkAlgo, hAlgo, time.Now().Unix(), rc)
}

func emitValidSig(cert *x509.Certificate, si pkcs7.SignerInfo) {
	var h crypto.Hash
	if d, ok := pkcs7.DefaultAlgorithms().DigestByOID(si.DigestAlgorithm.Algorithm); ok {
		h = d.Hash
	}

	signed := signingTime(si)
	sValidSig.emitf("%s %s %d %d 0 - %d %d 00",
		certHexFingerprint(cert),
		signed.UTC().Format("2006-01-02"),
		signed.Unix(),
		cert.NotAfter.Unix(),
		pubKeyAlgo(cert),
		hashAlgo(h),
	)
}

func emitTrustFully() {
	sTrustFully.emit("0", "shell")
}
