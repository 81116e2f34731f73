package certstore

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pkcs12"
)

// fileStore holds the identities found in a set of files.
type fileStore struct {
	idents []*fileIdentity
}

func openFileStore(pass Passphrase, paths []string) (Store, error) {
	s := &fileStore{}

	for _, path := range paths {
		idents, err := loadFile(path, pass)
		if err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "failed to load identity file (%s)", path)
		}
		s.idents = append(s.idents, idents...)
	}

	return s, nil
}

// Identities implements the Store interface.
func (s *fileStore) Identities() ([]Identity, error) {
	idents := make([]Identity, 0, len(s.idents))
	for _, ident := range s.idents {
		idents = append(idents, ident)
	}

	return idents, nil
}

// Close implements the Store interface.
func (s *fileStore) Close() {
	for _, ident := range s.idents {
		ident.Close()
	}
}

func loadFile(path string, pass Passphrase) ([]*fileIdentity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block
	if isPKCS12(path, data) {
		if blocks, err = decodePKCS12(path, data, pass); err != nil {
			return nil, err
		}
	} else {
		for rest := data; ; {
			var blk *pem.Block
			if blk, rest = pem.Decode(rest); blk == nil {
				break
			}
			blocks = append(blocks, blk)
		}
		if len(blocks) == 0 {
			return nil, errors.New("no PEM data found")
		}
	}

	return identitiesFromBlocks(blocks)
}

// isPKCS12 guesses whether data is a PKCS#12 archive, going by the file
// extension first and falling back to sniffing for a DER SEQUENCE.
func isPKCS12(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".p12", ".pfx":
		return true
	case ".pem", ".crt", ".key":
		return false
	}

	return len(data) > 0 && data[0] == 0x30
}

func decodePKCS12(path string, data []byte, pass Passphrase) ([]*pem.Block, error) {
	blocks, err := pkcs12.ToPEM(data, "")
	if errors.Cause(err) == pkcs12.ErrIncorrectPassword && pass != nil {
		passphrase, perr := pass(path)
		if perr != nil {
			return nil, errors.Wrap(perr, "failed to get passphrase")
		}
		blocks, err = pkcs12.ToPEM(data, passphrase)
	}

	if errors.Cause(err) == pkcs12.ErrIncorrectPassword {
		return nil, ErrIncorrectPassphrase
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to decode PKCS#12 archive")
	}

	return blocks, nil
}

func identitiesFromBlocks(blocks []*pem.Block) ([]*fileIdentity, error) {
	var (
		certs []*x509.Certificate
		keys  []crypto.Signer
	)

	for _, blk := range blocks {
		switch {
		case blk.Type == "CERTIFICATE":
			cert, err := x509.ParseCertificate(blk.Bytes)
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse certificate")
			}
			certs = append(certs, cert)
		case blk.Type == "ENCRYPTED PRIVATE KEY":
			return nil, errors.New("encrypted PEM private keys are not supported")
		case strings.HasSuffix(blk.Type, "PRIVATE KEY"):
			key, err := parsePrivateKey(blk.Bytes)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
	}

	var idents []*fileIdentity
	for _, key := range keys {
		leaf := findCertificate(certs, key.Public())
		if leaf == nil {
			continue
		}
		idents = append(idents, &fileIdentity{
			chain: buildChain(leaf, certs),
			key:   key,
		})
	}

	if len(idents) == 0 {
		return nil, ErrNoIdentity
	}

	return idents, nil
}

// parsePrivateKey accepts PKCS#8, PKCS#1 and SEC1 encodings, regardless of
// the PEM block type they came in.
func parsePrivateKey(der []byte) (crypto.Signer, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, ErrUnsupportedKey
		}
		return signer, nil
	}

	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}

	return nil, errors.New("failed to parse private key")
}

func findCertificate(certs []*x509.Certificate, pub crypto.PublicKey) *x509.Certificate {
	eq, ok := pub.(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return nil
	}

	for _, cert := range certs {
		if eq.Equal(cert.PublicKey) {
			return cert
		}
	}

	return nil
}

// buildChain orders the certificates that issued leaf, stopping at a
// self-signed certificate or when no issuer is found.
func buildChain(leaf *x509.Certificate, certs []*x509.Certificate) []*x509.Certificate {
	chain := []*x509.Certificate{leaf}

	for cur := leaf; len(chain) <= len(certs); {
		if bytes.Equal(cur.RawIssuer, cur.RawSubject) {
			break
		}

		var next *x509.Certificate
		for _, cert := range certs {
			if cert.Equal(cur) || !bytes.Equal(cert.RawSubject, cur.RawIssuer) {
				continue
			}
			if cur.CheckSignatureFrom(cert) == nil {
				next = cert
				break
			}
		}
		if next == nil {
			break
		}

		chain = append(chain, next)
		cur = next
	}

	return chain
}

// fileIdentity is an identity loaded from disk.
type fileIdentity struct {
	chain []*x509.Certificate
	key   crypto.Signer
}

// Certificate implements the Identity interface.
func (i *fileIdentity) Certificate() (*x509.Certificate, error) {
	return i.chain[0], nil
}

// CertificateChain implements the Identity interface.
func (i *fileIdentity) CertificateChain() ([]*x509.Certificate, error) {
	return append([]*x509.Certificate(nil), i.chain...), nil
}

// Signer implements the Identity interface.
func (i *fileIdentity) Signer() (crypto.Signer, error) {
	if i.key == nil {
		return nil, errors.New("identity is closed")
	}

	switch i.key.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey:
		return i.key, nil
	default:
		return nil, ErrUnsupportedKey
	}
}

// Decrypter implements the Identity interface.
func (i *fileIdentity) Decrypter() (crypto.Decrypter, error) {
	if i.key == nil {
		return nil, errors.New("identity is closed")
	}

	key, ok := i.key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}

	return key, nil
}

// Close implements the Identity interface.
func (i *fileIdentity) Close() {
	i.key = nil
}
