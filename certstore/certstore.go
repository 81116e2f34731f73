// Package certstore loads signing and decryption identities from PKCS#12
// archives and PEM bundles on disk.
package certstore

import (
	"crypto"
	"crypto/x509"

	"github.com/pkg/errors"
)

var (
	// ErrIncorrectPassphrase is returned when a PKCS#12 archive can't be
	// unlocked with the passphrase the callback supplied.
	ErrIncorrectPassphrase = errors.New("certstore: incorrect passphrase")

	// ErrNoIdentity is returned when a file holds no private key that
	// matches one of its certificates.
	ErrNoIdentity = errors.New("certstore: no identity found")

	// ErrUnsupportedKey is returned when a key can't perform the requested
	// operation.
	ErrUnsupportedKey = errors.New("certstore: unsupported key type")
)

// Passphrase returns the passphrase for a locked file. It is only called
// after the empty passphrase has been tried.
type Passphrase func(path string) (string, error)

// Open loads identities from the named files. Locked PKCS#12 archives fail
// with ErrIncorrectPassphrase.
func Open(paths ...string) (Store, error) {
	return OpenWithPassphrase(nil, paths...)
}

// OpenWithPassphrase is like Open, but calls pass to unlock PKCS#12
// archives.
func OpenWithPassphrase(pass Passphrase, paths ...string) (Store, error) {
	return openFileStore(pass, paths)
}

// Store represents a set of loaded identities.
type Store interface {
	// Identities gets a list of identities from the store.
	Identities() ([]Identity, error)

	// Close releases the store's keys.
	Close()
}

// Identity is a X.509 certificate and its corresponding private key.
type Identity interface {
	// Certificate gets the identity's certificate.
	Certificate() (*x509.Certificate, error)

	// CertificateChain attempts to get the identity's full certificate chain.
	// The leaf comes first.
	CertificateChain() ([]*x509.Certificate, error)

	// Signer gets a crypto.Signer that uses the identity's private key.
	Signer() (crypto.Signer, error)

	// Decrypter gets a crypto.Decrypter that uses the identity's private
	// key. Only RSA keys can decrypt.
	Decrypter() (crypto.Decrypter, error)

	// Close any manually managed memory held by the Identity.
	Close()
}
