package pkcs7

import (
	"crypto/x509"
	"time"

	"github.com/pkg/errors"
)

// TrustStore validates signer certificates. Implementations must be safe for
// concurrent use.
type TrustStore interface {
	// VerifyChain builds and validates chains from leaf to a trusted root
	// using intermediates as untrusted helpers.
	VerifyChain(leaf *x509.Certificate, intermediates []*x509.Certificate) ([][]*x509.Certificate, error)
}

// CertPoolStore is a TrustStore backed by an x509.CertPool.
type CertPoolStore struct {
	roots     *x509.CertPool
	now       func() time.Time
	keyUsages []x509.ExtKeyUsage
}

// StoreOption configures a CertPoolStore.
type StoreOption func(*CertPoolStore)

// StoreTime sets the clock chains are validated at. Defaults to time.Now.
func StoreTime(now func() time.Time) StoreOption {
	return func(s *CertPoolStore) { s.now = now }
}

// StoreKeyUsages restricts the extended key usages a leaf must carry.
// Defaults to any.
func StoreKeyUsages(usages ...x509.ExtKeyUsage) StoreOption {
	return func(s *CertPoolStore) { s.keyUsages = usages }
}

// NewCertPoolStore creates a TrustStore trusting roots. A nil pool uses the
// system roots.
func NewCertPoolStore(roots *x509.CertPool, opts ...StoreOption) *CertPoolStore {
	s := &CertPoolStore{
		roots:     roots,
		now:       time.Now,
		keyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewCertPoolStoreFromCerts creates a TrustStore trusting exactly certs.
func NewCertPoolStoreFromCerts(certs ...*x509.Certificate) *CertPoolStore {
	pool := x509.NewCertPool()
	for _, cert := range certs {
		if cert != nil {
			pool.AddCert(cert)
		}
	}

	return NewCertPoolStore(pool)
}

// VerifyChain implements TrustStore.
func (s *CertPoolStore) VerifyChain(leaf *x509.Certificate, intermediates []*x509.Certificate) ([][]*x509.Certificate, error) {
	if leaf == nil {
		return nil, errors.New("nil leaf certificate")
	}

	pool := x509.NewCertPool()
	for _, cert := range intermediates {
		pool.AddCert(cert)
	}

	return leaf.Verify(x509.VerifyOptions{
		Roots:         s.roots,
		Intermediates: pool,
		CurrentTime:   s.now(),
		KeyUsages:     s.keyUsages,
	})
}
