package main

import (
	"crypto/x509"

	"github.com/certifi/gocertifi"
	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

// trustStore trusts the system roots, --cafile certificates and the loaded
// identities' certificates.
func trustStore() (pkcs7.TrustStore, error) {
	roots, err := x509.SystemCertPool()
	if err != nil {
		// SystemCertPool isn't available everywhere. fall back to mozilla trust
		// store.
		logger.Debugf("system roots unavailable, using the Mozilla roots: %v", err)
		if roots, err = gocertifi.CACerts(); err != nil {
			// Fall back to an empty store. Verification will likely fail.
			logger.Warnf("failed to load the Mozilla roots: %v", err)
			roots = x509.NewCertPool()
		}
	}

	if len(*cafileOpt) > 0 {
		certs, err := readCertificates(*cafileOpt)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read --cafile")
		}
		for _, cert := range certs {
			roots.AddCert(cert)
		}
	}

	for _, ident := range idents {
		if cert, err := ident.Certificate(); err == nil {
			roots.AddCert(cert)
		}
	}

	return pkcs7.NewCertPoolStore(roots), nil
}
