package protocol

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"

	"github.com/github/pkcs7/oid"
	"github.com/pkg/errors"
)

// EnvelopedData ::= SEQUENCE {
//   version Version,
//   recipientInfos RecipientInfos,
//   encryptedContentInfo EncryptedContentInfo }
//
// RecipientInfos ::= SET OF RecipientInfo
type EnvelopedData struct {
	Version              int
	RecipientInfos       []RecipientInfo `asn1:"set"`
	EncryptedContentInfo EncryptedContentInfo
}

// ContentInfoDER returns the EnvelopedData wrapped in a ContentInfo packet and
// DER encoded.
func (ed *EnvelopedData) ContentInfoDER() ([]byte, error) {
	der, err := asn1.Marshal(*ed)
	if err != nil {
		return nil, err
	}

	return NewContentInfo(oid.ContentTypeEnvelopedData, der).DER()
}

// RecipientInfo ::= SEQUENCE {
//   version Version,
//   issuerAndSerialNumber IssuerAndSerialNumber,
//   keyEncryptionAlgorithm KeyEncryptionAlgorithmIdentifier,
//   encryptedKey EncryptedKey }
//
// EncryptedKey ::= OCTET STRING
type RecipientInfo struct {
	Version                int
	IssuerAndSerialNumber  IssuerAndSerialNumber
	KeyEncryptionAlgorithm pkix.AlgorithmIdentifier
	EncryptedKey           []byte
}

// NewRecipientInfo creates a RecipientInfo addressed to cert.
func NewRecipientInfo(cert *x509.Certificate, encryptedKey []byte) (RecipientInfo, error) {
	isn, err := NewIssuerAndSerialNumber(cert)
	if err != nil {
		return RecipientInfo{}, err
	}

	return RecipientInfo{
		Version:               0,
		IssuerAndSerialNumber: isn,
		KeyEncryptionAlgorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oid.KeyEncryptionAlgorithmRSA,
			Parameters: asn1.NullRawValue,
		},
		EncryptedKey: encryptedKey,
	}, nil
}

// EncryptedContentInfo ::= SEQUENCE {
//   contentType ContentType,
//   contentEncryptionAlgorithm ContentEncryptionAlgorithmIdentifier,
//   encryptedContent [0] IMPLICIT EncryptedContent OPTIONAL }
//
// EncryptedContent ::= OCTET STRING
type EncryptedContentInfo struct {
	ContentType                asn1.ObjectIdentifier
	ContentEncryptionAlgorithm pkix.AlgorithmIdentifier
	EncryptedContent           asn1.RawValue `asn1:"optional,tag:0"`
}

// NewEncryptedContentInfo creates an EncryptedContentInfo holding ciphertext.
func NewEncryptedContentInfo(contentType asn1.ObjectIdentifier, algo pkix.AlgorithmIdentifier, ciphertext []byte) EncryptedContentInfo {
	if ciphertext == nil {
		ciphertext = []byte{}
	}

	return EncryptedContentInfo{
		ContentType:                contentType,
		ContentEncryptionAlgorithm: algo,
		EncryptedContent: asn1.RawValue{
			Class: asn1.ClassContextSpecific,
			Tag:   0,
			Bytes: ciphertext,
		},
	}
}

// Ciphertext gets the encrypted content, joining the segments of a
// constructed encoding. A nil slice is returned if the OPTIONAL field is
// missing.
func (eci EncryptedContentInfo) Ciphertext() ([]byte, error) {
	ec := eci.EncryptedContent
	if ec.Bytes == nil && len(ec.FullBytes) == 0 {
		return nil, nil
	}
	if !ec.IsCompound {
		return ec.Bytes, nil
	}

	ciphertext := []byte{}
	rest := ec.Bytes
	for len(rest) > 0 {
		var seg asn1.RawValue
		var err error
		if rest, err = asn1.Unmarshal(rest, &seg); err != nil {
			return nil, err
		}
		if seg.Class != asn1.ClassUniversal || seg.Tag != asn1.TagOctetString || seg.IsCompound {
			return nil, errors.Errorf("bad encrypted content segment (class: %d tag: %d)", seg.Class, seg.Tag)
		}
		ciphertext = append(ciphertext, seg.Bytes...)
	}

	return ciphertext, nil
}

// IV gets the initialization vector from the content encryption algorithm
// parameters, which CBC ciphers encode as an OCTET STRING.
func (eci EncryptedContentInfo) IV() ([]byte, error) {
	params := eci.ContentEncryptionAlgorithm.Parameters
	if len(params.FullBytes) == 0 {
		return nil, ErrWrongType
	}

	var iv []byte
	if rest, err := asn1.Unmarshal(params.FullBytes, &iv); err != nil {
		return nil, err
	} else if len(rest) > 0 {
		return nil, ErrTrailingData
	}

	return iv, nil
}

// SignedAndEnvelopedData ::= SEQUENCE {
//   version Version,
//   recipientInfos RecipientInfos,
//   digestAlgorithms DigestAlgorithmIdentifiers,
//   encryptedContentInfo EncryptedContentInfo,
//   certificates [0] IMPLICIT ExtendedCertificatesAndCertificates OPTIONAL,
//   crls [1] IMPLICIT CertificateRevocationLists OPTIONAL,
//   signerInfos SignerInfos }
type SignedAndEnvelopedData struct {
	Version              int
	RecipientInfos       []RecipientInfo            `asn1:"set"`
	DigestAlgorithms     []pkix.AlgorithmIdentifier `asn1:"set"`
	EncryptedContentInfo EncryptedContentInfo
	Certificates         []asn1.RawValue `asn1:"optional,set,tag:0"`
	CRLs                 []asn1.RawValue `asn1:"optional,set,tag:1"`
	SignerInfos          []SignerInfo    `asn1:"set"`
}

// X509Certificates gets the certificates, assuming that they're X.509 encoded.
func (sed *SignedAndEnvelopedData) X509Certificates() ([]*x509.Certificate, error) {
	return parseCertificates(sed.Certificates)
}

// X509CRLs gets the CRLs, assuming that they're X.509 CertificateLists.
func (sed *SignedAndEnvelopedData) X509CRLs() ([]*x509.RevocationList, error) {
	return parseCRLs(sed.CRLs)
}

// ContentInfoDER returns the SignedAndEnvelopedData wrapped in a ContentInfo
// packet and DER encoded.
func (sed *SignedAndEnvelopedData) ContentInfoDER() ([]byte, error) {
	der, err := asn1.Marshal(*sed)
	if err != nil {
		return nil, err
	}

	return NewContentInfo(oid.ContentTypeSignedAndEnvelopedData, der).DER()
}

// DigestedData ::= SEQUENCE {
//   version Version,
//   digestAlgorithm DigestAlgorithmIdentifier,
//   contentInfo ContentInfo,
//   digest Digest }
//
// Digest ::= OCTET STRING
type DigestedData struct {
	Version         int
	DigestAlgorithm pkix.AlgorithmIdentifier
	ContentInfo     ContentInfo
	Digest          []byte
}

// ContentInfoDER returns the DigestedData wrapped in a ContentInfo packet and
// DER encoded.
func (dd *DigestedData) ContentInfoDER() ([]byte, error) {
	der, err := asn1.Marshal(*dd)
	if err != nil {
		return nil, err
	}

	return NewContentInfo(oid.ContentTypeDigestedData, der).DER()
}
