// Package protocol implements low level PKCS7 types, parsing and generation.
package protocol

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"io"
	"math/big"
	"sort"
	"time"

	"github.com/github/pkcs7/oid"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedContentType is returned when a content type can't be
	// represented by one of the structures in this package.
	ErrUnsupportedContentType = errors.New("pkcs7/protocol: cannot parse data: unimplemented content type")

	// ErrWrongType is returned by methods that make assumptions about types.
	// Helper methods are defined for accessing CHOICE and  ANY feilds. These
	// helper methods get the value of the field, assuming it is of a given type.
	// This error is returned if that assumption is wrong and the field has a
	// different type.
	ErrWrongType = errors.New("pkcs7/protocol: wrong choice or any type")

	// ErrTrailingData is returned when bytes remain after a complete value.
	ErrTrailingData = errors.New("pkcs7/protocol: unexpected trailing data")

	// ErrNoContent is returned when an OPTIONAL content field that the caller
	// needs is absent.
	ErrNoContent = errors.New("pkcs7/protocol: content is absent")
)

// ContentInfo ::= SEQUENCE {
//   contentType ContentType,
//   content [0] EXPLICIT ANY DEFINED BY contentType OPTIONAL }
//
// ContentType ::= OBJECT IDENTIFIER
type ContentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue `asn1:"explicit,optional,tag:0"`
}

// ParseContentInfo parses a top-level ContentInfo type from BER encoded data.
func ParseContentInfo(ber []byte) (ci ContentInfo, err error) {
	var der []byte
	if der, err = ber2der(ber); err != nil {
		return
	}

	var rest []byte
	if rest, err = asn1.Unmarshal(der, &ci); err != nil {
		return
	}
	if len(rest) > 0 {
		err = ErrTrailingData
	}

	return
}

// NewContentInfo wraps the DER encoding of a content value in a ContentInfo.
// A nil content produces a ContentInfo with the OPTIONAL content omitted.
func NewContentInfo(typ asn1.ObjectIdentifier, content []byte) ContentInfo {
	ci := ContentInfo{ContentType: typ}
	if content != nil {
		ci.Content = asn1.RawValue{
			Class:      asn1.ClassContextSpecific,
			Tag:        0,
			Bytes:      content,
			IsCompound: true,
		}
	}

	return ci
}

// DER encodes the ContentInfo.
func (ci ContentInfo) DER() ([]byte, error) {
	return asn1.Marshal(ci)
}

// HasContent reports whether the OPTIONAL content field is present.
func (ci ContentInfo) HasContent() bool {
	return len(ci.Content.FullBytes) > 0 || ci.Content.Bytes != nil
}

// RawContent returns the DER encoding of the value held in the explicit
// content field, or nil if the field is absent.
func (ci ContentInfo) RawContent() []byte {
	if !ci.HasContent() {
		return nil
	}

	return ci.Content.Bytes
}

func (ci ContentInfo) unmarshalContent(typ asn1.ObjectIdentifier, dst interface{}) error {
	if !ci.ContentType.Equal(typ) {
		return ErrWrongType
	}
	if !ci.HasContent() {
		return ErrNoContent
	}

	if rest, err := asn1.Unmarshal(ci.Content.Bytes, dst); err != nil {
		return err
	} else if len(rest) > 0 {
		return ErrTrailingData
	}

	return nil
}

// SignedDataContent gets the content assuming contentType is signedData.
func (ci ContentInfo) SignedDataContent() (*SignedData, error) {
	sd := new(SignedData)
	if err := ci.unmarshalContent(oid.ContentTypeSignedData, sd); err != nil {
		return nil, err
	}

	return sd, nil
}

// EnvelopedDataContent gets the content assuming contentType is
// envelopedData.
func (ci ContentInfo) EnvelopedDataContent() (*EnvelopedData, error) {
	ed := new(EnvelopedData)
	if err := ci.unmarshalContent(oid.ContentTypeEnvelopedData, ed); err != nil {
		return nil, err
	}

	return ed, nil
}

// SignedAndEnvelopedDataContent gets the content assuming contentType is
// signedAndEnvelopedData.
func (ci ContentInfo) SignedAndEnvelopedDataContent() (*SignedAndEnvelopedData, error) {
	sed := new(SignedAndEnvelopedData)
	if err := ci.unmarshalContent(oid.ContentTypeSignedAndEnvelopedData, sed); err != nil {
		return nil, err
	}

	return sed, nil
}

// DigestedDataContent gets the content assuming contentType is digestedData.
func (ci ContentInfo) DigestedDataContent() (*DigestedData, error) {
	dd := new(DigestedData)
	if err := ci.unmarshalContent(oid.ContentTypeDigestedData, dd); err != nil {
		return nil, err
	}

	return dd, nil
}

// DataContent gets the content assuming contentType is data. A nil byte slice
// is returned if the OPTIONAL content is missing.
func (ci ContentInfo) DataContent() ([]byte, error) {
	if !ci.ContentType.Equal(oid.ContentTypeData) {
		return nil, ErrWrongType
	}
	if !ci.HasContent() {
		return nil, nil
	}

	return unmarshalOctetString(ci.Content.Bytes)
}

// EncapsulatedContentInfo ::= SEQUENCE {
//   eContentType ContentType,
//   eContent [0] EXPLICIT ANY DEFINED BY contentType OPTIONAL }
//
// ContentType ::= OBJECT IDENTIFIER
type EncapsulatedContentInfo struct {
	EContentType asn1.ObjectIdentifier
	EContent     asn1.RawValue `asn1:"optional,explicit,tag:0"`
}

// NewEncapsulatedContentInfo creates a new EncapsulatedContentInfo. For
// id-data the content is wrapped in an OCTET STRING; for any other type it must
// already be a DER encoded value. A nil content makes the eContent absent.
func NewEncapsulatedContentInfo(contentType asn1.ObjectIdentifier, content []byte) (EncapsulatedContentInfo, error) {
	eci := EncapsulatedContentInfo{EContentType: contentType}
	if content == nil {
		return eci, nil
	}

	inner := content
	if contentType.Equal(oid.ContentTypeData) {
		var err error
		if inner, err = marshalOctetString(content); err != nil {
			return EncapsulatedContentInfo{}, err
		}
	}

	eci.EContent = asn1.RawValue{
		Class:      asn1.ClassContextSpecific,
		Tag:        0,
		Bytes:      inner,
		IsCompound: true,
	}

	return eci, nil
}

// IsDetached checks if the OPTIONAL eContent field is missing.
func (eci EncapsulatedContentInfo) IsDetached() bool {
	return eci.EContent.Bytes == nil && len(eci.EContent.FullBytes) == 0
}

// DataEContent gets the EContent assuming EContentType is data. A nil byte
// slice is returned if the OPTIONAL eContent field is missing. A present but
// empty OCTET STRING yields a non-nil empty slice.
func (eci EncapsulatedContentInfo) DataEContent() ([]byte, error) {
	if !eci.EContentType.Equal(oid.ContentTypeData) {
		return nil, ErrWrongType
	}
	if eci.IsDetached() {
		return nil, nil
	}

	return unmarshalOctetString(eci.EContent.Bytes)
}

// RawEContent returns the DER encoding of the value held in the eContent
// field, or nil if it is missing.
func (eci EncapsulatedContentInfo) RawEContent() []byte {
	if eci.IsDetached() {
		return nil
	}

	return eci.EContent.Bytes
}

// DigestInput returns the bytes a message digest is computed over: the
// contents octets of the eContent value. A nil slice is returned for detached
// content.
func (eci EncapsulatedContentInfo) DigestInput() ([]byte, error) {
	if eci.IsDetached() {
		return nil, nil
	}
	if eci.EContentType.Equal(oid.ContentTypeData) {
		return eci.DataEContent()
	}

	var rv asn1.RawValue
	if rest, err := asn1.Unmarshal(eci.EContent.Bytes, &rv); err != nil {
		return nil, err
	} else if len(rest) > 0 {
		return nil, ErrTrailingData
	}

	return rv.Bytes, nil
}

func marshalOctetString(data []byte) ([]byte, error) {
	if data == nil {
		data = []byte{}
	}

	return asn1.Marshal(asn1.RawValue{
		Class:      asn1.ClassUniversal,
		Tag:        asn1.TagOctetString,
		Bytes:      data,
		IsCompound: false,
	})
}

// unmarshalOctetString decodes a single OCTET STRING, joining the segments of
// a constructed one.
func unmarshalOctetString(der []byte) ([]byte, error) {
	var data asn1.RawValue
	if rest, err := asn1.Unmarshal(der, &data); err != nil {
		return nil, err
	} else if len(rest) > 0 {
		return nil, ErrTrailingData
	}
	if data.Class != asn1.ClassUniversal || data.Tag != asn1.TagOctetString {
		return nil, errors.Errorf("bad data content (class: %d tag: %d)", data.Class, data.Tag)
	}

	if !data.IsCompound {
		if data.Bytes == nil {
			return []byte{}, nil
		}
		return data.Bytes, nil
	}

	// gpgsm uses a constructed OCTET STRING for the data. ber2der flattens
	// these but values nested in an explicit tag may still be constructed.
	dataValue := []byte{}
	rest := data.Bytes
	for len(rest) > 0 {
		var err error
		if rest, err = asn1.Unmarshal(rest, &data); err != nil {
			return nil, err
		}

		// Don't allow further constructed types.
		if data.Class != asn1.ClassUniversal || data.Tag != asn1.TagOctetString || data.IsCompound {
			return nil, errors.Errorf("bad data content (class: %d tag: %d)", data.Class, data.Tag)
		}

		dataValue = append(dataValue, data.Bytes...)
	}

	return dataValue, nil
}

// Attribute ::= SEQUENCE {
//   attrType OBJECT IDENTIFIER,
//   attrValues SET OF AttributeValue }
//
// AttributeValue ::= ANY
type Attribute struct {
	Type asn1.ObjectIdentifier

	// This should be a SET OF ANY, but Go's asn1 parser can't handle slices of
	// RawValues. Use value() to get an AnySet of the value.
	RawValue asn1.RawValue
}

// NewAttribute creates a single-value Attribute.
func NewAttribute(typ asn1.ObjectIdentifier, val interface{}) (attr Attribute, err error) {
	var der []byte
	if der, err = asn1.Marshal(val); err != nil {
		return
	}

	var rv asn1.RawValue
	if _, err = asn1.Unmarshal(der, &rv); err != nil {
		return
	}

	if err = NewAnySet(rv).Encode(&attr.RawValue); err != nil {
		return
	}

	attr.Type = typ

	return
}

// Value further decodes the attribute Value as a SET OF ANY, which Go's asn1
// parser can't handle directly.
func (a Attribute) Value() (AnySet, error) {
	return DecodeAnySet(a.RawValue)
}

// Attributes is a common Go type for authenticated and unauthenticated
// attributes.
//
// Attributes ::= SET SIZE (1..MAX) OF Attribute
type Attributes []Attribute

// MarshaledForSigning DER encodes the Attributes as needed for signing
// authenticated attributes. RFC2315 explains this encoding:
//   The Attributes value's tag is SET OF, and the DER encoding of the SET OF
//   tag, rather than of the IMPLICIT [0] tag, is to be digested along with the
//   length and contents octets of the Attributes value.
func (attrs Attributes) MarshaledForSigning() ([]byte, error) {
	seq, err := asn1.Marshal(struct {
		Attributes `asn1:"set"`
	}{attrs})

	if err != nil {
		return nil, err
	}

	// unwrap the outer SEQUENCE
	var raw asn1.RawValue
	if _, err = asn1.Unmarshal(seq, &raw); err != nil {
		return nil, err
	}

	return raw.Bytes, nil
}

// sort puts the attributes in DER SET OF order so the encoded [0] field
// matches what MarshaledForSigning produces.
func (attrs Attributes) sort() error {
	ders := make(map[int][]byte, len(attrs))
	for i, attr := range attrs {
		der, err := asn1.Marshal(attr)
		if err != nil {
			return err
		}
		ders[i] = der
	}

	idx := make([]int, len(attrs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return bytes.Compare(ders[idx[i]], ders[idx[j]]) < 0
	})

	sorted := make(Attributes, len(attrs))
	for i, j := range idx {
		sorted[i] = attrs[j]
	}
	copy(attrs, sorted)

	return nil
}

// GetOnlyAttributeValueBytes gets an attribute value, returning an error if the
// attribute occurs multiple times or has multiple values.
func (attrs Attributes) GetOnlyAttributeValueBytes(oid asn1.ObjectIdentifier) (rv asn1.RawValue, err error) {
	var vals []AnySet
	if vals, err = attrs.GetValues(oid); err != nil {
		return
	}
	if len(vals) != 1 {
		err = errors.Errorf("expected 1 attribute found %d", len(vals))
		return
	}
	if len(vals[0].Elements) != 1 {
		err = errors.Errorf("expected 1 attribute value found %d", len(vals[0].Elements))
		return
	}

	return vals[0].Elements[0], nil
}

// GetValues retreives the attributes with the given OID. A nil value is
// returned if the OPTIONAL SET of Attributes is missing from the SignerInfo. An
// empty slice is returned if the specified attribute isn't in the set.
func (attrs Attributes) GetValues(oid asn1.ObjectIdentifier) ([]AnySet, error) {
	if attrs == nil {
		return nil, nil
	}

	vals := []AnySet{}
	for _, attr := range attrs {
		if attr.Type.Equal(oid) {
			val, err := attr.Value()
			if err != nil {
				return nil, err
			}

			vals = append(vals, val)
		}
	}

	return vals, nil
}

// IssuerAndSerialNumber ::= SEQUENCE {
// 	issuer Name,
// 	serialNumber CertificateSerialNumber }
//
// CertificateSerialNumber ::= INTEGER
type IssuerAndSerialNumber struct {
	Issuer       asn1.RawValue
	SerialNumber *big.Int
}

// NewIssuerAndSerialNumber creates a IssuerAndSerialNumber for the given cert.
func NewIssuerAndSerialNumber(cert *x509.Certificate) (isn IssuerAndSerialNumber, err error) {
	isn.SerialNumber = new(big.Int).Set(cert.SerialNumber)

	var rest []byte
	if rest, err = asn1.Unmarshal(cert.RawIssuer, &isn.Issuer); err == nil && len(rest) > 0 {
		err = ErrTrailingData
	}

	return
}

// Matches checks whether the certificate was issued by Issuer with
// SerialNumber.
func (isn IssuerAndSerialNumber) Matches(cert *x509.Certificate) bool {
	return cert != nil &&
		isn.SerialNumber != nil &&
		bytes.Equal(cert.RawIssuer, isn.Issuer.FullBytes) &&
		isn.SerialNumber.Cmp(cert.SerialNumber) == 0
}

// RawValue encodes the IssuerAndSerialNumber as a SignerIdentifier.
func (isn IssuerAndSerialNumber) RawValue() (rv asn1.RawValue, err error) {
	var der []byte
	if der, err = asn1.Marshal(isn); err != nil {
		return
	}

	_, err = asn1.Unmarshal(der, &rv)

	return
}

// SignerInfo ::= SEQUENCE {
//   version Version,
//   issuerAndSerialNumber IssuerAndSerialNumber,
//   digestAlgorithm DigestAlgorithmIdentifier,
//   authenticatedAttributes [0] IMPLICIT Attributes OPTIONAL,
//   digestEncryptionAlgorithm DigestEncryptionAlgorithmIdentifier,
//   encryptedDigest EncryptedDigest,
//   unauthenticatedAttributes [1] IMPLICIT Attributes OPTIONAL }
//
// The CMS SignerIdentifier CHOICE is accepted in place of
// issuerAndSerialNumber so that version 3 signers can be parsed.
//
// EncryptedDigest ::= OCTET STRING
type SignerInfo struct {
	Version            int
	SID                asn1.RawValue
	DigestAlgorithm    pkix.AlgorithmIdentifier
	SignedAttrs        Attributes `asn1:"optional,tag:0"`
	SignatureAlgorithm pkix.AlgorithmIdentifier
	Signature          []byte
	UnsignedAttrs      Attributes `asn1:"set,optional,tag:1"`
}

// FindCertificate finds this SignerInfo's certificate in a slice of
// certificates.
func (si SignerInfo) FindCertificate(certs []*x509.Certificate) (*x509.Certificate, error) {
	if len(certs) == 0 {
		return nil, errors.New("no certificates")
	}
	switch si.Version {
	case 1: // SID is issuer and serial number
		isn, err := si.IssuerAndSerialNumber()
		if err != nil {
			return nil, err
		}

		for _, cert := range certs {
			if isn.Matches(cert) {
				return cert, nil
			}
		}
	case 3: // SID is SubjectKeyIdentifier
		ski, err := si.subjectKeyIdentifierSID()
		if err != nil {
			return nil, err
		}

		for _, cert := range certs {
			for _, ext := range cert.Extensions {
				if oid.SubjectKeyIdentifier.Equal(ext.Id) {
					var extSKI []byte
					if _, err := asn1.Unmarshal(ext.Value, &extSKI); err == nil && bytes.Equal(ski, extSKI) {
						return cert, nil
					}
				}
			}
		}
	default:
		return nil, errors.New("unknown SignerInfo version")
	}

	return nil, errors.New("no matching certificate")
}

// IssuerAndSerialNumber gets the SID, assuming it is a issuerAndSerialNumber.
func (si SignerInfo) IssuerAndSerialNumber() (isn IssuerAndSerialNumber, err error) {
	if si.SID.Class != asn1.ClassUniversal || si.SID.Tag != asn1.TagSequence {
		err = ErrWrongType
		return
	}

	var rest []byte
	if rest, err = asn1.Unmarshal(si.SID.FullBytes, &isn); err == nil && len(rest) > 0 {
		err = ErrTrailingData
	}

	return
}

// subjectKeyIdentifierSID gets the SID, assuming it is a subjectKeyIdentifier.
func (si SignerInfo) subjectKeyIdentifierSID() ([]byte, error) {
	if si.SID.Class != asn1.ClassContextSpecific || si.SID.Tag != 0 {
		return nil, ErrWrongType
	}

	return si.SID.Bytes, nil
}

// Hash gets the crypto.Hash associated with this SignerInfo's DigestAlgorithm.
// 0 is returned for unrecognized algorithms.
func (si SignerInfo) Hash() crypto.Hash {
	return oid.DigestAlgorithmToHash[si.DigestAlgorithm.Algorithm.String()]
}

// PublicKeyAlgorithm gets the kind of key that should have produced this
// SignerInfo's signature. x509.UnknownPublicKeyAlgorithm is returned for
// unrecognized algorithms.
func (si SignerInfo) PublicKeyAlgorithm() x509.PublicKeyAlgorithm {
	return oid.SignatureAlgorithmToPublicKeyAlgorithm[si.SignatureAlgorithm.Algorithm.String()]
}

// GetContentTypeAttribute gets the signed ContentType attribute from the
// SignerInfo.
func (si SignerInfo) GetContentTypeAttribute() (asn1.ObjectIdentifier, error) {
	rv, err := si.SignedAttrs.GetOnlyAttributeValueBytes(oid.AttributeContentType)
	if err != nil {
		return nil, err
	}

	var ct asn1.ObjectIdentifier
	if rest, err := asn1.Unmarshal(rv.FullBytes, &ct); err != nil {
		return nil, err
	} else if len(rest) > 0 {
		return nil, ErrTrailingData
	}

	return ct, nil
}

// GetMessageDigestAttribute gets the signed MessageDigest attribute from the
// SignerInfo.
func (si SignerInfo) GetMessageDigestAttribute() ([]byte, error) {
	rv, err := si.SignedAttrs.GetOnlyAttributeValueBytes(oid.AttributeMessageDigest)
	if err != nil {
		return nil, err
	}
	if rv.Class != asn1.ClassUniversal {
		return nil, errors.Errorf("expected class %d, got %d", asn1.ClassUniversal, rv.Class)
	}
	if rv.Tag != asn1.TagOctetString {
		return nil, errors.Errorf("expected tag %d, got %d", asn1.TagOctetString, rv.Tag)
	}

	return rv.Bytes, nil
}

// GetSigningTimeAttribute gets the signed SigningTime attribute from the
// SignerInfo.
func (si SignerInfo) GetSigningTimeAttribute() (time.Time, error) {
	var t time.Time

	rv, err := si.SignedAttrs.GetOnlyAttributeValueBytes(oid.AttributeSigningTime)
	if err != nil {
		return t, err
	}
	if rv.Class != asn1.ClassUniversal {
		return t, errors.Errorf("expected class %d, got %d", asn1.ClassUniversal, rv.Class)
	}
	if rv.Tag != asn1.TagUTCTime && rv.Tag != asn1.TagGeneralizedTime {
		return t, errors.Errorf("expected tag %d or %d, got %d", asn1.TagUTCTime, asn1.TagGeneralizedTime, rv.Tag)
	}

	if rest, err := asn1.Unmarshal(rv.FullBytes, &t); err != nil {
		return t, err
	} else if len(rest) > 0 {
		return t, ErrTrailingData
	}

	return t, nil
}

// SignedData ::= SEQUENCE {
//   version Version,
//   digestAlgorithms DigestAlgorithmIdentifiers,
//   contentInfo ContentInfo,
//   certificates [0] IMPLICIT ExtendedCertificatesAndCertificates OPTIONAL,
//   crls [1] IMPLICIT CertificateRevocationLists OPTIONAL,
//   signerInfos SignerInfos }
//
// DigestAlgorithmIdentifiers ::= SET OF DigestAlgorithmIdentifier
//
// SignerInfos ::= SET OF SignerInfo
type SignedData struct {
	Version          int
	DigestAlgorithms []pkix.AlgorithmIdentifier `asn1:"set"`
	EncapContentInfo EncapsulatedContentInfo
	Certificates     []asn1.RawValue `asn1:"optional,set,tag:0"`
	CRLs             []asn1.RawValue `asn1:"optional,set,tag:1"`
	SignerInfos      []SignerInfo    `asn1:"set"`
}

// NewSignedData creates a new SignedData.
func NewSignedData(eci EncapsulatedContentInfo) (*SignedData, error) {
	return &SignedData{
		Version:          1,
		DigestAlgorithms: []pkix.AlgorithmIdentifier{},
		EncapContentInfo: eci,
		SignerInfos:      []SignerInfo{},
	}, nil
}

// SignerInfoOptions control how AddSignerInfo builds a SignerInfo.
type SignerInfoOptions struct {
	// Hash is the digest algorithm.
	Hash crypto.Hash

	// NoAttributes signs the content directly instead of a set of
	// authenticated attributes.
	NoAttributes bool

	// ExtraAttributes are added to the contentType and messageDigest
	// attributes that are always present when attributes are used.
	ExtraAttributes Attributes

	// Rand is the entropy source handed to the signer.
	Rand io.Reader
}

// AddSignerInfo signs content with signer and adds the resulting SignerInfo to
// the SignedData. The cert must hold the signer's public key.
func (sd *SignedData) AddSignerInfo(cert *x509.Certificate, signer crypto.Signer, content []byte, opts SignerInfoOptions) error {
	pub, err := x509.MarshalPKIXPublicKey(signer.Public())
	if err != nil {
		return err
	}
	certPub, err := x509.MarshalPKIXPublicKey(cert.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(pub, certPub) {
		return errors.New("certificate doesn't match signer's public key")
	}

	isn, err := NewIssuerAndSerialNumber(cert)
	if err != nil {
		return err
	}
	sid, err := isn.RawValue()
	if err != nil {
		return err
	}

	digestAlgorithm := oid.HashToDigestAlgorithm[opts.Hash]
	if digestAlgorithm == nil {
		return errors.New("unsupported digest algorithm")
	}
	if !opts.Hash.Available() {
		return errors.Errorf("hash not available: %s", digestAlgorithm.String())
	}

	signatureAlgorithm := oid.PublicKeyAlgorithmToSignatureAlgorithm[cert.PublicKeyAlgorithm]
	if signatureAlgorithm == nil {
		return errors.New("unsupported signature algorithm")
	}

	si := SignerInfo{
		Version:            1,
		SID:                sid,
		DigestAlgorithm:    pkix.AlgorithmIdentifier{Algorithm: digestAlgorithm, Parameters: asn1.NullRawValue},
		SignatureAlgorithm: pkix.AlgorithmIdentifier{Algorithm: signatureAlgorithm},
	}
	if cert.PublicKeyAlgorithm == x509.RSA {
		si.SignatureAlgorithm.Parameters = asn1.NullRawValue
	}

	// Digest the message.
	md := opts.Hash.New()
	if _, err = md.Write(content); err != nil {
		return err
	}
	digest := md.Sum(nil)

	if !opts.NoAttributes {
		ctAttr, err := NewAttribute(oid.AttributeContentType, sd.EncapContentInfo.EContentType)
		if err != nil {
			return err
		}
		mdAttr, err := NewAttribute(oid.AttributeMessageDigest, digest)
		if err != nil {
			return err
		}
		si.SignedAttrs = append(Attributes{ctAttr}, opts.ExtraAttributes...)
		si.SignedAttrs = append(si.SignedAttrs, mdAttr)
		if err := si.SignedAttrs.sort(); err != nil {
			return err
		}

		// Signature is over the marshaled signed attributes
		sm, err := si.SignedAttrs.MarshaledForSigning()
		if err != nil {
			return err
		}
		smd := opts.Hash.New()
		if _, err := smd.Write(sm); err != nil {
			return err
		}
		digest = smd.Sum(nil)
	}

	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	if si.Signature, err = signer.Sign(r, digest, opts.Hash); err != nil {
		return err
	}

	sd.AddDigestAlgorithm(si.DigestAlgorithm)
	sd.SignerInfos = append(sd.SignerInfos, si)

	return nil
}

// AddCertificate adds a *x509.Certificate. Certificates that are already
// present are skipped.
func (sd *SignedData) AddCertificate(cert *x509.Certificate) error {
	for _, existing := range sd.Certificates {
		if bytes.Equal(existing.FullBytes, cert.Raw) {
			return nil
		}
	}

	var rv asn1.RawValue
	if _, err := asn1.Unmarshal(cert.Raw, &rv); err != nil {
		return err
	}

	sd.Certificates = append(sd.Certificates, rv)

	return nil
}

// AddDigestAlgorithm adds a new AlgorithmIdentifier if it doesn't exist yet.
func (sd *SignedData) AddDigestAlgorithm(algo pkix.AlgorithmIdentifier) {
	for _, existing := range sd.DigestAlgorithms {
		if existing.Algorithm.Equal(algo.Algorithm) {
			return
		}
	}

	sd.DigestAlgorithms = append(sd.DigestAlgorithms, algo)
}

// X509Certificates gets the certificates, assuming that they're X.509 encoded.
func (sd *SignedData) X509Certificates() ([]*x509.Certificate, error) {
	return parseCertificates(sd.Certificates)
}

// X509CRLs gets the CRLs, assuming that they're X.509 CertificateLists.
func (sd *SignedData) X509CRLs() ([]*x509.RevocationList, error) {
	return parseCRLs(sd.CRLs)
}

// ContentInfoDER returns the SignedData wrapped in a ContentInfo packet and DER
// encoded.
func (sd *SignedData) ContentInfoDER() ([]byte, error) {
	der, err := asn1.Marshal(*sd)
	if err != nil {
		return nil, err
	}

	return NewContentInfo(oid.ContentTypeSignedData, der).DER()
}

func parseCertificates(raws []asn1.RawValue) ([]*x509.Certificate, error) {
	// Certificates field is optional. Handle missing value.
	if raws == nil {
		return nil, nil
	}

	certs := make([]*x509.Certificate, 0, len(raws))
	for _, raw := range raws {
		if raw.Class != asn1.ClassUniversal || raw.Tag != asn1.TagSequence {
			return nil, errors.Errorf("unsupported certificate type (class %d, tag %d)", raw.Class, raw.Tag)
		}

		cert, err := x509.ParseCertificate(raw.FullBytes)
		if err != nil {
			return nil, err
		}

		certs = append(certs, cert)
	}

	return certs, nil
}

func parseCRLs(raws []asn1.RawValue) ([]*x509.RevocationList, error) {
	if raws == nil {
		return nil, nil
	}

	crls := make([]*x509.RevocationList, 0, len(raws))
	for _, raw := range raws {
		if raw.Class != asn1.ClassUniversal || raw.Tag != asn1.TagSequence {
			return nil, errors.Errorf("unsupported crl type (class %d, tag %d)", raw.Class, raw.Tag)
		}

		crl, err := x509.ParseRevocationList(raw.FullBytes)
		if err != nil {
			return nil, err
		}

		crls = append(crls, crl)
	}

	return crls, nil
}
