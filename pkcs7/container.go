package pkcs7

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"

	"github.com/github/pkcs7/oid"
	"github.com/github/pkcs7/protocol"
	"github.com/pkg/errors"
)

// Container is a decoded PKCS7 ContentInfo. It is one of *Data, *SignedData,
// *EnvelopedData, *SignedAndEnvelopedData, *DigestData or *Other.
type Container interface {
	// ContentType is the ContentInfo's type OID.
	ContentType() asn1.ObjectIdentifier

	// der encodes the ContentInfo. Unexported so the set of variants is
	// closed.
	der() ([]byte, error)
}

// Equal reports whether two containers have the same DER encoding.
func Equal(a, b Container) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ader, err := a.der()
	if err != nil {
		return false
	}
	bder, err := b.der()
	if err != nil {
		return false
	}

	return bytes.Equal(ader, bder)
}

// fromContentInfo builds the Container for a parsed ContentInfo. Everything a
// later accessor parses is parsed here first, so accessors can't fail.
func fromContentInfo(ci protocol.ContentInfo) (Container, error) {
	switch {
	case ci.ContentType.Equal(oid.ContentTypeData):
		content, err := ci.DataContent()
		if err != nil {
			return nil, err
		}
		return &Data{content: content}, nil

	case ci.ContentType.Equal(oid.ContentTypeSignedData):
		psd, err := ci.SignedDataContent()
		if err != nil {
			return nil, err
		}
		if err := checkSignedData(psd); err != nil {
			return nil, err
		}
		return &SignedData{psd: psd}, nil

	case ci.ContentType.Equal(oid.ContentTypeEnvelopedData):
		ped, err := ci.EnvelopedDataContent()
		if err != nil {
			return nil, err
		}
		if _, err := ped.EncryptedContentInfo.Ciphertext(); err != nil {
			return nil, err
		}
		return &EnvelopedData{ped: ped}, nil

	case ci.ContentType.Equal(oid.ContentTypeSignedAndEnvelopedData):
		psed, err := ci.SignedAndEnvelopedDataContent()
		if err != nil {
			return nil, err
		}
		if _, err := psed.X509Certificates(); err != nil {
			return nil, errors.Wrap(err, "certificates")
		}
		if _, err := psed.X509CRLs(); err != nil {
			return nil, errors.Wrap(err, "crls")
		}
		if _, err := psed.EncryptedContentInfo.Ciphertext(); err != nil {
			return nil, err
		}
		return &SignedAndEnvelopedData{psed: psed}, nil

	case ci.ContentType.Equal(oid.ContentTypeDigestedData):
		pdd, err := ci.DigestedDataContent()
		if err != nil {
			return nil, err
		}
		if pdd.ContentInfo.ContentType.Equal(oid.ContentTypeData) {
			if _, err := pdd.ContentInfo.DataContent(); err != nil {
				return nil, err
			}
		}
		return &DigestData{pdd: pdd}, nil

	default:
		return &Other{typ: ci.ContentType, raw: ci.RawContent()}, nil
	}
}

func checkSignedData(psd *protocol.SignedData) error {
	if _, err := psd.X509Certificates(); err != nil {
		return errors.Wrap(err, "certificates")
	}
	if _, err := psd.X509CRLs(); err != nil {
		return errors.Wrap(err, "crls")
	}
	if _, err := psd.EncapContentInfo.DigestInput(); err != nil {
		return errors.Wrap(err, "content")
	}
	for _, si := range psd.SignerInfos {
		if _, err := si.SignedAttrs.GetValues(oid.AttributeContentType); err != nil {
			return errors.Wrap(err, "signed attributes")
		}
	}

	return nil
}

// Data is a pkcs7-data container.
type Data struct {
	content []byte
}

// NewData creates a Data container holding a copy of content.
func NewData(content []byte) *Data {
	if content == nil {
		content = []byte{}
	}

	return &Data{content: clone(content)}
}

// ContentType implements Container.
func (d *Data) ContentType() asn1.ObjectIdentifier {
	return cloneOID(oid.ContentTypeData)
}

// Bytes returns a copy of the data. It is nil if the content was absent.
func (d *Data) Bytes() []byte {
	return clone(d.content)
}

func (d *Data) der() ([]byte, error) {
	if d.content == nil {
		return protocol.NewContentInfo(oid.ContentTypeData, nil).DER()
	}

	inner, err := asn1.Marshal(d.content)
	if err != nil {
		return nil, err
	}

	return protocol.NewContentInfo(oid.ContentTypeData, inner).DER()
}

// SignedData is a pkcs7-signedData container.
type SignedData struct {
	psd *protocol.SignedData
}

// ContentType implements Container.
func (sd *SignedData) ContentType() asn1.ObjectIdentifier {
	return cloneOID(oid.ContentTypeSignedData)
}

func (sd *SignedData) der() ([]byte, error) {
	return sd.psd.ContentInfoDER()
}

// Version is the SignedData syntax version.
func (sd *SignedData) Version() int {
	return sd.psd.Version
}

// InnerContentType is the type of the signed content.
func (sd *SignedData) InnerContentType() asn1.ObjectIdentifier {
	return cloneOID(sd.psd.EncapContentInfo.EContentType)
}

// IsDetached reports whether the content is absent.
func (sd *SignedData) IsDetached() bool {
	return sd.psd.EncapContentInfo.IsDetached()
}

// Content returns a copy of the signed content. For pkcs7-data this is the
// data itself, for other inner types it is the DER of the inner value. It is
// nil when the content is detached.
func (sd *SignedData) Content() []byte {
	eci := sd.psd.EncapContentInfo
	if eci.EContentType.Equal(oid.ContentTypeData) {
		data, _ := eci.DataEContent()
		return clone(data)
	}

	return clone(eci.RawEContent())
}

// DigestAlgorithms lists the digest algorithms used by the signers.
func (sd *SignedData) DigestAlgorithms() []pkix.AlgorithmIdentifier {
	return cloneAlgorithms(sd.psd.DigestAlgorithms)
}

// Certificates returns copies of the embedded certificates. It is nil if the
// OPTIONAL field is absent and empty if it is present with no members.
func (sd *SignedData) Certificates() []*x509.Certificate {
	return copyCertificates(sd.psd.Certificates)
}

// CRLs returns copies of the embedded CRLs, with the same absent versus empty
// distinction as Certificates.
func (sd *SignedData) CRLs() []*x509.RevocationList {
	return copyCRLs(sd.psd.CRLs)
}

// SignerInfos describes the signers.
func (sd *SignedData) SignerInfos() []SignerInfo {
	return newSignerInfos(sd.psd.SignerInfos)
}

// AddCertificate attaches a copy of cert. Certificates already present are
// skipped.
func (sd *SignedData) AddCertificate(cert *x509.Certificate) error {
	if cert == nil {
		return errorf(ArgumentError, "add certificate", "nil certificate")
	}

	return sd.psd.AddCertificate(&x509.Certificate{Raw: clone(cert.Raw)})
}

// AddCRL attaches a copy of crl.
func (sd *SignedData) AddCRL(crl *x509.RevocationList) error {
	if crl == nil || len(crl.Raw) == 0 {
		return errorf(ArgumentError, "add crl", "nil or unencoded crl")
	}

	for _, existing := range sd.psd.CRLs {
		if bytes.Equal(existing.FullBytes, crl.Raw) {
			return nil
		}
	}

	var rv asn1.RawValue
	if _, err := asn1.Unmarshal(clone(crl.Raw), &rv); err != nil {
		return newError(ArgumentError, "add crl", err)
	}
	sd.psd.CRLs = append(sd.psd.CRLs, rv)

	return nil
}

// EnvelopedData is a pkcs7-envelopedData container.
type EnvelopedData struct {
	ped *protocol.EnvelopedData
}

// ContentType implements Container.
func (ed *EnvelopedData) ContentType() asn1.ObjectIdentifier {
	return cloneOID(oid.ContentTypeEnvelopedData)
}

func (ed *EnvelopedData) der() ([]byte, error) {
	return ed.ped.ContentInfoDER()
}

// Version is the EnvelopedData syntax version.
func (ed *EnvelopedData) Version() int {
	return ed.ped.Version
}

// RecipientInfos describes the recipients.
func (ed *EnvelopedData) RecipientInfos() []RecipientInfo {
	return newRecipientInfos(ed.ped.RecipientInfos)
}

// EncryptedContent describes the encrypted payload.
func (ed *EnvelopedData) EncryptedContent() EncryptedContent {
	return newEncryptedContent(ed.ped.EncryptedContentInfo)
}

// SignedAndEnvelopedData is a pkcs7-signedAndEnvelopedData container.
type SignedAndEnvelopedData struct {
	psed *protocol.SignedAndEnvelopedData
}

// ContentType implements Container.
func (sed *SignedAndEnvelopedData) ContentType() asn1.ObjectIdentifier {
	return cloneOID(oid.ContentTypeSignedAndEnvelopedData)
}

func (sed *SignedAndEnvelopedData) der() ([]byte, error) {
	return sed.psed.ContentInfoDER()
}

// Version is the SignedAndEnvelopedData syntax version.
func (sed *SignedAndEnvelopedData) Version() int {
	return sed.psed.Version
}

// RecipientInfos describes the recipients.
func (sed *SignedAndEnvelopedData) RecipientInfos() []RecipientInfo {
	return newRecipientInfos(sed.psed.RecipientInfos)
}

// DigestAlgorithms lists the digest algorithms used by the signers.
func (sed *SignedAndEnvelopedData) DigestAlgorithms() []pkix.AlgorithmIdentifier {
	return cloneAlgorithms(sed.psed.DigestAlgorithms)
}

// EncryptedContent describes the encrypted payload.
func (sed *SignedAndEnvelopedData) EncryptedContent() EncryptedContent {
	return newEncryptedContent(sed.psed.EncryptedContentInfo)
}

// Certificates returns copies of the embedded certificates.
func (sed *SignedAndEnvelopedData) Certificates() []*x509.Certificate {
	return copyCertificates(sed.psed.Certificates)
}

// CRLs returns copies of the embedded CRLs.
func (sed *SignedAndEnvelopedData) CRLs() []*x509.RevocationList {
	return copyCRLs(sed.psed.CRLs)
}

// SignerInfos describes the signers.
func (sed *SignedAndEnvelopedData) SignerInfos() []SignerInfo {
	return newSignerInfos(sed.psed.SignerInfos)
}

// DigestData is a pkcs7-digestData container.
type DigestData struct {
	pdd *protocol.DigestedData
}

// ContentType implements Container.
func (dd *DigestData) ContentType() asn1.ObjectIdentifier {
	return cloneOID(oid.ContentTypeDigestedData)
}

func (dd *DigestData) der() ([]byte, error) {
	return dd.pdd.ContentInfoDER()
}

// Version is the DigestedData syntax version.
func (dd *DigestData) Version() int {
	return dd.pdd.Version
}

// DigestAlgorithm is the algorithm the digest was computed with.
func (dd *DigestData) DigestAlgorithm() pkix.AlgorithmIdentifier {
	return cloneAlgorithm(dd.pdd.DigestAlgorithm)
}

// Digest returns a copy of the digest value.
func (dd *DigestData) Digest() []byte {
	return clone(dd.pdd.Digest)
}

// InnerContentType is the type of the digested content.
func (dd *DigestData) InnerContentType() asn1.ObjectIdentifier {
	return cloneOID(dd.pdd.ContentInfo.ContentType)
}

// Content returns a copy of the digested content. pkcs7-data is unwrapped,
// other types are returned as DER. It is nil when the content is absent.
func (dd *DigestData) Content() []byte {
	ci := dd.pdd.ContentInfo
	if ci.ContentType.Equal(oid.ContentTypeData) {
		data, _ := ci.DataContent()
		return clone(data)
	}

	return clone(ci.RawContent())
}

// Other holds a ContentInfo of a type this package doesn't model, such as
// pkcs7-encryptedData. The payload is kept verbatim.
type Other struct {
	typ asn1.ObjectIdentifier
	raw []byte
}

// ContentType implements Container.
func (o *Other) ContentType() asn1.ObjectIdentifier {
	return cloneOID(o.typ)
}

// Raw returns a copy of the DER payload held in the explicit content field,
// or nil if it is absent.
func (o *Other) Raw() []byte {
	return clone(o.raw)
}

func (o *Other) der() ([]byte, error) {
	return protocol.NewContentInfo(o.typ, o.raw).DER()
}

// SignerInfo describes one signer of a SignedData or SignedAndEnvelopedData.
type SignerInfo struct {
	Version int

	// Issuer is the DER encoded issuer Name and SerialNumber the serial of the
	// signer's certificate. Both are nil for a signer identified by
	// SubjectKeyID.
	Issuer       []byte
	SerialNumber *big.Int
	SubjectKeyID []byte

	DigestAlgorithm    pkix.AlgorithmIdentifier
	SignatureAlgorithm pkix.AlgorithmIdentifier
	Signature          []byte

	// SignedAttributes is nil when the signer has no authenticated
	// attributes.
	SignedAttributes   []Attribute
	UnsignedAttributes []Attribute
}

// Attribute is a PKCS9 attribute. Values holds the DER of each member of the
// attribute's value set.
type Attribute struct {
	Type   asn1.ObjectIdentifier
	Values [][]byte
}

// RecipientInfo describes one recipient of an enveloped message.
type RecipientInfo struct {
	Version                int
	Issuer                 []byte
	SerialNumber           *big.Int
	KeyEncryptionAlgorithm pkix.AlgorithmIdentifier
	EncryptedKey           []byte
}

// EncryptedContent describes the encrypted payload of an enveloped message.
// The IV is carried in the Algorithm parameters.
type EncryptedContent struct {
	ContentType asn1.ObjectIdentifier
	Algorithm   pkix.AlgorithmIdentifier
	Ciphertext  []byte
}

func newSignerInfos(psis []protocol.SignerInfo) []SignerInfo {
	sis := make([]SignerInfo, 0, len(psis))
	for _, psi := range psis {
		si := SignerInfo{
			Version:            psi.Version,
			DigestAlgorithm:    cloneAlgorithm(psi.DigestAlgorithm),
			SignatureAlgorithm: cloneAlgorithm(psi.SignatureAlgorithm),
			Signature:          clone(psi.Signature),
			SignedAttributes:   newAttributes(psi.SignedAttrs),
			UnsignedAttributes: newAttributes(psi.UnsignedAttrs),
		}

		if isn, err := psi.IssuerAndSerialNumber(); err == nil {
			si.Issuer = clone(isn.Issuer.FullBytes)
			si.SerialNumber = new(big.Int).Set(isn.SerialNumber)
		} else if psi.SID.Class == asn1.ClassContextSpecific {
			si.SubjectKeyID = clone(psi.SID.Bytes)
		}

		sis = append(sis, si)
	}

	return sis
}

func newAttributes(pattrs protocol.Attributes) []Attribute {
	if pattrs == nil {
		return nil
	}

	attrs := make([]Attribute, 0, len(pattrs))
	for _, pattr := range pattrs {
		attr := Attribute{Type: cloneOID(pattr.Type), Values: [][]byte{}}
		if set, err := pattr.Value(); err == nil {
			for _, v := range set.Elements {
				attr.Values = append(attr.Values, clone(v.FullBytes))
			}
		}
		attrs = append(attrs, attr)
	}

	return attrs
}

func newRecipientInfos(pris []protocol.RecipientInfo) []RecipientInfo {
	ris := make([]RecipientInfo, 0, len(pris))
	for _, pri := range pris {
		ri := RecipientInfo{
			Version:                pri.Version,
			Issuer:                 clone(pri.IssuerAndSerialNumber.Issuer.FullBytes),
			KeyEncryptionAlgorithm: cloneAlgorithm(pri.KeyEncryptionAlgorithm),
			EncryptedKey:           clone(pri.EncryptedKey),
		}
		if pri.IssuerAndSerialNumber.SerialNumber != nil {
			ri.SerialNumber = new(big.Int).Set(pri.IssuerAndSerialNumber.SerialNumber)
		}
		ris = append(ris, ri)
	}

	return ris
}

func newEncryptedContent(eci protocol.EncryptedContentInfo) EncryptedContent {
	ciphertext, _ := eci.Ciphertext()

	return EncryptedContent{
		ContentType: cloneOID(eci.ContentType),
		Algorithm:   cloneAlgorithm(eci.ContentEncryptionAlgorithm),
		Ciphertext:  clone(ciphertext),
	}
}

func copyCertificates(raws []asn1.RawValue) []*x509.Certificate {
	if raws == nil {
		return nil
	}

	certs := make([]*x509.Certificate, 0, len(raws))
	for _, raw := range raws {
		if cert, err := x509.ParseCertificate(clone(raw.FullBytes)); err == nil {
			certs = append(certs, cert)
		}
	}

	return certs
}

func copyCRLs(raws []asn1.RawValue) []*x509.RevocationList {
	if raws == nil {
		return nil
	}

	crls := make([]*x509.RevocationList, 0, len(raws))
	for _, raw := range raws {
		if crl, err := x509.ParseRevocationList(clone(raw.FullBytes)); err == nil {
			crls = append(crls, crl)
		}
	}

	return crls
}

func copyCertificate(cert *x509.Certificate) (*x509.Certificate, error) {
	return x509.ParseCertificate(clone(cert.Raw))
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append([]byte{}, b...)
}

func cloneOID(id asn1.ObjectIdentifier) asn1.ObjectIdentifier {
	if id == nil {
		return nil
	}

	return append(asn1.ObjectIdentifier{}, id...)
}

func cloneAlgorithm(ai pkix.AlgorithmIdentifier) pkix.AlgorithmIdentifier {
	ai.Algorithm = cloneOID(ai.Algorithm)
	ai.Parameters.Bytes = clone(ai.Parameters.Bytes)
	ai.Parameters.FullBytes = clone(ai.Parameters.FullBytes)

	return ai
}

func cloneAlgorithms(ais []pkix.AlgorithmIdentifier) []pkix.AlgorithmIdentifier {
	if ais == nil {
		return nil
	}

	out := make([]pkix.AlgorithmIdentifier, 0, len(ais))
	for _, ai := range ais {
		out = append(out, cloneAlgorithm(ai))
	}

	return out
}
