package pkcs7

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/base64"
	"encoding/json"
	"math/big"

	"github.com/github/pkcs7/oid"
)

// Field names a Record field.
type Field string

// Record fields. The values are the JSON keys.
const (
	FieldType             Field = "type"
	FieldDigestAlgorithms Field = "digest_algorithms"
	FieldSignerInfos      Field = "signer_infos"
	FieldCertificates     Field = "certificates"
	FieldCRLs             Field = "crls"
	FieldDetached         Field = "detached"
	FieldContentType      Field = "content_type"
	FieldContent          Field = "content"
	FieldData             Field = "data"
	FieldDigestAlgorithm  Field = "digest_algorithm"
	FieldDigest           Field = "digest"
	FieldRecipientInfos   Field = "recipient_infos"
)

// Record is a structural description of a Container. Fields that don't apply
// to the container's type, or whose OPTIONAL encoding was absent, are zero and
// reported absent by Has. Lists that were present but empty are non-nil.
type Record struct {
	Type string

	DigestAlgorithms []pkix.AlgorithmIdentifier
	SignerInfos      []SignerInfo
	Certificates     []*x509.Certificate
	CRLs             []*x509.RevocationList
	RecipientInfos   []RecipientInfo

	Detached    bool
	ContentType asn1.ObjectIdentifier
	Content     []byte

	Data []byte

	DigestAlgorithm pkix.AlgorithmIdentifier
	Digest          []byte

	present map[Field]bool
}

// Has reports whether field is present.
func (r *Record) Has(field Field) bool {
	return r.present[field]
}

func (r *Record) set(fields ...Field) {
	for _, f := range fields {
		r.present[f] = true
	}
}

// Parse describes c. It never decrypts.
func (e *Engine) Parse(c Container) (*Record, error) {
	if c == nil {
		return nil, errorf(ArgumentError, "parse", "nil container")
	}

	r := &Record{
		Type:    typeName(c.ContentType()),
		present: map[Field]bool{FieldType: true},
	}

	switch c := c.(type) {
	case *Data:
		if c.content != nil {
			r.Data = c.Bytes()
			r.set(FieldData)
		}

	case *SignedData:
		r.DigestAlgorithms = c.DigestAlgorithms()
		r.SignerInfos = c.SignerInfos()
		r.Detached = c.IsDetached()
		r.ContentType = c.InnerContentType()
		r.set(FieldDigestAlgorithms, FieldSignerInfos, FieldDetached, FieldContentType)
		if !r.Detached {
			r.Content = c.Content()
			r.set(FieldContent)
		}
		if r.Certificates = c.Certificates(); r.Certificates != nil {
			r.set(FieldCertificates)
		}
		if r.CRLs = c.CRLs(); r.CRLs != nil {
			r.set(FieldCRLs)
		}

	case *EnvelopedData:
		r.RecipientInfos = c.RecipientInfos()
		r.set(FieldRecipientInfos)

	case *SignedAndEnvelopedData:
		r.RecipientInfos = c.RecipientInfos()
		r.DigestAlgorithms = c.DigestAlgorithms()
		r.SignerInfos = c.SignerInfos()
		r.set(FieldRecipientInfos, FieldDigestAlgorithms, FieldSignerInfos)
		if r.Certificates = c.Certificates(); r.Certificates != nil {
			r.set(FieldCertificates)
		}
		if r.CRLs = c.CRLs(); r.CRLs != nil {
			r.set(FieldCRLs)
		}

	case *DigestData:
		r.DigestAlgorithm = c.DigestAlgorithm()
		r.Digest = c.Digest()
		r.ContentType = c.InnerContentType()
		r.set(FieldDigestAlgorithm, FieldDigest, FieldContentType)
		if r.Content = c.Content(); r.Content != nil {
			r.set(FieldContent)
		}

	case *Other:

	default:
		return nil, errorf(ArgumentError, "parse", "unknown container %T", c)
	}

	return r, nil
}

// typeName is the long name of a content type, or its dotted form.
func typeName(id asn1.ObjectIdentifier) string {
	if name, ok := oid.ContentTypeNames[id.String()]; ok {
		return name
	}

	return id.String()
}

type jsonAlgorithm struct {
	OID  string `json:"oid"`
	Name string `json:"name,omitempty"`
}

type jsonAttribute struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

type jsonSignerInfo struct {
	Version            int             `json:"version"`
	Issuer             string          `json:"issuer,omitempty"`
	SerialNumber       string          `json:"serial_number,omitempty"`
	SubjectKeyID       string          `json:"subject_key_id,omitempty"`
	DigestAlgorithm    jsonAlgorithm   `json:"digest_algorithm"`
	SignatureAlgorithm jsonAlgorithm   `json:"signature_algorithm"`
	Signature          string          `json:"signature"`
	SignedAttributes   []jsonAttribute `json:"signed_attributes,omitempty"`
	UnsignedAttributes []jsonAttribute `json:"unsigned_attributes,omitempty"`
}

type jsonRecipientInfo struct {
	Version                int           `json:"version"`
	Issuer                 string        `json:"issuer"`
	SerialNumber           string        `json:"serial_number"`
	KeyEncryptionAlgorithm jsonAlgorithm `json:"key_encryption_algorithm"`
	EncryptedKey           string        `json:"encrypted_key"`
}

type jsonCertificate struct {
	Subject      string `json:"subject"`
	Issuer       string `json:"issuer"`
	SerialNumber string `json:"serial_number"`
	NotBefore    string `json:"not_before"`
	NotAfter     string `json:"not_after"`
}

type jsonCRL struct {
	Issuer     string `json:"issuer"`
	ThisUpdate string `json:"this_update"`
	Revoked    int    `json:"revoked"`
}

// MarshalJSON renders the present fields. Byte strings are base64 and names
// are RFC 2253 strings.
func (r *Record) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{}

	for field := range r.present {
		switch field {
		case FieldType:
			m[string(field)] = r.Type
		case FieldDigestAlgorithms:
			algs := make([]jsonAlgorithm, 0, len(r.DigestAlgorithms))
			for _, a := range r.DigestAlgorithms {
				algs = append(algs, newJSONAlgorithm(a))
			}
			m[string(field)] = algs
		case FieldSignerInfos:
			sis := make([]jsonSignerInfo, 0, len(r.SignerInfos))
			for _, si := range r.SignerInfos {
				sis = append(sis, newJSONSignerInfo(si))
			}
			m[string(field)] = sis
		case FieldCertificates:
			certs := make([]jsonCertificate, 0, len(r.Certificates))
			for _, c := range r.Certificates {
				certs = append(certs, jsonCertificate{
					Subject:      NameString(c.RawSubject),
					Issuer:       NameString(c.RawIssuer),
					SerialNumber: serialString(c.SerialNumber),
					NotBefore:    c.NotBefore.UTC().Format("2006-01-02T15:04:05Z"),
					NotAfter:     c.NotAfter.UTC().Format("2006-01-02T15:04:05Z"),
				})
			}
			m[string(field)] = certs
		case FieldCRLs:
			crls := make([]jsonCRL, 0, len(r.CRLs))
			for _, c := range r.CRLs {
				crls = append(crls, jsonCRL{
					Issuer:     NameString(c.RawIssuer),
					ThisUpdate: c.ThisUpdate.UTC().Format("2006-01-02T15:04:05Z"),
					Revoked:    len(c.RevokedCertificateEntries),
				})
			}
			m[string(field)] = crls
		case FieldRecipientInfos:
			ris := make([]jsonRecipientInfo, 0, len(r.RecipientInfos))
			for _, ri := range r.RecipientInfos {
				ris = append(ris, jsonRecipientInfo{
					Version:                ri.Version,
					Issuer:                 NameString(ri.Issuer),
					SerialNumber:           serialString(ri.SerialNumber),
					KeyEncryptionAlgorithm: newJSONAlgorithm(ri.KeyEncryptionAlgorithm),
					EncryptedKey:           base64.StdEncoding.EncodeToString(ri.EncryptedKey),
				})
			}
			m[string(field)] = ris
		case FieldDetached:
			m[string(field)] = r.Detached
		case FieldContentType:
			m[string(field)] = typeName(r.ContentType)
		case FieldContent:
			m[string(field)] = base64.StdEncoding.EncodeToString(r.Content)
		case FieldData:
			m[string(field)] = base64.StdEncoding.EncodeToString(r.Data)
		case FieldDigestAlgorithm:
			m[string(field)] = newJSONAlgorithm(r.DigestAlgorithm)
		case FieldDigest:
			m[string(field)] = base64.StdEncoding.EncodeToString(r.Digest)
		}
	}

	return json.Marshal(m)
}

var algorithmNames = map[string]string{
	oid.DigestAlgorithmSHA1.String():           "sha1",
	oid.DigestAlgorithmMD5.String():            "md5",
	oid.DigestAlgorithmSHA224.String():         "sha224",
	oid.DigestAlgorithmSHA256.String():         "sha256",
	oid.DigestAlgorithmSHA384.String():         "sha384",
	oid.DigestAlgorithmSHA512.String():         "sha512",
	oid.DigestAlgorithmSHA3_256.String():       "sha3-256",
	oid.DigestAlgorithmSHA3_384.String():       "sha3-384",
	oid.DigestAlgorithmSHA3_512.String():       "sha3-512",
	oid.SignatureAlgorithmRSA.String():         "rsaEncryption",
	oid.SignatureAlgorithmECDSA.String():       "id-ecPublicKey",
	oid.EncryptionAlgorithmAES128CBC.String():  "aes-128-cbc",
	oid.EncryptionAlgorithmAES192CBC.String():  "aes-192-cbc",
	oid.EncryptionAlgorithmAES256CBC.String():  "aes-256-cbc",
	oid.EncryptionAlgorithmDESEDE3CBC.String(): "des-ede3-cbc",
}

func newJSONAlgorithm(a pkix.AlgorithmIdentifier) jsonAlgorithm {
	return jsonAlgorithm{OID: a.Algorithm.String(), Name: algorithmNames[a.Algorithm.String()]}
}

func newJSONSignerInfo(si SignerInfo) jsonSignerInfo {
	j := jsonSignerInfo{
		Version:            si.Version,
		SerialNumber:       serialString(si.SerialNumber),
		DigestAlgorithm:    newJSONAlgorithm(si.DigestAlgorithm),
		SignatureAlgorithm: newJSONAlgorithm(si.SignatureAlgorithm),
		Signature:          base64.StdEncoding.EncodeToString(si.Signature),
		SignedAttributes:   newJSONAttributes(si.SignedAttributes),
		UnsignedAttributes: newJSONAttributes(si.UnsignedAttributes),
	}
	if si.Issuer != nil {
		j.Issuer = NameString(si.Issuer)
	}
	if si.SubjectKeyID != nil {
		j.SubjectKeyID = base64.StdEncoding.EncodeToString(si.SubjectKeyID)
	}

	return j
}

func newJSONAttributes(attrs []Attribute) []jsonAttribute {
	if attrs == nil {
		return nil
	}

	out := make([]jsonAttribute, 0, len(attrs))
	for _, a := range attrs {
		ja := jsonAttribute{Type: a.Type.String(), Values: make([]string, 0, len(a.Values))}
		for _, v := range a.Values {
			ja.Values = append(ja.Values, base64.StdEncoding.EncodeToString(v))
		}
		out = append(out, ja)
	}

	return out
}

func serialString(n *big.Int) string {
	if n == nil {
		return ""
	}

	return n.Text(16)
}
