// Package oid contains OIDs that are used by other packages in this repository.
package oid

import (
	"crypto"
	"crypto/x509"
	"encoding/asn1"
)

// Content type OIDs
var (
	ContentTypeData                   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	ContentTypeSignedData             = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
	ContentTypeEnvelopedData          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 3}
	ContentTypeSignedAndEnvelopedData = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 4}
	ContentTypeDigestedData           = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 5}
	ContentTypeEncryptedData          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 6}
)

// ContentTypeNames maps content type OIDs to their long names.
var ContentTypeNames = map[string]string{
	ContentTypeData.String():                   "pkcs7-data",
	ContentTypeSignedData.String():             "pkcs7-signedData",
	ContentTypeEnvelopedData.String():          "pkcs7-envelopedData",
	ContentTypeSignedAndEnvelopedData.String(): "pkcs7-signedAndEnvelopedData",
	ContentTypeDigestedData.String():           "pkcs7-digestData",
	ContentTypeEncryptedData.String():          "pkcs7-encryptedData",
}

// Attribute OIDs
var (
	AttributeContentType       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 3}
	AttributeMessageDigest     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 4}
	AttributeSigningTime       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 5}
	AttributeSMIMECapabilities = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 15}
)

// Signature Algorithm OIDs
var (
	SignatureAlgorithmRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	SignatureAlgorithmECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	SignatureAlgorithmSHA1WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}
	SignatureAlgorithmSHA256WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	SignatureAlgorithmSHA384WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	SignatureAlgorithmSHA512WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	SignatureAlgorithmSHA224WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 14}

	SignatureAlgorithmECDSAWithSHA1   = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 1}
	SignatureAlgorithmECDSAWithSHA224 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 1}
	SignatureAlgorithmECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	SignatureAlgorithmECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	SignatureAlgorithmECDSAWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
)

// Digest Algorithm OIDs
var (
	DigestAlgorithmSHA1     = asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}
	DigestAlgorithmMD5      = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 5}
	DigestAlgorithmSHA224   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 4}
	DigestAlgorithmSHA256   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	DigestAlgorithmSHA384   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	DigestAlgorithmSHA512   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
	DigestAlgorithmSHA3_256 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 8}
	DigestAlgorithmSHA3_384 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 9}
	DigestAlgorithmSHA3_512 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 10}
)

// Key transport OIDs
var (
	KeyEncryptionAlgorithmRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
)

// Content encryption OIDs
var (
	EncryptionAlgorithmDESEDE3CBC = asn1.ObjectIdentifier{1, 2, 840, 113549, 3, 7}
	EncryptionAlgorithmAES128CBC  = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 2}
	EncryptionAlgorithmAES192CBC  = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 22}
	EncryptionAlgorithmAES256CBC  = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 42}
)

// X509 extensions
var (
	SubjectKeyIdentifier = asn1.ObjectIdentifier{2, 5, 29, 14}
)

// DigestAlgorithmToHash maps digest OIDs to crypto.Hash values.
var DigestAlgorithmToHash = map[string]crypto.Hash{
	DigestAlgorithmSHA1.String():     crypto.SHA1,
	DigestAlgorithmMD5.String():      crypto.MD5,
	DigestAlgorithmSHA224.String():   crypto.SHA224,
	DigestAlgorithmSHA256.String():   crypto.SHA256,
	DigestAlgorithmSHA384.String():   crypto.SHA384,
	DigestAlgorithmSHA512.String():   crypto.SHA512,
	DigestAlgorithmSHA3_256.String(): crypto.SHA3_256,
	DigestAlgorithmSHA3_384.String(): crypto.SHA3_384,
	DigestAlgorithmSHA3_512.String(): crypto.SHA3_512,
}

// HashToDigestAlgorithm maps crypto.Hash values to digest OIDs.
var HashToDigestAlgorithm = map[crypto.Hash]asn1.ObjectIdentifier{
	crypto.SHA1:     DigestAlgorithmSHA1,
	crypto.MD5:      DigestAlgorithmMD5,
	crypto.SHA224:   DigestAlgorithmSHA224,
	crypto.SHA256:   DigestAlgorithmSHA256,
	crypto.SHA384:   DigestAlgorithmSHA384,
	crypto.SHA512:   DigestAlgorithmSHA512,
	crypto.SHA3_256: DigestAlgorithmSHA3_256,
	crypto.SHA3_384: DigestAlgorithmSHA3_384,
	crypto.SHA3_512: DigestAlgorithmSHA3_512,
}

// SignatureAlgorithmToPublicKeyAlgorithm maps the signatureAlgorithm OIDs found
// in SignerInfos to the kind of key that produced them. PKCS7 signers mostly
// use the bare key OIDs but the hash-specific ones show up in the wild.
var SignatureAlgorithmToPublicKeyAlgorithm = map[string]x509.PublicKeyAlgorithm{
	SignatureAlgorithmRSA.String():             x509.RSA,
	SignatureAlgorithmSHA1WithRSA.String():     x509.RSA,
	SignatureAlgorithmSHA224WithRSA.String():   x509.RSA,
	SignatureAlgorithmSHA256WithRSA.String():   x509.RSA,
	SignatureAlgorithmSHA384WithRSA.String():   x509.RSA,
	SignatureAlgorithmSHA512WithRSA.String():   x509.RSA,
	SignatureAlgorithmECDSA.String():           x509.ECDSA,
	SignatureAlgorithmECDSAWithSHA1.String():   x509.ECDSA,
	SignatureAlgorithmECDSAWithSHA224.String(): x509.ECDSA,
	SignatureAlgorithmECDSAWithSHA256.String(): x509.ECDSA,
	SignatureAlgorithmECDSAWithSHA384.String(): x509.ECDSA,
	SignatureAlgorithmECDSAWithSHA512.String(): x509.ECDSA,
}

// PublicKeyAlgorithmToSignatureAlgorithm maps certificate public key
// algorithms to the signatureAlgorithm OIDs we emit.
var PublicKeyAlgorithmToSignatureAlgorithm = map[x509.PublicKeyAlgorithm]asn1.ObjectIdentifier{
	x509.RSA:   SignatureAlgorithmRSA,
	x509.ECDSA: SignatureAlgorithmECDSA,
}
