package pkcs7

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"encoding/asn1"
	"strings"

	"github.com/github/pkcs7/oid"

	// Register the digests the default table offers.
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/sha3"
)

// Cipher describes a CBC mode content encryption algorithm.
type Cipher struct {
	// Name is the lower case OpenSSL style name, e.g. "aes-256-cbc".
	Name string

	// OID identifies the algorithm in a ContentEncryptionAlgorithmIdentifier.
	OID asn1.ObjectIdentifier

	// KeySize is the key length in bytes.
	KeySize int

	// BlockSize is the cipher block and IV length in bytes.
	BlockSize int

	// New creates the block cipher for a key.
	New func(key []byte) (cipher.Block, error)
}

// Digest describes a message digest algorithm.
type Digest struct {
	Name  string
	Hash  crypto.Hash
	OID   asn1.ObjectIdentifier
	MIC   string // micalg name for multipart/signed
	Alias []string
}

// Algorithms is the lookup table of ciphers and digests an Engine may use.
// It is built explicitly and handed to New; nothing registers itself
// globally.
type Algorithms struct {
	ciphers []*Cipher
	digests []*Digest
}

// DefaultAlgorithms returns a table with AES-128/192/256-CBC, DES-EDE3-CBC and
// the SHA-1, SHA-2 and SHA-3 digests.
func DefaultAlgorithms() *Algorithms {
	a := new(Algorithms)

	a.AddCipher(&Cipher{Name: "aes-256-cbc", OID: oid.EncryptionAlgorithmAES256CBC, KeySize: 32, BlockSize: aes.BlockSize, New: aes.NewCipher})
	a.AddCipher(&Cipher{Name: "aes-192-cbc", OID: oid.EncryptionAlgorithmAES192CBC, KeySize: 24, BlockSize: aes.BlockSize, New: aes.NewCipher})
	a.AddCipher(&Cipher{Name: "aes-128-cbc", OID: oid.EncryptionAlgorithmAES128CBC, KeySize: 16, BlockSize: aes.BlockSize, New: aes.NewCipher})
	a.AddCipher(&Cipher{Name: "des-ede3-cbc", OID: oid.EncryptionAlgorithmDESEDE3CBC, KeySize: 24, BlockSize: des.BlockSize, New: des.NewTripleDESCipher})

	a.AddDigest(&Digest{Name: "sha256", Hash: crypto.SHA256, OID: oid.DigestAlgorithmSHA256, MIC: "sha-256", Alias: []string{"sha-256"}})
	a.AddDigest(&Digest{Name: "sha384", Hash: crypto.SHA384, OID: oid.DigestAlgorithmSHA384, MIC: "sha-384", Alias: []string{"sha-384"}})
	a.AddDigest(&Digest{Name: "sha512", Hash: crypto.SHA512, OID: oid.DigestAlgorithmSHA512, MIC: "sha-512", Alias: []string{"sha-512"}})
	a.AddDigest(&Digest{Name: "sha224", Hash: crypto.SHA224, OID: oid.DigestAlgorithmSHA224, MIC: "sha-224", Alias: []string{"sha-224"}})
	a.AddDigest(&Digest{Name: "sha1", Hash: crypto.SHA1, OID: oid.DigestAlgorithmSHA1, MIC: "sha-1", Alias: []string{"sha-1"}})
	a.AddDigest(&Digest{Name: "sha3-256", Hash: crypto.SHA3_256, OID: oid.DigestAlgorithmSHA3_256, MIC: "sha3-256"})
	a.AddDigest(&Digest{Name: "sha3-384", Hash: crypto.SHA3_384, OID: oid.DigestAlgorithmSHA3_384, MIC: "sha3-384"})
	a.AddDigest(&Digest{Name: "sha3-512", Hash: crypto.SHA3_512, OID: oid.DigestAlgorithmSHA3_512, MIC: "sha3-512"})

	return a
}

// AddCipher adds or replaces a cipher. Ciphers are advertised in
// SMIMECapabilities in the order they were added.
func (a *Algorithms) AddCipher(c *Cipher) {
	for i, existing := range a.ciphers {
		if existing.Name == c.Name {
			a.ciphers[i] = c
			return
		}
	}

	a.ciphers = append(a.ciphers, c)
}

// AddDigest adds or replaces a digest.
func (a *Algorithms) AddDigest(d *Digest) {
	for i, existing := range a.digests {
		if existing.Hash == d.Hash {
			a.digests[i] = d
			return
		}
	}

	a.digests = append(a.digests, d)
}

// clone copies the table. The entries themselves are shared and never
// modified.
func (a *Algorithms) clone() *Algorithms {
	return &Algorithms{
		ciphers: append([]*Cipher(nil), a.ciphers...),
		digests: append([]*Digest(nil), a.digests...),
	}
}

// Ciphers lists the cipher names in preference order.
func (a *Algorithms) Ciphers() []string {
	names := make([]string, 0, len(a.ciphers))
	for _, c := range a.ciphers {
		names = append(names, c.Name)
	}

	return names
}

// CipherByName looks up a cipher by its case insensitive name. "des3" is
// accepted for des-ede3-cbc as in OpenSSL.
func (a *Algorithms) CipherByName(name string) (*Cipher, bool) {
	name = strings.ToLower(name)
	if name == "des3" {
		name = "des-ede3-cbc"
	}

	for _, c := range a.ciphers {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// CipherByOID looks up a cipher by its algorithm identifier.
func (a *Algorithms) CipherByOID(id asn1.ObjectIdentifier) (*Cipher, bool) {
	for _, c := range a.ciphers {
		if c.OID.Equal(id) {
			return c, true
		}
	}

	return nil, false
}

// DigestByName looks up a digest by its case insensitive name.
func (a *Algorithms) DigestByName(name string) (*Digest, bool) {
	name = strings.ToLower(name)
	for _, d := range a.digests {
		if d.Name == name {
			return d, true
		}
		for _, alias := range d.Alias {
			if alias == name {
				return d, true
			}
		}
	}

	return nil, false
}

// DigestByHash looks up a digest by its crypto.Hash.
func (a *Algorithms) DigestByHash(h crypto.Hash) (*Digest, bool) {
	for _, d := range a.digests {
		if d.Hash == h {
			return d, true
		}
	}

	return nil, false
}

// DigestByOID looks up a digest by its algorithm identifier.
func (a *Algorithms) DigestByOID(id asn1.ObjectIdentifier) (*Digest, bool) {
	for _, d := range a.digests {
		if d.OID.Equal(id) {
			return d, true
		}
	}

	return nil, false
}

// SMIMECapability ::= SEQUENCE {
//   capabilityID OBJECT IDENTIFIER,
//   parameters ANY DEFINED BY capabilityID OPTIONAL }
type smimeCapability struct {
	CapabilityID asn1.ObjectIdentifier
	Parameters   asn1.RawValue `asn1:"optional"`
}

// smimeCapabilities lists the ciphers for the SMIMECapabilities attribute.
func (a *Algorithms) smimeCapabilities() []smimeCapability {
	caps := make([]smimeCapability, 0, len(a.ciphers))
	for _, c := range a.ciphers {
		caps = append(caps, smimeCapability{CapabilityID: c.OID})
	}

	return caps
}
