package pkcs7

// Flags modify Sign, Verify, Encrypt and EncodeSMIME. Each operation ignores
// the flags that don't apply to it.
type Flags uint

const (
	// Text adds a text/plain MIME header before signing or encrypting, with
	// line endings canonicalized to CRLF. Verify strips and checks that
	// header before writing the output.
	Text Flags = 1 << iota

	// NoCerts leaves the signer certificate out of the SignedData.
	NoCerts

	// Detached omits the content from the SignedData.
	Detached

	// NoAttributes signs the content directly without authenticated
	// attributes.
	NoAttributes

	// NoSmimeCap leaves out the SMIMECapabilities attribute.
	NoSmimeCap

	// NoSignatureCheck skips verifying a freshly created signature.
	NoSignatureCheck

	// NoVerify skips validating signer certificates against the trust store.
	NoVerify

	// NoSigs skips checking the signatures themselves.
	NoSigs

	// NoIntern ignores certificates embedded in the message when locating
	// signers. Only VerifyOptions.ExtraCerts are searched.
	NoIntern

	// NoChain doesn't use embedded certificates as untrusted intermediates.
	NoChain

	// Binary signs the content byte for byte. Without it Sign converts line
	// endings to CRLF, the canonical form S/MIME transmits.
	Binary
)

// Has reports whether every flag in o is set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}
