// Package pkcs7 implements PKCS7 (RFC 2315) decoding, encoding, signing,
// verification, enveloping and decryption on top of the protocol package.
package pkcs7

import (
	"crypto"
	"crypto/rand"
	"io"
	"time"

	"github.com/github/pkcs7/log"
)

// DefaultCipher is the content encryption algorithm used when Encrypt isn't
// given one.
const DefaultCipher = "aes-256-cbc"

// Engine performs PKCS7 operations. It is immutable once built and safe for
// concurrent use.
type Engine struct {
	algs   *Algorithms
	digest crypto.Hash
	cipher string
	log    log.Logger
	rand   io.Reader
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithDigest sets the digest used for new signatures. Defaults to SHA-256.
// A hash missing from the algorithm table makes Sign fail.
func WithDigest(h crypto.Hash) Option {
	return func(e *Engine) { e.digest = h }
}

// WithCipher sets the default cipher name for Encrypt.
func WithCipher(name string) Option {
	return func(e *Engine) { e.cipher = name }
}

// WithAlgorithms replaces the algorithm table. The engine keeps its own copy,
// so later changes to a don't affect it.
func WithAlgorithms(a *Algorithms) Option {
	return func(e *Engine) {
		if a != nil {
			e.algs = a.clone()
		}
	}
}

// WithLogger sets the logger. Defaults to log.Discard.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRand sets the entropy source for keys, IVs and signatures.
func WithRand(r io.Reader) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// WithClock sets the clock used for the signing-time attribute.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		algs:   DefaultAlgorithms(),
		digest: crypto.SHA256,
		cipher: DefaultCipher,
		log:    log.Discard,
		rand:   rand.Reader,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Algorithms returns a copy of the engine's algorithm table. Changing it
// doesn't affect the engine.
func (e *Engine) Algorithms() *Algorithms {
	return e.algs.clone()
}
