package nobsign

import (
	"crypto/sha1"
	"hash"
	"time"
)

// KeyDerivation names the way the signing key is derived from the secret.
type KeyDerivation string

const (
	// DeriveHMAC signs the salt with the secret. This is the default.
	DeriveHMAC KeyDerivation = "hmac"
	// DeriveConcat hashes salt + secret.
	DeriveConcat KeyDerivation = "concat"
	// DeriveDjangoConcat hashes salt + "signer" + secret.
	DeriveDjangoConcat KeyDerivation = "django-concat"
)

type options struct {
	salt       string
	derivation KeyDerivation
	digest     func() hash.Hash
	algorithm  SigningAlgorithm
	now        func() time.Time
}

// Option configures a Signer or a TimestampSigner.
type Option func(*options)

// WithSalt sets the purpose string the signing key is derived with.
// Signers with different salts produce tokens that do not verify against
// each other, even when they share a secret.
func WithSalt(salt string) Option {
	return func(o *options) {
		o.salt = salt
	}
}

// WithDigest sets the hash used for key derivation and for the default HMAC.
// Tokens signed with a different digest do not verify.
func WithDigest(digest func() hash.Hash) Option {
	return func(o *options) {
		if digest != nil {
			o.digest = digest
		}
	}
}

// WithKeyDerivation sets the key derivation method.
// Unknown methods fall back to DeriveHMAC.
func WithKeyDerivation(kd KeyDerivation) Option {
	return func(o *options) {
		o.derivation = kd
	}
}

// WithAlgorithm replaces the HMAC signing algorithm.
func WithAlgorithm(algo SigningAlgorithm) Option {
	return func(o *options) {
		o.algorithm = algo
	}
}

// WithClock sets the time source used by TimestampSigner.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		salt:       DefaultSalt,
		derivation: DeriveHMAC,
		digest:     sha1.New,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.algorithm == nil {
		o.algorithm = HMACAlgorithm{DigestMethod: o.digest}
	}
	return o
}
