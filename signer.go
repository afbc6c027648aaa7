package nobsign

import (
	"crypto/hmac"
	"hash"
)

// Signer can sign a string, and unsign it while validating the signature
// provided.
//
// The salt namespaces the signing key, so that a signed string is only valid
// for a given purpose. Re-using a salt across different parts of an
// application where the same signed value can mean something different is a
// security risk.
//
// A Signer is immutable and safe for concurrent use.
type Signer struct {
	key       []byte
	algorithm SigningAlgorithm
}

// NewSigner creates a Signer whose key is derived from secret.
// The secret itself is not retained.
func NewSigner(secret []byte, opts ...Option) *Signer {
	return newSigner(secret, newOptions(opts))
}

func newSigner(secret []byte, o options) *Signer {
	return &Signer{
		key:       deriveKey(secret, o.salt, o.derivation, o.digest),
		algorithm: o.algorithm,
	}
}

// deriveKey generates the signing key. Keep in mind that the derivation is
// not intended to make a complex key out of a short password; use large random
// secrets instead.
func deriveKey(secret []byte, salt string, kd KeyDerivation, digest func() hash.Hash) []byte {
	switch kd {
	case DeriveConcat:
		h := digest()
		h.Write([]byte(salt))
		h.Write(secret)
		return h.Sum(nil)
	case DeriveDjangoConcat:
		h := digest()
		h.Write([]byte(salt + "signer"))
		h.Write(secret)
		return h.Sum(nil)
	default:
		h := hmac.New(digest, secret)
		h.Write([]byte(salt))
		return h.Sum(nil)
	}
}

// Signature returns the encoded signature for the given value.
func (s *Signer) Signature(value string) string {
	return base64Encode(s.algorithm.Signature(s.key, []byte(value)))
}

// Sign the given string.
func (s *Signer) Sign(value string) string {
	return value + string(Separator) + s.Signature(value)
}

// Unsign verifies the signature of the given token and returns the value it
// carries. The value may itself contain the separator; only the last segment
// is taken as the signature.
func (s *Signer) Unsign(token string) (string, error) {
	value, encoded, ok := rsplit(token)
	if !ok {
		return "", ErrBadSignature
	}

	sig, err := base64Decode(encoded)
	if err != nil {
		return "", ErrBadSignature
	}
	if !s.algorithm.Verify(s.key, []byte(value), sig) {
		return "", ErrBadSignature
	}
	return value, nil
}
