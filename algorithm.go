package nobsign

import (
	"crypto/hmac"
	"crypto/subtle"
	"hash"
)

// SigningAlgorithm provides interfaces to generate and verify signature
type SigningAlgorithm interface {
	Signature(key, value []byte) []byte
	Verify(key, value, sig []byte) bool
}

// HMACAlgorithm provides signature generation using HMACs.
// A new hash is created on every call, so the value is safe for concurrent use.
type HMACAlgorithm struct {
	DigestMethod func() hash.Hash
}

// Signature returns the signature for the given key and value.
func (a HMACAlgorithm) Signature(key, value []byte) []byte {
	h := hmac.New(a.DigestMethod, key)
	h.Write(value)
	return h.Sum(nil)
}

// Verify reports whether sig is the signature of value, in constant time.
func (a HMACAlgorithm) Verify(key, value, sig []byte) bool {
	return subtle.ConstantTimeCompare(sig, a.Signature(key, value)) == 1
}
