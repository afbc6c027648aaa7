package nobsign

import "errors"

var (
	// ErrBadSignature indicates a token without separator, with an
	// undecodable signature or with a signature that does not match.
	ErrBadSignature = errors.New("bad signature")

	// ErrBadTimeSignature indicates a correctly signed token whose timestamp
	// is missing or malformed.
	ErrBadTimeSignature = errors.New("bad time signature")

	// ErrSignatureExpired indicates a valid token older than the allowed age.
	ErrSignatureExpired = errors.New("signature expired")

	// ErrBadData indicates a valid token whose payload could not be decoded.
	ErrBadData = errors.New("bad data")
)

// Configuration errors.
var (
	ErrParsingConfig        = errors.New("failed to parse signer config")
	ErrSecretNotSet         = errors.New("signing secret is not set")
	ErrUnknownDigest        = errors.New("unknown digest method")
	ErrUnknownKeyDerivation = errors.New("unknown key derivation method")
)
