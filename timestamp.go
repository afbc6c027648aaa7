package nobsign

import (
	"fmt"
	"time"
)

// TimestampSigner works like the regular Signer but also records the time
// of the signing and can be used to expire signatures.
//
// Timestamps are 32-bit seconds since Epoch and wrap around in 2079.
type TimestampSigner struct {
	signer *Signer
	now    func() time.Time
}

// NewTimestampSigner creates a TimestampSigner whose key is derived from secret.
func NewTimestampSigner(secret []byte, opts ...Option) *TimestampSigner {
	o := newOptions(opts)
	return &TimestampSigner{
		signer: newSigner(secret, o),
		now:    o.now,
	}
}

// Sign the given string, embedding the current time.
func (s *TimestampSigner) Sign(value string) string {
	ts := encodeTimestamp(timestampAt(s.now()))
	return s.signer.Sign(value + string(Separator) + ts)
}

// Unsign verifies the given token and returns its value if it is no older
// than maxAge seconds. A token of age exactly maxAge is accepted. Timestamps
// ahead of the local clock are accepted as well.
func (s *TimestampSigner) Unsign(token string, maxAge uint32) (string, error) {
	value, ts, err := s.unsign(token)
	if err != nil {
		return "", err
	}

	if age := int64(timestampAt(s.now())) - int64(ts); age > int64(maxAge) {
		return "", fmt.Errorf("%w: age %d > %d seconds", ErrSignatureExpired, age, maxAge)
	}
	return value, nil
}

// Timestamp verifies the given token and returns the time it was signed at,
// without checking its age.
func (s *TimestampSigner) Timestamp(token string) (time.Time, error) {
	_, ts, err := s.unsign(token)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(Epoch+int64(ts), 0).UTC(), nil
}

func (s *TimestampSigner) unsign(token string) (string, int32, error) {
	result, err := s.signer.Unsign(token)
	if err != nil {
		return "", 0, err
	}

	// A valid signature without a timestamp means the token came from a plain Signer.
	value, encoded, ok := rsplit(result)
	if !ok {
		return "", 0, ErrBadTimeSignature
	}

	ts, err := decodeTimestamp(encoded)
	if err != nil {
		return "", 0, ErrBadTimeSignature
	}
	return value, ts, nil
}
