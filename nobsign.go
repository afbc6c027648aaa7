/*
Package nobsign implements signing of values that travel through untrusted
channels, such as activation links, password reset URLs or cookies.

A Signer appends an HMAC signature to a value; a TimestampSigner also embeds
the signing time so tokens can be rejected once they are too old. The value is
not encrypted, only authenticated.

The token format is compatible with nobi, the Ruby port of
https://github.com/mitsuhiko/itsdangerous:

	signer := nobsign.NewSigner([]byte("my secret"))
	token := signer.Sign("101") // "101.<signature>"

	value, err := signer.Unsign(token)
	if errors.Is(err, nobsign.ErrBadSignature) {
		// tampered or signed with another key
	}

	ts := nobsign.NewTimestampSigner([]byte("my secret"))
	token = ts.Sign("101")
	value, err = ts.Unsign(token, 86400) // one day
*/
package nobsign

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// 2011/01/01 in UTC
const Epoch = 1293840000

// Separator joins the value, timestamp and signature of a token.
// It is not part of the URL-safe base64 alphabet.
const Separator = '.'

// DefaultSalt is the purpose string the signing key is derived with.
const DefaultSalt = "nobi.Signer"

const timestampSize = 4

var encoding = base64.RawURLEncoding.Strict()

var errInvalidEncoding = errors.New("invalid base64 input")

// Encodes a single byte slice. The resulting string is safe for putting into URLs.
func base64Encode(src []byte) string {
	return encoding.EncodeToString(src)
}

// Decodes a single string. The standard decoder skips line breaks, which would
// let distinct strings decode to the same bytes, so they are rejected here.
func base64Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, errInvalidEncoding
	}
	return encoding.DecodeString(s)
}

// Returns the seconds elapsed between Epoch and t, truncated to 32 bits.
func timestampAt(t time.Time) int32 {
	return int32(t.Unix() - Epoch)
}

func encodeTimestamp(ts int32) string {
	var buf [timestampSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(ts))
	return base64Encode(buf[:])
}

func decodeTimestamp(s string) (int32, error) {
	b, err := base64Decode(s)
	if err != nil {
		return 0, err
	}
	if len(b) != timestampSize {
		return 0, errInvalidEncoding
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// rsplit splits s around the last separator.
func rsplit(s string) (head, tail string, ok bool) {
	i := strings.LastIndexByte(s, Separator)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
