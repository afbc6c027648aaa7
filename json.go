package nobsign

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SignJSON encodes v as base64url JSON and signs it.
func SignJSON(s *Signer, v any) (string, error) {
	payload, err := encodePayload(v)
	if err != nil {
		return "", err
	}
	return s.Sign(payload), nil
}

// UnsignJSON verifies the token and decodes its JSON payload into T.
// Payloads that verify but do not decode yield ErrBadData.
func UnsignJSON[T any](s *Signer, token string) (T, error) {
	var v T
	payload, err := s.Unsign(token)
	if err != nil {
		return v, err
	}
	return decodePayload[T](payload)
}

// SignTimedJSON is SignJSON for a TimestampSigner.
func SignTimedJSON(s *TimestampSigner, v any) (string, error) {
	payload, err := encodePayload(v)
	if err != nil {
		return "", err
	}
	return s.Sign(payload), nil
}

// UnsignTimedJSON is UnsignJSON for a TimestampSigner, rejecting tokens older
// than maxAge seconds.
func UnsignTimedJSON[T any](s *TimestampSigner, token string, maxAge uint32) (T, error) {
	var v T
	payload, err := s.Unsign(token, maxAge)
	if err != nil {
		return v, err
	}
	return decodePayload[T](payload)
}

func encodePayload(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return base64Encode(data), nil
}

func decodePayload[T any](payload string) (T, error) {
	var v T
	data, err := base64Decode(payload)
	if err != nil {
		return v, errors.Join(ErrBadData, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrBadData, err)
	}
	return v, nil
}
