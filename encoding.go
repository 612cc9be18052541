package cryptobox

import "encoding/base64"

// EncodeKey encodes key material (or any fixed-size value such as a nonce
// or tag) as URL-safe base64 without padding, the form used when exchanging
// public keys out of band.
func EncodeKey(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeKey decodes URL-safe base64 without padding back to raw bytes.
func DecodeKey(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
