package cryptobox

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
)

// SecretKey is a Curve25519 secret scalar. It is never transmitted; use
// PublicKey to derive the shareable half of the pair.
//
// The key bytes are sensitive. Call Wipe when the key is no longer needed,
// typically with defer:
//
//	sk, err := cryptobox.GenerateSecretKey(rand.Reader)
//	if err != nil {
//	    return err
//	}
//	defer sk.Wipe()
type SecretKey struct {
	k x25519.Key
}

// GenerateSecretKey draws a fresh secret key from the supplied random
// source, which must be cryptographically secure (crypto/rand.Reader in
// production). A failing source is reported to the caller; there are no
// retries.
func GenerateSecretKey(rand io.Reader) (*SecretKey, error) {
	sk := &SecretKey{}
	if _, err := io.ReadFull(rand, sk.k[:]); err != nil {
		return nil, fmt.Errorf("generate secret key: %w", err)
	}
	return sk, nil
}

// SecretKeyFromBytes loads a secret key from its 32-byte serialization.
// Every 32-byte value is a usable key: Curve25519 clamps the scalar
// internally, so no validation beyond the length is performed.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKeySize
	}
	sk := &SecretKey{}
	copy(sk.k[:], b)
	return sk, nil
}

// PublicKey derives the public key for this secret key by multiplying the
// curve base point. Deterministic: the same secret always yields the same
// public key.
func (sk *SecretKey) PublicKey() *PublicKey {
	pk := &PublicKey{}
	x25519.KeyGen(&pk.k, &sk.k)
	return pk
}

// Bytes returns a copy of the raw 32-byte key material. The caller is
// responsible for handling it securely.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, sk.k[:])
	return out
}

// Clone returns an independent copy of the secret key. Wiping one copy does
// not affect the other.
func (sk *SecretKey) Clone() *SecretKey {
	c := *sk
	return &c
}

// Wipe overwrites the backing key bytes with zeros. The key must not be
// used afterwards.
func (sk *SecretKey) Wipe() {
	for i := range sk.k {
		sk.k[i] = 0
	}
}

// String redacts the key material so secrets never leak through formatted
// output or logs.
func (sk *SecretKey) String() string { return "SecretKey(...)" }

// GoString redacts the key material from %#v output.
func (sk *SecretKey) GoString() string { return "SecretKey(...)" }

// PublicKey is a Curve25519 point encoding. It carries no secrecy
// requirement and is exchanged with peers out of band.
type PublicKey struct {
	k x25519.Key
}

// PublicKeyFromBytes loads a public key from its 32-byte encoding. No
// curve-point validity check is performed: all 32-byte values are accepted,
// matching NaCl behavior. Malformed or low-order points degrade to a
// deterministic shared value rather than an error.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKeySize
	}
	pk := &PublicKey{}
	copy(pk.k[:], b)
	return pk, nil
}

// Bytes returns a copy of the raw 32-byte point encoding.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, pk.k[:])
	return out
}

// GenerateNonce draws a fresh 24-byte nonce from the supplied random
// source. Every message encrypted under the same Box MUST use a unique
// nonce; this function performs no uniqueness tracking, but the nonce space
// is large enough that random collisions are cryptographically negligible.
func GenerateNonce(rand io.Reader) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}
