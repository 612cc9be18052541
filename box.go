package cryptobox

import (
	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/salsa20/salsa"

	"github.com/cryptobox/cryptobox-go/internal/xsalsa20poly1305"
)

// Box is a public-key authenticated encryption session combining X25519
// Diffie-Hellman key agreement with the XSalsa20-Poly1305 AEAD cipher.
//
// A Box is constructed once from one party's secret key and the peer's
// public key, derives its symmetric session key at that point, and is
// immutable afterwards: it can seal and open any number of messages and is
// safe for concurrent use, as long as callers never reuse a nonce and never
// share a mutable buffer between concurrent calls.
type Box struct {
	aead *xsalsa20poly1305.Cipher
}

// NewBox performs X25519 key agreement between the peer's public key and
// our secret key, then whitens the raw shared secret into a uniformly
// distributed session key with HSalsa20 over a constant zero input.
//
// The construction is symmetric: NewBox(bobPublic, aliceSecret) and
// NewBox(alicePublic, bobSecret) derive bit-identical session keys, so
// either side can seal messages the other opens.
func NewBox(peer *PublicKey, secret *SecretKey) *Box {
	var shared x25519.Key
	// A low-order peer point yields an all-zero shared value. NaCl accepts
	// such keys, so the ok result is deliberately ignored.
	x25519.Shared(&shared, &secret.k, &peer.k)

	// Raw DH output is not uniformly distributed over 256-bit strings;
	// HSalsa20 with a zero input whitens it. The zero input is a constant,
	// distinct from the per-message nonce.
	var key [KeySize]byte
	var zero [16]byte
	salsa.HSalsa20(&key, &zero, (*[32]byte)(&shared), &salsa.Sigma)

	b := &Box{aead: xsalsa20poly1305.New(&key)}
	for i := range key {
		key[i] = 0
	}
	for i := range shared {
		shared[i] = 0
	}
	return b
}

func parseNonce(nonce []byte) (*[NonceSize]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}
	return (*[NonceSize]byte)(nonce), nil
}

// Encrypt seals plaintext under the given nonce, authenticating but not
// encrypting aad, and returns the ciphertext with the 16-byte tag appended.
// The result is always len(plaintext)+Overhead bytes. A nil aad is
// equivalent to an empty one; both are authenticated as an empty sequence.
func (b *Box) Encrypt(nonce, plaintext, aad []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext)+TagSize)
	b.aead.Seal(out, n, plaintext, aad)
	return out, nil
}

// Decrypt verifies the trailing tag of ciphertext against the ciphertext
// bytes and aad, and only if verification succeeds decrypts and returns the
// plaintext. On any failure it returns ErrOperationFailed and no plaintext
// bytes, not even partially decrypted ones.
func (b *Box) Decrypt(nonce, ciphertext, aad []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, ErrOperationFailed
	}
	plaintext := make([]byte, len(ciphertext)-TagSize)
	if err := b.aead.Open(plaintext, n, ciphertext, aad); err != nil {
		return nil, ErrOperationFailed
	}
	return plaintext, nil
}

// EncryptInPlace seals the contents of buf in place, appending the 16-byte
// tag: the buffer grows by exactly Overhead bytes. If the buffer cannot
// grow, ErrOperationFailed is returned and the buffer is unchanged.
func (b *Box) EncryptInPlace(nonce, aad []byte, buf Buffer) error {
	n, err := parseNonce(nonce)
	if err != nil {
		return err
	}
	pLen := len(buf.Bytes())
	var tag [TagSize]byte
	if err := buf.Append(tag[:]); err != nil {
		return ErrOperationFailed
	}
	msg := buf.Bytes()
	b.aead.SealDetached(msg[:pLen], &tag, n, aad)
	copy(msg[pLen:], tag[:])
	return nil
}

// DecryptInPlace verifies the tag at the end of buf and, on success,
// decrypts the remaining bytes in place and truncates the buffer by
// Overhead. On failure it returns ErrOperationFailed and the buffer keeps
// its (still encrypted) contents; no plaintext is ever exposed.
func (b *Box) DecryptInPlace(nonce, aad []byte, buf Buffer) error {
	n, err := parseNonce(nonce)
	if err != nil {
		return err
	}
	msg := buf.Bytes()
	if len(msg) < TagSize {
		return ErrOperationFailed
	}
	ctLen := len(msg) - TagSize
	var tag [TagSize]byte
	copy(tag[:], msg[ctLen:])
	if err := b.aead.OpenDetached(msg[:ctLen], &tag, n, aad); err != nil {
		return ErrOperationFailed
	}
	buf.Truncate(ctLen)
	return nil
}

// EncryptDetached seals buf in place at its existing length, overwriting
// plaintext with ciphertext, and returns the 16-byte tag separately.
func (b *Box) EncryptDetached(nonce, aad, buf []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	var tag [TagSize]byte
	b.aead.SealDetached(buf, &tag, n, aad)
	out := make([]byte, TagSize)
	copy(out, tag[:])
	return out, nil
}

// DecryptDetached verifies the externally supplied tag against buf and aad
// and, on success, decrypts buf in place at the same length. On failure it
// returns ErrOperationFailed and buf is left unmodified.
func (b *Box) DecryptDetached(nonce, aad, buf, tag []byte) error {
	n, err := parseNonce(nonce)
	if err != nil {
		return err
	}
	if len(tag) != TagSize {
		return ErrInvalidTagSize
	}
	var t [TagSize]byte
	copy(t[:], tag)
	if err := b.aead.OpenDetached(buf, &t, n, aad); err != nil {
		return ErrOperationFailed
	}
	return nil
}
