// Package xsalsa20poly1305 implements the XSalsa20-Poly1305 authenticated
// cipher with associated-data support.
//
// The construction follows the extended-nonce pattern: the 192-bit nonce is
// split, HSalsa20 derives a subkey from its first 16 bytes, and the remaining
// 8 bytes seed the Salsa20 block counter. The first keystream block supplies
// the one-time Poly1305 key; plaintext encryption starts at block one. The
// tag is computed over the associated data and the ciphertext, each
// zero-padded to a 16-byte boundary, followed by their lengths as 64-bit
// little-endian integers. Authenticating the lengths means empty associated
// data is still bound into the tag and cannot be silently stripped.
//
// Decryption verifies the tag before any plaintext is produced.
package xsalsa20poly1305

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/poly1305"
	"golang.org/x/crypto/salsa20/salsa"
)

const (
	// KeySize is the size of the symmetric key in bytes.
	KeySize = 32
	// NonceSize is the size of the extended nonce in bytes.
	NonceSize = 24
	// TagSize is the size of the Poly1305 authentication tag in bytes.
	TagSize = 16
)

// ErrAuthFailed is returned when tag verification fails during Open.
var ErrAuthFailed = errors.New("message authentication failed")

// Cipher is an XSalsa20-Poly1305 instance bound to one 256-bit key.
// It is stateless across calls and safe for concurrent use.
type Cipher struct {
	key [KeySize]byte
}

// New returns a Cipher keyed with the given 256-bit key.
func New(key *[KeySize]byte) *Cipher {
	c := &Cipher{}
	c.key = *key
	return c
}

// setup derives the per-message Salsa20 subkey, the initial block counter,
// and the one-time Poly1305 key for the given nonce. The returned counter
// is positioned at block one, where plaintext encryption begins.
func (c *Cipher) setup(nonce *[NonceSize]byte) (subKey [32]byte, counter [16]byte, macKey [32]byte) {
	var hNonce [16]byte
	copy(hNonce[:], nonce[:16])
	salsa.HSalsa20(&subKey, &hNonce, &c.key, &salsa.Sigma)

	copy(counter[:8], nonce[16:])

	// Block zero of the keystream keys the MAC; the rest of the block is
	// discarded.
	var block0 [64]byte
	salsa.XORKeyStream(block0[:], block0[:], &counter, &subKey)
	copy(macKey[:], block0[:32])

	counter[8] = 1
	return
}

// tag computes the Poly1305 tag over the associated data and ciphertext.
func tag(macKey *[32]byte, ciphertext, aad []byte) [TagSize]byte {
	mac := poly1305.New(macKey)
	writePadded(mac, aad)
	writePadded(mac, ciphertext)

	var lengths [16]byte
	binary.LittleEndian.PutUint64(lengths[:8], uint64(len(aad)))
	binary.LittleEndian.PutUint64(lengths[8:], uint64(len(ciphertext)))
	mac.Write(lengths[:])

	var out [TagSize]byte
	mac.Sum(out[:0])
	return out
}

func writePadded(mac *poly1305.MAC, p []byte) {
	mac.Write(p)
	if rem := len(p) % 16; rem != 0 {
		var pad [16]byte
		mac.Write(pad[:16-rem])
	}
}

// SealDetached encrypts buf in place and writes the authentication tag to
// tagOut. The buffer keeps its length; the tag is returned out of band.
func (c *Cipher) SealDetached(buf []byte, tagOut *[TagSize]byte, nonce *[NonceSize]byte, aad []byte) {
	subKey, counter, macKey := c.setup(nonce)
	salsa.XORKeyStream(buf, buf, &counter, &subKey)
	*tagOut = tag(&macKey, buf, aad)
}

// OpenDetached verifies expectedTag against the ciphertext in buf and, only
// if it matches, decrypts buf in place. On failure buf is left unmodified.
func (c *Cipher) OpenDetached(buf []byte, expectedTag *[TagSize]byte, nonce *[NonceSize]byte, aad []byte) error {
	subKey, counter, macKey := c.setup(nonce)
	computed := tag(&macKey, buf, aad)
	if subtle.ConstantTimeCompare(computed[:], expectedTag[:]) != 1 {
		return ErrAuthFailed
	}
	salsa.XORKeyStream(buf, buf, &counter, &subKey)
	return nil
}

// Seal encrypts plaintext and writes ciphertext followed by the tag into
// dst, which must be exactly len(plaintext)+TagSize bytes. dst and
// plaintext must not overlap.
func (c *Cipher) Seal(dst []byte, nonce *[NonceSize]byte, plaintext, aad []byte) {
	if len(dst) != len(plaintext)+TagSize {
		panic("xsalsa20poly1305: invalid seal destination size")
	}
	copy(dst, plaintext)
	var t [TagSize]byte
	c.SealDetached(dst[:len(plaintext)], &t, nonce, aad)
	copy(dst[len(plaintext):], t[:])
}

// Open verifies the trailing tag of ciphertext and, on success, writes the
// decrypted plaintext into dst, which must be exactly
// len(ciphertext)-TagSize bytes. dst is not written to unless the tag
// verified. dst and ciphertext must not overlap.
func (c *Cipher) Open(dst []byte, nonce *[NonceSize]byte, ciphertext, aad []byte) error {
	if len(ciphertext) < TagSize {
		return ErrAuthFailed
	}
	msgLen := len(ciphertext) - TagSize
	if len(dst) != msgLen {
		panic("xsalsa20poly1305: invalid open destination size")
	}

	subKey, counter, macKey := c.setup(nonce)
	computed := tag(&macKey, ciphertext[:msgLen], aad)
	if subtle.ConstantTimeCompare(computed[:], ciphertext[msgLen:]) != 1 {
		return ErrAuthFailed
	}
	salsa.XORKeyStream(dst, ciphertext[:msgLen], &counter, &subKey)
	return nil
}
