// Package cryptobox implements public-key authenticated encryption in the
// style of NaCl's crypto_box: an Elliptic Curve Integrated Encryption
// Scheme combining X25519 Diffie-Hellman key agreement with the
// XSalsa20-Poly1305 AEAD cipher.
//
// Two parties each hold a long-term key pair and exchange public keys out
// of band. From its own secret key and the peer's public key, each side
// constructs a Box; both sides derive the identical symmetric session key,
// so either can seal messages the other opens. A Box is reusable for any
// number of messages — only the nonce must be unique per message.
//
// Basic usage:
//
//	// Alice generates a key pair and shares the public half with Bob.
//	aliceSecret, err := cryptobox.GenerateSecretKey(rand.Reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer aliceSecret.Wipe()
//
//	// Alice builds a box toward Bob's public key.
//	aliceBox := cryptobox.NewBox(bobPublic, aliceSecret)
//
//	// Every message needs a fresh random nonce.
//	nonce, err := cryptobox.GenerateNonce(rand.Reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := aliceBox.Encrypt(nonce, []byte("Top secret message we're encrypting"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Bob builds the reciprocal box and opens the message.
//	bobBox := cryptobox.NewBox(alicePublic, bobSecret)
//	plaintext, err := bobBox.Decrypt(nonce, ciphertext, nil)
//
// # Security Model
//
// The scheme provides:
//
//   - Confidentiality: only the two key holders can read sealed messages.
//   - Authenticity: a message that opens under the box provably came from
//     the holder of the other key pair.
//   - Integrity: any modification of ciphertext, tag, or associated data
//     causes decryption to fail without releasing any plaintext.
//
// Associated data passed to the encrypt and decrypt operations is
// authenticated but not encrypted; both sides must supply the same bytes.
//
// # Critical Security Notes
//
// Nonces MUST be unique for every message sealed under the same Box. Reuse
// breaks confidentiality and integrity for both affected messages. Use
// [GenerateNonce] with crypto/rand.Reader; the library does not track
// uniqueness.
//
// Decryption failures are reported as the single opaque
// [ErrOperationFailed]. The library does not reveal whether the tag, the
// associated data, or the buffer was at fault, since such detail can serve
// as a decryption oracle.
//
// Secret keys should be wiped when no longer needed:
//
//	sk, err := cryptobox.GenerateSecretKey(rand.Reader)
//	if err != nil {
//	    return err
//	}
//	defer sk.Wipe()
//
// # In-place and Detached Operation
//
// Besides the whole-buffer [Box.Encrypt] and [Box.Decrypt], the Box offers
// allocation-free variants: [Box.EncryptInPlace] and [Box.DecryptInPlace]
// work through the [Buffer] capability ([SliceBuffer] and [FixedBuffer] are
// provided), and [Box.EncryptDetached] and [Box.DecryptDetached] transform
// a fixed-size buffer in place while carrying the 16-byte tag separately.
package cryptobox
