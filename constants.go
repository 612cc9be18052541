package cryptobox

const (
	// KeySize is the size of a public or secret key in bytes.
	KeySize = 32

	// NonceSize is the size of a message nonce in bytes.
	NonceSize = 24

	// TagSize is the size of the Poly1305 authentication tag in bytes.
	TagSize = 16

	// Overhead is the number of bytes of ciphertext expansion: the length
	// of a sealed message minus the length of its plaintext.
	Overhead = TagSize
)
