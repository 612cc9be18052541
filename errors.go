package cryptobox

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrOperationFailed is the single opaque failure returned by the
	// encrypt and decrypt operations. It covers both authentication
	// failure and insufficient buffer capacity without distinguishing
	// them: reporting which one occurred can hand an attacker a
	// decryption oracle.
	ErrOperationFailed = errors.New("cryptobox operation failed")

	// ErrInvalidKeySize is returned when key bytes are not exactly KeySize long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not exactly NonceSize long.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when a detached tag is not exactly TagSize long.
	ErrInvalidTagSize = errors.New("invalid tag size")

	// ErrBufferFull is returned by FixedBuffer when an append would exceed
	// its capacity.
	ErrBufferFull = errors.New("buffer capacity exceeded")
)
