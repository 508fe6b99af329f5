package vault

import "errors"

var (
	// ErrNotFound reports a lookup of an account the store does not hold.
	ErrNotFound = errors.New("account not found")

	// ErrAuthFailed reports a blob that fails authentication. A wrong
	// passphrase and a tampered file are indistinguishable here, and the
	// message keeps it that way.
	ErrAuthFailed = errors.New("cannot decrypt store: wrong passphrase or corrupted store")

	// ErrCorrupt reports plaintext that decrypted cleanly but does not
	// decode as a credential payload.
	ErrCorrupt = errors.New("store payload is corrupt")
)
