package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const keySize = 32

// Params are the argon2id cost parameters used when deriving a key for a
// new store, a legacy migration, or a passphrase rotation. Existing stores
// keep the parameters recorded in their header.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams follows the argon2 package's recommendation for
// interactive use.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4}

// legacyNonce is the all-zero nonce the headerless format used for every
// seal. It survives only on the read path for old files.
var legacyNonce = make([]byte, nonceSize)

func deriveKey(passphrase, salt []byte, p Params) []byte {
	return argon2.IDKey(passphrase, salt, p.Time, p.Memory, p.Threads, keySize)
}

// legacyKey is the original derivation: a single unsalted SHA-256 pass over
// the passphrase. Deterministic and cheap to brute-force, which is why new
// stores never use it.
func legacyKey(passphrase []byte) []byte {
	sum := sha256.Sum256(passphrase)
	return sum[:]
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}

func seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

func open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < tagSize {
		return nil, fmt.Errorf("sealed blob shorter than auth tag: %w", ErrAuthFailed)
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func generateNonce() ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}
