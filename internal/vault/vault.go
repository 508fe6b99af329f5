// Package vault implements latchkey's encrypted credential store: a single
// file holding an AES-256-GCM sealed JSON mapping of account names to
// secrets, unlocked by a key derived from the master passphrase.
//
// Exactly one process is assumed to own the store file at a time. There is
// no file locking; two processes saving concurrently can lose one's changes.
package vault

import (
	"fmt"
	"sort"

	"github.com/tobrecht/latchkey/internal/logging"
	"github.com/tobrecht/latchkey/internal/security"
)

// Vault is a live session over the store: it owns the derived key and the
// in-memory credential mapping from Open until Close. Every mutating call
// saves the whole blob synchronously before returning.
type Vault struct {
	path      string
	key       security.Secret
	salt      []byte
	params    Params
	passwords map[string]string

	// legacy marks a store opened from the headerless zero-nonce format.
	// The next save rewrites it in the current format.
	legacy bool
}

// Open unlocks the store at path with the master passphrase. A missing
// file yields an empty vault with a fresh salt (first run). A wrong
// passphrase and a tampered file both surface as ErrAuthFailed; the two
// cases are indistinguishable and deliberately reported the same way.
func Open(path, passphrase string, params Params) (*Vault, error) {
	v := &Vault{
		path:      path,
		params:    params,
		passwords: make(map[string]string),
	}

	data, exists, err := readStore(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := v.rekey([]byte(passphrase)); err != nil {
			return nil, err
		}
		return v, nil
	}

	hdr, ciphertext, err := parseBlob(data)
	if err != nil {
		return nil, err
	}
	if hdr == nil {
		return v.openLegacy(passphrase, ciphertext)
	}

	v.params = Params{Time: hdr.time, Memory: hdr.memory, Threads: hdr.threads}
	v.salt = hdr.salt
	key := deriveKey([]byte(passphrase), hdr.salt, v.params)

	plaintext, err := open(key, hdr.nonce, ciphertext)
	if err != nil {
		return nil, err
	}
	passwords, err := decodePayload(plaintext)
	if err != nil {
		logging.Warnf("store %s decrypted but did not decode: %v", path, err)
		return nil, err
	}

	v.key = security.FromBytes(key)
	v.passwords = passwords
	return v, nil
}

// openLegacy reads a headerless blob: zero nonce, unsalted SHA-256 key.
// The session immediately switches to a freshly salted argon2id key so the
// next save upgrades the file in place.
func (v *Vault) openLegacy(passphrase string, ciphertext []byte) (*Vault, error) {
	plaintext, err := open(legacyKey([]byte(passphrase)), legacyNonce, ciphertext)
	if err != nil {
		return nil, err
	}
	passwords, err := decodePayload(plaintext)
	if err != nil {
		logging.Warnf("legacy store %s decrypted but did not decode: %v", v.path, err)
		return nil, err
	}

	if err := v.rekey([]byte(passphrase)); err != nil {
		return nil, err
	}
	v.passwords = passwords
	v.legacy = true
	logging.Infof("opened legacy store %s; next save rewrites it in the current format", v.path)
	return v, nil
}

// rekey derives a fresh key for the session: new salt, current params.
func (v *Vault) rekey(passphrase []byte) error {
	salt, err := generateSalt()
	if err != nil {
		return err
	}
	v.salt = salt
	v.key = security.FromBytes(deriveKey(passphrase, salt, v.params))
	return nil
}

// save serializes the mapping, seals it under the session key with a fresh
// nonce, and atomically replaces the store file.
func (v *Vault) save() error {
	plaintext, err := encodePayload(v.passwords)
	if err != nil {
		return err
	}
	nonce, err := generateNonce()
	if err != nil {
		return err
	}

	var blob []byte
	err = v.key.Use(func(key []byte) error {
		sealed, err := seal(key, nonce, plaintext)
		if err != nil {
			return err
		}
		blob = append(encodeHeader(header{
			time:    v.params.Time,
			memory:  v.params.Memory,
			threads: v.params.Threads,
			salt:    v.salt,
			nonce:   nonce,
		}), sealed...)
		return nil
	})
	if err != nil {
		return err
	}

	if err := writeStore(v.path, blob); err != nil {
		return err
	}
	if v.legacy {
		v.legacy = false
		logging.Infof("store %s upgraded to the versioned format", v.path)
	}
	return nil
}

// Set inserts or overwrites the secret for account and saves. Empty
// account names and secrets are accepted as-is.
func (v *Vault) Set(account, secret string) error {
	v.passwords[account] = secret
	return v.save()
}

// Get returns the stored secret for account. No mutation, no save.
func (v *Vault) Get(account string) (string, error) {
	secret, ok := v.passwords[account]
	if !ok {
		return "", fmt.Errorf("%q: %w", account, ErrNotFound)
	}
	return secret, nil
}

// Delete removes account from the store and saves.
func (v *Vault) Delete(account string) error {
	if _, ok := v.passwords[account]; !ok {
		return fmt.Errorf("%q: %w", account, ErrNotFound)
	}
	delete(v.passwords, account)
	return v.save()
}

// List returns all account names, sorted.
func (v *Vault) List() []string {
	accounts := make([]string, 0, len(v.passwords))
	for account := range v.passwords {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// Len reports the number of stored credentials.
func (v *Vault) Len() int {
	return len(v.passwords)
}

// Rotate re-encrypts the store under a new passphrase with a fresh salt
// and nonce. The session continues under the old key if the save fails.
func (v *Vault) Rotate(newPassphrase string) error {
	prevKey, prevSalt, prevParams := v.key, v.salt, v.params

	v.params = DefaultParams
	if err := v.rekey([]byte(newPassphrase)); err != nil {
		v.key, v.salt, v.params = prevKey, prevSalt, prevParams
		return err
	}
	if err := v.save(); err != nil {
		v.key, v.salt, v.params = prevKey, prevSalt, prevParams
		return err
	}

	prevKey.Zero()
	return nil
}

// Close wipes the session key. The vault must not be used afterwards.
func (v *Vault) Close() {
	v.key.Zero()
}

// Mask returns a display-safe version of a secret.
func Mask(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
