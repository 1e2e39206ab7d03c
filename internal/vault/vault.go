// Package vault provides password-based authenticated encryption for export
// bundles: PBKDF2-derived keys and AES-256-GCM.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"

	"golang.org/x/crypto/pbkdf2"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
)

const (
	// kdfIterations is deliberately high to resist offline guessing.
	kdfIterations = 100_000
	keyLen        = 32 // AES-256
	saltLen       = 16
	nonceLen      = 12 // standard GCM nonce size
)

// Blob is the transportable encrypted payload. Salt and nonce are not secret
// and must travel with the ciphertext; both are fresh random values on every
// Encrypt call.
type Blob struct {
	Ciphertext []byte `json:"ciphertext"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
}

// ParseBlob decodes a serialized blob, rejecting records missing any of the
// three fields before any decryption work happens.
func ParseBlob(data []byte) (*Blob, error) {
	var raw struct {
		Ciphertext *[]byte `json:"ciphertext"`
		Salt       *[]byte `json:"salt"`
		Nonce      *[]byte `json:"nonce"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Format("export file is not valid JSON")
	}
	if raw.Ciphertext == nil || raw.Salt == nil || raw.Nonce == nil {
		return nil, apperrors.Format("export file is missing ciphertext, salt or nonce")
	}
	return &Blob{
		Ciphertext: *raw.Ciphertext,
		Salt:       *raw.Salt,
		Nonce:      *raw.Nonce,
	}, nil
}

// Encrypt serializes the payload and encrypts it under a key derived from the
// password and a fresh random salt.
func Encrypt(payload any, password string) (*Blob, error) {
	if password == "" {
		return nil, apperrors.Validation("password is required")
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Internal("failed to serialize payload", err)
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, apperrors.Internal("failed to generate salt", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperrors.Internal("failed to generate nonce", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	return &Blob{
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
		Salt:       salt,
		Nonce:      nonce,
	}, nil
}

// Decrypt re-derives the key from the password and the blob's salt and
// attempts authenticated decryption. A wrong password and tampered ciphertext
// fail identically.
func Decrypt(blob *Blob, password string) ([]byte, error) {
	if password == "" {
		return nil, apperrors.Validation("password is required")
	}
	if len(blob.Nonce) != nonceLen {
		return nil, apperrors.Decryption()
	}

	aead, err := newAEAD(password, blob.Salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, blob.Nonce, blob.Ciphertext, nil)
	if err != nil {
		// Do not leak whether the password or the data was at fault.
		return nil, apperrors.Decryption()
	}
	return plaintext, nil
}

// DecryptInto decrypts the blob and deserializes the plaintext into v.
func DecryptInto(blob *Blob, password string, v any) error {
	plaintext, err := Decrypt(blob, password)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return apperrors.Format("decrypted payload does not match the expected shape")
	}
	return nil
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, kdfIterations, keyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.Internal("failed to initialize cipher", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperrors.Internal("failed to initialize GCM", err)
	}
	return aead, nil
}
