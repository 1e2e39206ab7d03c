package vault_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/internal/vault"
)

type samplePayload struct {
	Name   string   `json:"name"`
	Counts []int    `json:"counts"`
	Tags   []string `json:"tags"`
}

func sample() samplePayload {
	return samplePayload{
		Name:   "export",
		Counts: []int{1, 2, 3},
		Tags:   []string{"a", "b"},
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	blob, err := vault.Encrypt(sample(), "correct horse")
	require.NoError(t, err)

	require.NotEmpty(t, blob.Ciphertext)
	require.Len(t, blob.Salt, 16)
	require.Len(t, blob.Nonce, 12)

	var got samplePayload
	require.NoError(t, vault.DecryptInto(blob, "correct horse", &got))
	assert.Equal(t, sample(), got)
}

func TestDecryptWrongPassword(t *testing.T) {
	blob, err := vault.Encrypt(sample(), "pw1")
	require.NoError(t, err)

	_, err = vault.Decrypt(blob, "pw2")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDecryption), "got %v", err)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	blob, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)

	for _, idx := range []int{0, len(blob.Ciphertext) / 2, len(blob.Ciphertext) - 1} {
		tampered := &vault.Blob{
			Ciphertext: append([]byte(nil), blob.Ciphertext...),
			Salt:       blob.Salt,
			Nonce:      blob.Nonce,
		}
		tampered.Ciphertext[idx] ^= 0x01

		_, err := vault.Decrypt(tampered, "pw")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeDecryption),
			"flipped byte %d: got %v", idx, err)
	}
}

func TestDecryptTamperedSaltAndNonce(t *testing.T) {
	blob, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)

	tamperedSalt := &vault.Blob{Ciphertext: blob.Ciphertext, Salt: append([]byte(nil), blob.Salt...), Nonce: blob.Nonce}
	tamperedSalt.Salt[0] ^= 0x01
	_, err = vault.Decrypt(tamperedSalt, "pw")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDecryption))

	tamperedNonce := &vault.Blob{Ciphertext: blob.Ciphertext, Salt: blob.Salt, Nonce: append([]byte(nil), blob.Nonce...)}
	tamperedNonce.Nonce[0] ^= 0x01
	_, err = vault.Decrypt(tamperedNonce, "pw")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDecryption))
}

func TestSaltAndNonceAreFreshPerCall(t *testing.T) {
	first, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)
	second, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Nonce, second.Nonce)
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestEmptyPasswordRejected(t *testing.T) {
	_, err := vault.Encrypt(sample(), "")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	blob, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)
	_, err = vault.Decrypt(blob, "")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestParseBlob(t *testing.T) {
	blob, err := vault.Encrypt(sample(), "pw")
	require.NoError(t, err)

	data, err := json.Marshal(blob)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		parsed, err := vault.ParseBlob(data)
		require.NoError(t, err)

		var got samplePayload
		require.NoError(t, vault.DecryptInto(parsed, "pw", &got))
		assert.Equal(t, sample(), got)
	})

	t.Run("missing fields are rejected before decryption", func(t *testing.T) {
		for _, field := range []string{"ciphertext", "salt", "nonce"} {
			var m map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &m))
			delete(m, field)
			partial, err := json.Marshal(m)
			require.NoError(t, err)

			_, err = vault.ParseBlob(partial)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeFormat),
				"missing %s: got %v", field, err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := vault.ParseBlob([]byte("not a blob"))
		assert.True(t, apperrors.IsCode(err, apperrors.CodeFormat))
	})
}
