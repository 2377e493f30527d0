// Package cryptox implements password hashing for stored accounts.
//
// Hashes are argon2id with a random 16-byte salt, encoded as
//
//	argon2id$<salt hex>$<key hex>
//
// so that a single text column can hold them.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	scheme    = "argon2id"
	saltSize  = 16
	keyLength = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keyLength)
}

// HashPassword returns the encoded argon2id hash of password.
func HashPassword(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	return encode(salt, DeriveKey([]byte(password), salt))
}

// VerifyPassword reports whether password matches encoded. A malformed
// encoded value never matches.
func VerifyPassword(password, encoded string) bool {
	salt, key, err := decode(encoded)
	if err != nil {
		return false
	}
	candidate := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func encode(salt, key []byte) string {
	return scheme + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

func decode(encoded string) (salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != scheme {
		return nil, nil, ErrMalformedHash
	}
	if salt, err = hex.DecodeString(parts[1]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	if key, err = hex.DecodeString(parts[2]); err != nil || len(key) != keyLength {
		return nil, nil, ErrMalformedHash
	}
	return salt, key, nil
}
