// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"cromptch/config"
	"cromptch/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const (
	defaultArgon2Memory      = 19 * 1024 // KiB
	defaultArgon2Iterations  = 2
	defaultArgon2Parallelism = 1

	saltLength = 16
	keyLength  = 32

	variantArgon2id = "argon2id"
	variantArgon2i  = "argon2i"
)

// argon2Hasher hashes passwords with argon2id and encodes them as PHC strings:
// $argon2id$v=19$m=<KiB>,t=<iterations>,p=<parallelism>$<salt>$<hash>
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memory:      defaultArgon2Memory,
		iterations:  defaultArgon2Iterations,
		parallelism: defaultArgon2Parallelism,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2.Memory > 0 {
			h.memory = cfg.Auth.Argon2.Memory
		}
		if cfg.Auth.Argon2.Iterations > 0 {
			h.iterations = cfg.Auth.Argon2.Iterations
		}
		if cfg.Auth.Argon2.Parallelism > 0 {
			h.parallelism = cfg.Auth.Argon2.Parallelism
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using argon2id.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		variantArgon2id,
		argon2.Version,
		h.memory, h.iterations, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check compares a plaintext password with an encoded argon2id or argon2i hash.
// The parameters stored in the hash are used, not the hasher's own.
func (h *argon2Hasher) Check(password, encoded string) bool {
	params, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	var key []byte
	switch params.variant {
	case variantArgon2id:
		key = argon2.IDKey([]byte(password), params.salt, params.iterations, params.memory, params.parallelism, uint32(len(params.key)))
	case variantArgon2i:
		key = argon2.Key([]byte(password), params.salt, params.iterations, params.memory, params.parallelism, uint32(len(params.key)))
	default:
		return false
	}

	return subtle.ConstantTimeCompare(key, params.key) == 1
}

type hashParams struct {
	variant     string
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func decodeHash(encoded string) (*hashParams, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, errors.New("malformed hash")
	}

	params := &hashParams{variant: parts[1]}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, errors.Wrap(err, "malformed version")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return nil, errors.Wrap(err, "malformed parameters")
	}
	if params.iterations == 0 || params.parallelism == 0 {
		return nil, errors.New("invalid cost parameters")
	}

	var err error
	if params.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, errors.Wrap(err, "malformed salt")
	}
	if params.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, errors.Wrap(err, "malformed key")
	}
	if len(params.key) == 0 {
		return nil, errors.New("empty key")
	}

	return params, nil
}
