package auth

import (
	"crypto/rand"
	"encoding/base64"

	"cromptch/internal/domain/service"

	"github.com/pkg/errors"
)

const tokenByteLength = 48

type randomTokenGenerator struct{}

// NewTokenGenerator returns a generator of 48-byte random tokens encoded as unpadded URL-safe base64.
func NewTokenGenerator() service.TokenGenerator {
	return randomTokenGenerator{}
}

func (randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
