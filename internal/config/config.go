// Package config resolves process configuration: the document encryption
// key and logging options. Values come from the environment, with an
// optional .env file consulted first.
package config

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/argon2"

	"ahbsales/internal/container"
	"ahbsales/internal/core/apperror"
)

// Environment variables.
const (
	// EnvKeyHex holds the document key as 64 hex characters.
	EnvKeyHex = "AHB_KEY_HEX"

	// EnvPassphrase derives the document key with argon2id when EnvKeyHex
	// is not set.
	EnvPassphrase = "AHB_PASSPHRASE"

	EnvLogLevel = "AHB_LOG_LEVEL"
)

// argon2id parameters for passphrase-derived keys.
const (
	kdfTime    = 3
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

// The salt is fixed: the same passphrase must yield the same document key
// on every machine that opens the file.
var kdfSalt = []byte("ahbsales.document.key.v1")

// Config holds resolved process configuration.
type Config struct {
	Key      container.Key
	LogLevel string
}

// Options control non-production relaxations.
type Options struct {
	// AllowInsecureZeroKey permits running without a key source, falling
	// back to the all-zero key. Test use only; production callers must
	// treat a missing key as fatal.
	AllowInsecureZeroKey bool
}

// Load reads configuration from the environment, consulting .env first.
func Load(opts Options) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{LogLevel: envOr(EnvLogLevel, "info")}

	keyHex := strings.TrimSpace(os.Getenv(EnvKeyHex))
	passphrase := os.Getenv(EnvPassphrase)
	switch {
	case keyHex != "":
		key, err := ParseKeyHex(keyHex)
		if err != nil {
			return nil, err
		}
		cfg.Key = key
	case passphrase != "":
		cfg.Key = DeriveKey(passphrase)
	case opts.AllowInsecureZeroKey:
		// all-zero key
	default:
		return nil, apperror.NewValidation(
			EnvKeyHex + " is required and must be a 64-hex-character string for AES-256-GCM")
	}
	return cfg, nil
}

// ParseKeyHex parses a 64-hex-character document key.
func ParseKeyHex(s string) (container.Key, error) {
	var key container.Key
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(raw) != len(key) {
		return key, apperror.NewValidation(EnvKeyHex + " must be a 64-hex-character string")
	}
	copy(key[:], raw)
	return key, nil
}

// DeriveKey derives a 256-bit document key from a passphrase with argon2id.
func DeriveKey(passphrase string) container.Key {
	var key container.Key
	copy(key[:], argon2.IDKey([]byte(passphrase), kdfSalt, kdfTime, kdfMemory, kdfThreads, uint32(len(key))))
	return key
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
