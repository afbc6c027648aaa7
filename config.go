package nobsign

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config provides environment-based configuration for signers.
type Config struct {
	Secret        string `env:"NOBSIGN_SECRET,required"`
	Salt          string `env:"NOBSIGN_SALT" envDefault:"nobi.Signer"`
	Digest        string `env:"NOBSIGN_DIGEST" envDefault:"sha1"`
	KeyDerivation string `env:"NOBSIGN_KEY_DERIVATION" envDefault:"hmac"`
	MaxAge        uint32 `env:"NOBSIGN_MAX_AGE" envDefault:"86400"` // 1 day
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Secret == "" {
		return Config{}, ErrSecretNotSet
	}
	return cfg, nil
}

// Options translates the configuration into signer options.
// Empty fields keep the defaults.
func (c Config) Options() ([]Option, error) {
	opts := make([]Option, 0, 3)

	if c.Salt != "" {
		opts = append(opts, WithSalt(c.Salt))
	}
	if c.Digest != "" {
		digest, err := digestByName(c.Digest)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDigest(digest))
	}
	if c.KeyDerivation != "" {
		kd := KeyDerivation(strings.ToLower(c.KeyDerivation))
		switch kd {
		case DeriveHMAC, DeriveConcat, DeriveDjangoConcat:
			opts = append(opts, WithKeyDerivation(kd))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKeyDerivation, c.KeyDerivation)
		}
	}
	return opts, nil
}

// NewSignerFromConfig creates a Signer from configuration.
// Options passed explicitly override the configured ones.
func NewSignerFromConfig(cfg Config, opts ...Option) (*Signer, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretNotSet
	}
	configOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return NewSigner([]byte(cfg.Secret), append(configOpts, opts...)...), nil
}

// NewTimestampSignerFromConfig creates a TimestampSigner from configuration.
// Options passed explicitly override the configured ones.
func NewTimestampSignerFromConfig(cfg Config, opts ...Option) (*TimestampSigner, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretNotSet
	}
	configOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return NewTimestampSigner([]byte(cfg.Secret), append(configOpts, opts...)...), nil
}

func digestByName(name string) (func() hash.Hash, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDigest, name)
	}
}
