package app

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/ini.v1"

	"pkarith/internal/dh"
	"pkarith/internal/primality"
	"pkarith/internal/rsa"
)

// DefaultPrimeBits is the prime size used when [primality] bits is unset.
const DefaultPrimeBits = 256

// ErrInvalidConfig wraps every validation failure from LoadConfig.
var ErrInvalidConfig = errors.New("invalid config")

const (
	secPrimality = "primality"
	secPrimRoot  = "primroot"
	secDH        = "dh"
	secRSA       = "rsa"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Primality PrimalityConfig
	PrimRoot  PrimRootConfig
	DH        DHConfig
	RSA       RSAConfig

	// Rand is the randomness source; nil means crypto/rand.
	Rand io.Reader `ini:"-"`
}

type PrimalityConfig struct {
	// Bits is the default size of `prime gen`.
	Bits        int `ini:"bits"`
	Rounds      int `ini:"rounds"`
	MaxAttempts int `ini:"max_attempts"`
}

type PrimRootConfig struct {
	// TrialBound caps trial division of p-1; 0 means unbounded.
	TrialBound uint64 `ini:"trial_bound"`
}

type DHConfig struct {
	Bits        int `ini:"bits"`
	MaxAttempts int `ini:"max_attempts"`
}

type RSAConfig struct {
	Bits        int   `ini:"bits"`
	Exponent    int64 `ini:"exponent"`
	CheckPrimes bool  `ini:"check_primes"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Primality: PrimalityConfig{
			Bits:        DefaultPrimeBits,
			Rounds:      primality.DefaultRounds,
			MaxAttempts: primality.DefaultMaxAttempts,
		},
		PrimRoot: PrimRootConfig{TrialBound: dh.DefaultTrialBound},
		DH: DHConfig{
			Bits:        dh.DefaultBits,
			MaxAttempts: dh.DefaultMaxAttempts,
		},
		RSA: RSAConfig{
			Bits:     512,
			Exponent: rsa.DefaultExponent,
		},
	}
}

// LoadConfig overlays the ini file at path onto DefaultConfig. Missing
// sections and keys keep their defaults; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	for name, dst := range cfg.sections() {
		sec, err := f.GetSection(name)
		if err != nil {
			continue
		}
		if err := sec.MapTo(dst); err != nil {
			return Config{}, fmt.Errorf("section [%s]: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Primality.Bits < 2:
		return fmt.Errorf("%w: primality.bits must be at least 2", ErrInvalidConfig)
	case c.Primality.Rounds < 1:
		return fmt.Errorf("%w: primality.rounds must be positive", ErrInvalidConfig)
	case c.Primality.MaxAttempts < 1:
		return fmt.Errorf("%w: primality.max_attempts must be positive", ErrInvalidConfig)
	case c.DH.Bits < 2:
		return fmt.Errorf("%w: dh.bits must be at least 2", ErrInvalidConfig)
	case c.DH.MaxAttempts < 1:
		return fmt.Errorf("%w: dh.max_attempts must be positive", ErrInvalidConfig)
	case c.RSA.Bits < 8:
		return fmt.Errorf("%w: rsa.bits must be at least 8", ErrInvalidConfig)
	case c.RSA.Exponent < 1:
		return fmt.Errorf("%w: rsa.exponent must be positive", ErrInvalidConfig)
	}
	return nil
}

// WriteConfig renders c as an ini file.
func WriteConfig(w io.Writer, c Config) error {
	f := ini.Empty()
	for _, name := range []string{secPrimality, secPrimRoot, secDH, secRSA} {
		sec, err := f.NewSection(name)
		if err != nil {
			return err
		}
		if err := sec.ReflectFrom(c.sections()[name]); err != nil {
			return fmt.Errorf("section [%s]: %w", name, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func (c *Config) sections() map[string]interface{} {
	return map[string]interface{}{
		secPrimality: &c.Primality,
		secPrimRoot:  &c.PrimRoot,
		secDH:        &c.DH,
		secRSA:       &c.RSA,
	}
}
