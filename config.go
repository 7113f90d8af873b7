package bwm

import (
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
)

const (
	DefaultStrength1 = 36

	// SeededStrength2 is the secondary strength used together with a seed by
	// the file helpers and the command line tool.
	SeededStrength2 = 20
)

// RemainderPolicy decides what happens to LL rows and columns that do not
// fill a whole block.
type RemainderPolicy uint8

const (
	// RemainderSkip leaves the remainder untouched and reports it in Layout.
	RemainderSkip RemainderPolicy = iota
	// RemainderReject fails with ErrRemainder.
	RemainderReject
)

func (p RemainderPolicy) String() string {
	switch p {
	case RemainderSkip:
		return "skip"
	case RemainderReject:
		return "reject"
	}
	return "unknown"
}

type Config struct {
	Strength1 int
	// Strength2 quantizes the second singular value when positive.
	Strength2 int
	Mode      Mode
	Remainder RemainderPolicy
	// Workers bounds per-block parallelism, 0 means GOMAXPROCS.
	Workers int
	Logger  *slog.Logger

	// svd overrides the block factorization when set.
	svd svdFunc
}

type Option func(*Config) error

func WithStrength1(s int) Option {
	return func(c *Config) error {
		if s < 1 {
			return errors.Wrapf(ErrInvalidStrength, "strength1=%d", s)
		}
		c.Strength1 = s
		return nil
	}
}

func WithStrength2(s int) Option {
	return func(c *Config) error {
		if s < 1 {
			return errors.Wrapf(ErrInvalidStrength, "strength2=%d", s)
		}
		c.Strength2 = s
		return nil
	}
}

func WithMode(m Mode) Option {
	return func(c *Config) error {
		c.Mode = m
		return nil
	}
}

func WithSeed(seed uint64) Option {
	return WithMode(SeededMode(seed))
}

func WithRemainderPolicy(p RemainderPolicy) Option {
	return func(c *Config) error {
		c.Remainder = p
		return nil
	}
}

func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return errors.Wrapf(ErrInvalidWorkers, "workers=%d", n)
		}
		c.Workers = n
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

func DefaultConfig() *Config {
	return &Config{
		Strength1: DefaultStrength1,
		Mode:      NormalMode(),
		Remainder: RemainderSkip,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks a Config built without NewConfig.
func (c *Config) Validate() error {
	if c.Strength1 < 1 {
		return errors.Wrapf(ErrInvalidStrength, "strength1=%d", c.Strength1)
	}
	if c.Strength2 < 0 {
		return errors.Wrapf(ErrInvalidStrength, "strength2=%d", c.Strength2)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidWorkers, "workers=%d", c.Workers)
	}
	return nil
}

func (c *Config) workers() int {
	if c.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
