// Package password implements password generation and strength scoring.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// dashedChars is the pool for DASHED groups before optional uppercasing.
	dashedChars = lowercaseChars + numberChars

	dashedGroups    = 3
	dashedGroupSize = 3

	minWords = 3

	MinLength = 1
	MaxLength = 128
)

// Mode selects the generation algorithm.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeMemorable Mode = "memorable"
	ModeDashed    Mode = "dashed"
)

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrLengthTooLong = errors.New("password length must be at most 128")
	ErrUnknownMode   = errors.New("unknown password mode")
)

// ParseMode maps a user-supplied mode name to a Mode. The empty string is RANDOM.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRandom:
		return ModeRandom, nil
	case ModeMemorable:
		return ModeMemorable, nil
	case ModeDashed:
		return ModeDashed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Config configures a single generation call.
type Config struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
	Mode      Mode
}

// DefaultConfig returns the home screen defaults: 16 random characters with all classes enabled.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
		Mode:      ModeRandom,
	}
}

// WordCount reports how many words a MEMORABLE password built from c contains.
func (c Config) WordCount() int {
	return max(minWords, c.Length/5)
}

// Validate checks the length bounds and mode.
func (c Config) Validate() error {
	if c.Length < MinLength {
		return ErrInvalidLength
	}
	if c.Length > MaxLength {
		return ErrLengthTooLong
	}
	switch c.Mode {
	case "", ModeRandom, ModeMemorable, ModeDashed:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
}

// Generator draws passwords from a random source.
// A Generator holds no mutable state and is safe for concurrent use
// as long as its source is.
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading randomness from src.
// A nil src selects crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password from cfg using crypto/rand.
func Generate(cfg Config) (string, error) {
	return defaultGenerator.Generate(cfg)
}

// Generate creates a password according to cfg.Mode.
func (g *Generator) Generate(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	switch cfg.Mode {
	case ModeMemorable:
		return g.memorable(cfg)
	case ModeDashed:
		return g.dashed(cfg)
	default:
		return g.random(cfg)
	}
}

// Alphabet returns the RANDOM mode character pool for cfg.
func Alphabet(cfg Config) string {
	var pool strings.Builder
	if cfg.Lowercase {
		pool.WriteString(lowercaseChars)
	}
	if cfg.Uppercase {
		pool.WriteString(uppercaseChars)
	}
	if cfg.Numbers {
		pool.WriteString(numberChars)
	}
	if cfg.Symbols {
		pool.WriteString(symbolChars)
	}
	if pool.Len() == 0 {
		return lowercaseChars
	}
	return pool.String()
}

func (g *Generator) random(cfg Config) (string, error) {
	pool := Alphabet(cfg)

	result := make([]byte, cfg.Length)
	for i := range result {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

func (g *Generator) memorable(cfg Config) (string, error) {
	sep := "-"
	if cfg.Numbers {
		d, err := g.randChar(numberChars)
		if err != nil {
			return "", err
		}
		sep = string(d)
	}

	count := cfg.WordCount()
	words := make([]string, count)
	for i := range words {
		n, err := g.randInt(len(wordList))
		if err != nil {
			return "", err
		}
		w := wordList[n]
		if cfg.Uppercase {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		words[i] = w
	}

	out := strings.Join(words, sep)
	if cfg.Symbols {
		out += "!"
	}
	return out, nil
}

func (g *Generator) dashed(cfg Config) (string, error) {
	groups := make([]string, dashedGroups)
	for i := range groups {
		group := make([]byte, dashedGroupSize)
		for j := range group {
			ch, err := g.randChar(dashedChars)
			if err != nil {
				return "", err
			}
			if cfg.Uppercase {
				flip, err := g.randInt(2)
				if err != nil {
					return "", err
				}
				if flip == 1 && ch >= 'a' && ch <= 'z' {
					ch -= 'a' - 'A'
				}
			}
			group[j] = ch
		}
		groups[i] = string(group)
	}
	return strings.Join(groups, "-"), nil
}

// randChar picks a uniformly random byte from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randInt returns a uniform int in [0, n).
func (g *Generator) randInt(n int) (int, error) {
	v, err := rand.Int(g.src, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
