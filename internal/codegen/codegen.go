package codegen

import (
	"context"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the character set of generated codes
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the length of generated codes
	DefaultLength = 6
	// MaxLength is the longest code accepted anywhere in the system
	MaxLength = 32
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)

// Generator produces random fixed-length alphanumeric codes
type Generator struct {
	length int
}

// NewGenerator creates a new Generator; non-positive or oversized lengths fall back to DefaultLength
func NewGenerator(length int) *Generator {
	if length <= 0 || length > MaxLength {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// NewCode returns a fresh candidate code
func (g *Generator) NewCode(_ context.Context) (string, error) {
	return Generate(g.length)
}

// Length returns the configured code length
func (g *Generator) Length() int {
	return g.length
}

// Generate returns a random code of n characters over Alphabet
func Generate(n int) (string, error) {
	return gonanoid.Generate(Alphabet, n)
}

// IsValid checks if s has the shape of a short code
func IsValid(s string) bool {
	return codePattern.MatchString(s)
}
