package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// publicIDAlphabet avoids characters that need escaping in URLs or read
// ambiguously in logs.
const publicIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewPublicID generates a URL-safe public identifier for sessions and
// exported artifacts.
func NewPublicID() (string, error) {
	return gonanoid.Generate(publicIDAlphabet, 21)
}
