// Package id generates and validates prefixed Base62 identifiers such as
// "itm_4fK2pQ9xLm1Z".
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the length of the random part of generated IDs
	DefaultLength = 12
)

// Entity prefixes
const (
	PrefixMenuItem = "itm"
	PrefixCategory = "cat"
	PrefixLocation = "loc"
	PrefixAudit    = "aud"
	PrefixTenant   = "tnt"
)

// Generate returns a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	base := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateWithPrefix returns "prefix_random".
func GenerateWithPrefix(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// ParsePrefixedID splits an ID into its prefix and random part.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	prefix, shortID, ok := strings.Cut(prefixedID, "_")
	if !ok || prefix == "" || shortID == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %q", prefixedID)
	}
	return prefix, shortID, nil
}

// ValidatePrefix checks that prefixedID is well formed and carries expectedPrefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, shortID, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	for i := 0; i < len(shortID); i++ {
		if strings.IndexByte(alphabet, shortID[i]) < 0 {
			return fmt.Errorf("invalid character %q in %s id", shortID[i], expectedPrefix)
		}
	}
	return nil
}

// FilterValid keeps the well-formed IDs with the given prefix, dropping
// duplicates and preserving first-seen order.
func FilterValid(ids []string, prefix string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		s := strings.TrimSpace(raw)
		if ValidatePrefix(s, prefix) != nil {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func NewMenuItemID() (string, error) { return GenerateWithPrefix(PrefixMenuItem) }
func NewAuditID() (string, error)    { return GenerateWithPrefix(PrefixAudit) }
