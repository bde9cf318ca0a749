// Package objectkey generates blob store keys for uploaded attachments.
package objectkey

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator defines the interface for object key generation strategies.
type Generator interface {
	// GenerateKey creates an object key for a file uploaded into folder.
	GenerateKey(folder, fileName string) string
}

// RandomPrefixGenerator produces keys of the form
// {folder}/{prefix}_{filename} where prefix is random hex. The prefix
// keeps repeated uploads of the same filename from colliding.
type RandomPrefixGenerator struct {
	// PrefixLength controls how many hex characters to use (default: 16)
	PrefixLength int
}

func NewRandomPrefixGenerator() *RandomPrefixGenerator {
	return &RandomPrefixGenerator{
		PrefixLength: 16,
	}
}

func (g *RandomPrefixGenerator) GenerateKey(folder, fileName string) string {
	prefix := strings.ReplaceAll(uuid.New().String(), "-", "")
	if g.PrefixLength > 0 && g.PrefixLength < len(prefix) {
		prefix = prefix[:g.PrefixLength]
	}

	name := sanitizeFilename(fileName)
	if name == "" {
		name = "file"
	}

	folder = sanitizePathComponent(folder)
	if folder == "" {
		folder = "uploads"
	}

	return fmt.Sprintf("%s/%s_%s", folder, prefix, name)
}

// CustomFuncGenerator allows callers to provide their own key generation function.
type CustomFuncGenerator struct {
	GenerateFunc func(folder, fileName string) string
}

func NewCustomFuncGenerator(fn func(folder, fileName string) string) *CustomFuncGenerator {
	return &CustomFuncGenerator{
		GenerateFunc: fn,
	}
}

func (g *CustomFuncGenerator) GenerateKey(folder, fileName string) string {
	return g.GenerateFunc(folder, fileName)
}

// Helper functions for path sanitization
func sanitizeFilename(filename string) string {
	// Replace problematic characters for filesystem compatibility
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	return replacer.Replace(filename)
}

func sanitizePathComponent(component string) string {
	// Similar to filename but lowercased for stable folder names
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
		".", "_",
	)
	return strings.ToLower(replacer.Replace(component))
}
