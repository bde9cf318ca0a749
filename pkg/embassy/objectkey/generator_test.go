package objectkey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/objectkey"
)

func TestRandomPrefixGenerator(t *testing.T) {
	g := objectkey.NewRandomPrefixGenerator()

	key := g.GenerateKey("news", "photo of the event.jpg")

	parts := strings.SplitN(key, "/", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "news", parts[0])
	assert.True(t, strings.HasSuffix(parts[1], "_photo_of_the_event.jpg"))

	prefix := strings.SplitN(parts[1], "_", 2)[0]
	assert.Len(t, prefix, 16)
}

func TestGenerateKeyUniquePrefixes(t *testing.T) {
	g := objectkey.NewRandomPrefixGenerator()

	k1 := g.GenerateKey("forms", "application.pdf")
	k2 := g.GenerateKey("forms", "application.pdf")
	assert.NotEqual(t, k1, k2)
}

func TestGenerateKeySanitizesInput(t *testing.T) {
	g := objectkey.NewRandomPrefixGenerator()

	key := g.GenerateKey("../News Items", `bad\file:name?.pdf`)

	assert.False(t, strings.Contains(key, "\\"))
	assert.False(t, strings.Contains(key, ":"))
	assert.False(t, strings.Contains(key, "?"))
	assert.False(t, strings.Contains(key, " "))
	// Folder traversal characters collapse into the folder name
	assert.False(t, strings.HasPrefix(key, ".."))
}

func TestGenerateKeyDefaults(t *testing.T) {
	g := objectkey.NewRandomPrefixGenerator()

	key := g.GenerateKey("", "")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "_file"))
}

func TestCustomFuncGenerator(t *testing.T) {
	g := objectkey.NewCustomFuncGenerator(func(folder, fileName string) string {
		return folder + "/fixed_" + fileName
	})

	assert.Equal(t, "docs/fixed_a.pdf", g.GenerateKey("docs", "a.pdf"))
}
