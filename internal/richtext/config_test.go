package richtext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	for kind, want := range map[Kind]string{
		KindHeading1:             "h1",
		KindHeading6:             "h6",
		KindParagraph:            "p",
		KindPreformatted:         "pre",
		KindListItem:             "li",
		KindOrderedListItem:      "li",
		KindGroupListItem:        "ul",
		KindGroupOrderedListItem: "ol",
		KindStrong:               "strong",
		KindEmphasis:             "em",
	} {
		tag, ok := cfg.Tag(kind)
		assert.True(t, ok, kind)
		assert.Equal(t, want, tag, kind)
	}

	for _, kind := range []Kind{KindImage, KindEmbed, KindHyperlink, KindLabel, "unknown"} {
		_, ok := cfg.Tag(kind)
		assert.False(t, ok, kind)
	}

	assert.Equal(t, "block-img", cfg.ImageClass())
	assert.Equal(t, "<!-- Warning: x not implemented. Upgrade the Developer Kit. -->", cfg.FallbackComment("x"))
	assert.Same(t, cfg, DefaultConfig())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Same(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rendering.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tags:
  strong: b
  callout: aside
image_class: figure
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	tag, _ := cfg.Tag(KindStrong)
	assert.Equal(t, "b", tag)
	tag, _ = cfg.Tag("callout")
	assert.Equal(t, "aside", tag)
	tag, _ = cfg.Tag(KindParagraph)
	assert.Equal(t, "p", tag, "untouched defaults are kept")
	assert.Equal(t, "figure", cfg.ImageClass())

	def, _ := DefaultConfig().Tag(KindStrong)
	assert.Equal(t, "strong", def, "defaults are not modified")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		problems int
	}{
		{
			name:     "bespoke kind",
			yaml:     "tags:\n  image: img\n",
			problems: 1,
		},
		{
			name:     "bad tag name",
			yaml:     "tags:\n  paragraph: \"p onclick=x\"\n",
			problems: 1,
		},
		{
			name:     "fallback without verb",
			yaml:     "fallback_comment: unsupported\n",
			problems: 1,
		},
		{
			name:     "fallback with extra verb",
			yaml:     "fallback_comment: \"%s at %d\"\n",
			problems: 1,
		},
		{
			name:     "fallback closing the comment",
			yaml:     "fallback_comment: \"%s -->\"\n",
			problems: 1,
		},
		{
			name:     "everything at once",
			yaml:     "tags:\n  hyperlink: a\n  em: \"<i>\"\nimage_class: '\"x'\nfallback_comment: \"--\"\n",
			problems: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Len(t, multierr.Errors(errors.Unwrap(err)), tt.problems)
		})
	}
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("tags: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}
