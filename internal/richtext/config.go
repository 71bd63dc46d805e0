package richtext

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed config/default_rendering.yaml
var defaultRenderingYAML []byte

// RenderingConfig holds the raw YAML configuration (for parsing only)
type RenderingConfig struct {
	Tags            map[string]string `yaml:"tags"`
	ImageClass      *string           `yaml:"image_class,omitempty"`
	FallbackComment *string           `yaml:"fallback_comment,omitempty"`
}

// PreparedConfig is the rendering table in the form the serializer uses.
// It is never modified after LoadConfig returns and may be shared.
type PreparedConfig struct {
	tags            map[Kind]string
	imageClass      string
	fallbackComment string
}

var tagNameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// keeps a kind coming from upstream data from terminating the comment
var commentEscaper = strings.NewReplacer("--", "- -", "<", "&lt;", ">", "&gt;")

// kinds with bespoke markup, they never go through the tag table
var bespokeKinds = map[Kind]bool{
	KindImage:     true,
	KindEmbed:     true,
	KindHyperlink: true,
	KindLabel:     true,
}

var defaultConfig = sync.OnceValue(func() *PreparedConfig {
	cfg, err := parseConfig(defaultRenderingYAML, nil)
	if err != nil {
		// the embedded file is part of the build
		panic(fmt.Sprintf("invalid embedded rendering config: %v", err))
	}
	return cfg
})

// DefaultConfig returns the rendering table built from the embedded defaults.
func DefaultConfig() *PreparedConfig {
	return defaultConfig()
}

// LoadConfig loads rendering configuration from a file path.
// If path is empty, uses the embedded default configuration. Entries of a
// custom file are merged over the embedded defaults.
func LoadConfig(path string) (*PreparedConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parseConfig(data, DefaultConfig())
}

// ParseConfig parses YAML rendering configuration merged over the defaults.
func ParseConfig(data []byte) (*PreparedConfig, error) {
	return parseConfig(data, DefaultConfig())
}

func parseConfig(data []byte, base *PreparedConfig) (*PreparedConfig, error) {
	var config RenderingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return prepareConfig(&config, base), nil
}

// validateConfig reports every problem of the raw configuration at once
func validateConfig(config *RenderingConfig) error {
	var err error
	for kind, tag := range config.Tags {
		if kind == "" {
			err = multierr.Append(err, fmt.Errorf("tags: empty kind"))
			continue
		}
		if bespokeKinds[Kind(kind)] {
			err = multierr.Append(err, fmt.Errorf("tags.%s: kind has bespoke markup and cannot be mapped to a tag", kind))
		}
		if !tagNameRE.MatchString(tag) {
			err = multierr.Append(err, fmt.Errorf("tags.%s: invalid tag name %q", kind, tag))
		}
	}
	if config.ImageClass != nil && strings.ContainsAny(*config.ImageClass, `"<>`) {
		err = multierr.Append(err, fmt.Errorf("image_class: invalid class %q", *config.ImageClass))
	}
	if config.FallbackComment != nil {
		c := *config.FallbackComment
		if strings.Count(c, "%s") != 1 || strings.Count(c, "%") != 1 {
			err = multierr.Append(err, fmt.Errorf("fallback_comment: expected exactly one %%s verb, got %q", c))
		}
		if strings.Contains(c, "--") {
			err = multierr.Append(err, fmt.Errorf("fallback_comment: must not contain \"--\""))
		}
	}
	return err
}

// prepareConfig merges the raw configuration over base
func prepareConfig(config *RenderingConfig, base *PreparedConfig) *PreparedConfig {
	prepared := &PreparedConfig{tags: make(map[Kind]string)}
	if base != nil {
		for kind, tag := range base.tags {
			prepared.tags[kind] = tag
		}
		prepared.imageClass = base.imageClass
		prepared.fallbackComment = base.fallbackComment
	}

	for kind, tag := range config.Tags {
		prepared.tags[Kind(kind)] = tag
	}
	if config.ImageClass != nil {
		prepared.imageClass = *config.ImageClass
	}
	if config.FallbackComment != nil {
		prepared.fallbackComment = *config.FallbackComment
	}
	return prepared
}

// Tag returns the tag name the default rendering wraps kind in.
func (c *PreparedConfig) Tag(kind Kind) (string, bool) {
	tag, ok := c.tags[kind]
	return tag, ok
}

// ImageClass is the class of the paragraph wrapping image blocks.
func (c *PreparedConfig) ImageClass() string {
	return c.imageClass
}

// FallbackComment renders the marker placed in front of unknown kinds.
func (c *PreparedConfig) FallbackComment(kind Kind) string {
	return "<!-- " + fmt.Sprintf(c.fallbackComment, commentEscaper.Replace(string(kind))) + " -->"
}
