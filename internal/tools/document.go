package tools

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dastrobu/structured-text-mcp/internal/md"
	"github.com/dastrobu/structured-text-mcp/internal/richtext"
)

// ErrEmptyContent is returned when a tool is called without content.
var ErrEmptyContent = errors.New("content is required")

// LoadDocument turns tool content into structured text. Blocks of JSON
// content that fail to decode are skipped and logged; the call only fails
// when nothing could be decoded.
func LoadDocument(content string, format *string, log *zap.Logger) (richtext.StructuredText, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	contentFormat, err := ValidateAndNormalizeContentFormat(format)
	if err != nil {
		return nil, err
	}

	switch contentFormat {
	case ContentFormatMarkdown:
		blocks, err := md.ToBlocks([]byte(content))
		if err != nil {
			return nil, err
		}
		return blocks, nil
	default:
		doc, err := richtext.DecodeString(content)
		if err != nil && len(doc) == 0 {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		for _, e := range multierr.Errors(err) {
			log.Warn("Skipping block that could not be decoded", zap.Error(e))
		}
		return doc, nil
	}
}
