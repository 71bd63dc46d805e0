package typed_flags

import (
	"github.com/jessevdk/go-flags"

	"github.com/dastrobu/structured-text-mcp/internal/tools"
)

// ContentFormat selects how the content of a tool command is read.
type ContentFormat string

const (
	ContentFormatJSON     ContentFormat = tools.ContentFormatJSON
	ContentFormatMarkdown ContentFormat = tools.ContentFormatMarkdown
)

var ContentFormatValues = []ContentFormat{
	ContentFormatJSON,
	ContentFormatMarkdown,
}

var (
	_ flags.Completer   = (*ContentFormat)(nil)
	_ flags.Unmarshaler = (*ContentFormat)(nil)
)

func (f *ContentFormat) Complete(match string) []flags.Completion {
	return completeChoices(ContentFormatValues, match)
}

// UnmarshalFlag accepts the formats in any case.
func (f *ContentFormat) UnmarshalFlag(value string) error {
	normalized, err := tools.ValidateAndNormalizeContentFormat(&value)
	if err != nil {
		return err
	}
	*f = ContentFormat(normalized)
	return nil
}

// Ptr returns the format as the optional string tool inputs take.
func (f ContentFormat) Ptr() *string {
	s := string(f)
	return &s
}
