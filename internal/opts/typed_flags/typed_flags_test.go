package typed_flags

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_UnmarshalFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Transport
		wantErr bool
	}{
		{name: "valid stdio", value: "stdio", want: TransportStdio},
		{name: "valid http", value: "http", want: TransportHTTP},
		{name: "invalid transport", value: "invalid", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "case sensitive", value: "HTTP", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transport Transport
			err := transport.UnmarshalFlag(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid transport")
				assert.Empty(t, transport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, transport)
		})
	}
}

func TestContentFormat_UnmarshalFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ContentFormat
		wantErr bool
	}{
		{name: "json", value: "json", want: ContentFormatJSON},
		{name: "markdown", value: "markdown", want: ContentFormatMarkdown},
		{name: "case insensitive", value: "Markdown", want: ContentFormatMarkdown},
		{name: "empty selects the default", value: "", want: ContentFormatJSON},
		{name: "invalid", value: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format ContentFormat
			err := format.UnmarshalFlag(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
			assert.Equal(t, string(tt.want), *format.Ptr())
		})
	}
}

func TestComplete(t *testing.T) {
	items := func(completions []flags.Completion) []string {
		out := []string{}
		for _, c := range completions {
			out = append(out, c.Item)
		}
		return out
	}

	tests := []struct {
		name     string
		complete func(string) []flags.Completion
		match    string
		want     []string
	}{
		{name: "all transports", complete: new(Transport).Complete, match: "", want: []string{"stdio", "http"}},
		{name: "transport prefix", complete: new(Transport).Complete, match: "ht", want: []string{"http"}},
		{name: "transport upper case prefix", complete: new(Transport).Complete, match: "STD", want: []string{"stdio"}},
		{name: "no transport", complete: new(Transport).Complete, match: "xyz", want: []string{}},
		{name: "all formats", complete: new(ContentFormat).Complete, match: "", want: []string{"json", "markdown"}},
		{name: "format prefix", complete: new(ContentFormat).Complete, match: "m", want: []string{"markdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, items(tt.complete(tt.match)))
		})
	}
}
