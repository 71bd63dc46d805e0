package richtext

import (
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"
)

// observedRenderer returns a default renderer whose diagnostics are recorded
func observedRenderer() (*Renderer, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewRenderer(nil, zap.New(core)), logs
}

var voidElements = map[string]bool{"br": true, "img": true, "hr": true}

// assertBalanced fails the test if the markup has a closing tag that does not
// match the innermost open element, or leaves elements open.
func assertBalanced(t *testing.T, markup string) {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(markup))
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			if len(open) > 0 {
				t.Errorf("unclosed elements %v in %q", open, markup)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 || open[len(open)-1] != string(name) {
				t.Errorf("unbalanced </%s> with open elements %v in %q", name, open, markup)
				return
			}
			open = open[:len(open)-1]
		}
	}
}

// textContent returns the unescaped character data of the markup
func textContent(t *testing.T, markup string) string {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

func webLink(url string) *LinkTarget {
	return &LinkTarget{Type: LinkTypeWeb, WebURL: url}
}

func docLink(id, typ string) *LinkTarget {
	return &LinkTarget{Type: LinkTypeDocument, Document: DocumentRef{ID: id, Type: typ}}
}

func pathResolver(doc DocumentRef, broken bool) string {
	if broken {
		return "/404"
	}
	return "/" + doc.Type + "/" + doc.ID
}
