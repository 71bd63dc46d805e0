package richtext

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "Hello world", want: "Hello world"},
		{name: "empty", input: "", want: ""},
		{name: "ampersand", input: "Tom & Jerry", want: "Tom &amp; Jerry"},
		{name: "angle brackets", input: "<b>", want: "&lt;b&gt;"},
		{name: "newline becomes break", input: "one\ntwo", want: "one<br>two"},
		{name: "quotes untouched", input: `"it's"`, want: `"it's"`},
		{name: "non ascii", input: "Grüße 😀", want: "Grüße 😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML_NotIdempotent(t *testing.T) {
	once := EscapeHTML("a & b")
	twice := EscapeHTML(once)
	if once == twice {
		t.Errorf("escaping escaped text should change it again, got %q both times", once)
	}
	if twice != "a &amp;amp; b" {
		t.Errorf("unexpected double escape %q", twice)
	}
}
