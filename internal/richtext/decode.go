package richtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
)

// FieldTypeStructuredText is the field type wrapping a block list.
const FieldTypeStructuredText = "StructuredText"

// ErrUnexpectedInput is returned for documents that are neither a block array
// nor a structured text field.
var ErrUnexpectedInput = errors.New("unexpected input")

// DecodeError locates a decoding problem inside the input document.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Err.Error()
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses structured text JSON: either an array of blocks or a
// {"type": "StructuredText", "value": [...]} field. Blocks that cannot be
// decoded are skipped; their errors are combined into the returned error
// while the remaining blocks are still returned.
func Decode(r io.Reader) (StructuredText, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, &DecodeError{Err: fmt.Errorf("%w: empty document", ErrUnexpectedInput)}
	}

	if data[0] == '{' {
		var field struct {
			Type  string          `json:"type"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &field); err != nil {
			return nil, &DecodeError{Err: err}
		}
		if field.Type != FieldTypeStructuredText {
			return nil, &DecodeError{Path: "type", Err: fmt.Errorf("%w: field type %q", ErrUnexpectedInput, field.Type)}
		}
		data = field.Value
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%w: expected an array of blocks: %v", ErrUnexpectedInput, err)}
	}

	doc := make(StructuredText, 0, len(items))
	var errs error
	for i, item := range items {
		var b Block
		if err := json.Unmarshal(item, &b); err != nil {
			errs = multierr.Append(errs, &DecodeError{Path: fmt.Sprintf("[%d]", i), Err: err})
			continue
		}
		if b.Kind == "" {
			errs = multierr.Append(errs, &DecodeError{Path: fmt.Sprintf("[%d]", i), Err: errors.New("missing type")})
			continue
		}
		doc = append(doc, b)
	}
	return doc, errs
}

// DecodeString is a convenience wrapper for Decode.
func DecodeString(s string) (StructuredText, error) {
	return Decode(strings.NewReader(s))
}

type wireSpan struct {
	Start int             `json:"start"`
	End   int             `json:"end"`
	Kind  Kind            `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type labelData struct {
	Label string `json:"label"`
}

// UnmarshalJSON decodes a span and interprets its data for known kinds.
// Data that does not fit its kind is kept raw; such a hyperlink has no Link
// and is dropped when rendered.
func (s *Span) UnmarshalJSON(data []byte) error {
	var w wireSpan
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Span{Start: w.Start, End: w.End, Kind: w.Kind}
	if len(w.Data) == 0 || bytes.Equal(w.Data, []byte("null")) {
		return nil
	}

	switch s.Kind {
	case KindHyperlink:
		var t LinkTarget
		if err := json.Unmarshal(w.Data, &t); err == nil {
			s.Link = &t
			return nil
		}
	case KindLabel:
		var l labelData
		if err := json.Unmarshal(w.Data, &l); err == nil {
			s.Label = l.Label
			return nil
		}
	}
	s.Data = w.Data
	return nil
}

// MarshalJSON encodes the span in its wire form.
func (s Span) MarshalJSON() ([]byte, error) {
	w := wireSpan{Start: s.Start, End: s.End, Kind: s.Kind, Data: s.Data}
	if w.Data == nil {
		var err error
		switch {
		case s.Link != nil:
			w.Data, err = json.Marshal(s.Link)
		case s.Label != "":
			w.Data, err = json.Marshal(labelData{Label: s.Label})
		}
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(w)
}

type wireLink struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type wireDocumentLink struct {
	Document DocumentRef `json:"document"`
	Broken   bool        `json:"isBroken"`
}

type wireWebLink struct {
	URL string `json:"url"`
}

type wireFileLink struct {
	File FileRef `json:"file"`
}

type wireImageLink struct {
	Image ImageRef `json:"image"`
}

// UnmarshalJSON decodes a link field {"type": "Link.*", "value": {...}}.
// Unknown link types decode without payload and fail to resolve later.
func (t *LinkTarget) UnmarshalJSON(data []byte) error {
	var w wireLink
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = LinkTarget{Type: w.Type}
	if len(w.Value) == 0 {
		return nil
	}

	switch w.Type {
	case LinkTypeDocument:
		var v wireDocumentLink
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("%s: %w", w.Type, err)
		}
		t.Document, t.Broken = v.Document, v.Broken
	case LinkTypeWeb:
		var v wireWebLink
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("%s: %w", w.Type, err)
		}
		t.WebURL = v.URL
	case LinkTypeFile:
		var v wireFileLink
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("%s: %w", w.Type, err)
		}
		t.File = v.File
	case LinkTypeImage:
		var v wireImageLink
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("%s: %w", w.Type, err)
		}
		t.Image = v.Image
	}
	return nil
}

// MarshalJSON encodes the link in its wire form.
func (t LinkTarget) MarshalJSON() ([]byte, error) {
	var value any
	switch t.Type {
	case LinkTypeDocument:
		value = wireDocumentLink{Document: t.Document, Broken: t.Broken}
	case LinkTypeWeb:
		value = wireWebLink{URL: t.WebURL}
	case LinkTypeFile:
		value = wireFileLink{File: t.File}
	case LinkTypeImage:
		value = wireImageLink{Image: t.Image}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireLink{Type: t.Type, Value: raw})
}
