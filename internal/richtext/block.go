// Package richtext renders structured text (a sequence of typed blocks whose
// text carries overlapping inline spans) into HTML or plain text.
//
// A render is a pure function of its input: blocks are value types and are
// never modified, and every piece of per-call state (the span stack, the
// resolved link URLs, the list groups) lives on the call's own stack.
package richtext

import "encoding/json"

// Kind identifies a block, span or group type. The set below is what the
// default rendering table knows about; any other value is still a valid Kind
// and is rendered by the fallback rule.
type Kind string

// Block kinds
const (
	KindHeading1        Kind = "heading1"
	KindHeading2        Kind = "heading2"
	KindHeading3        Kind = "heading3"
	KindHeading4        Kind = "heading4"
	KindHeading5        Kind = "heading5"
	KindHeading6        Kind = "heading6"
	KindParagraph       Kind = "paragraph"
	KindPreformatted    Kind = "preformatted"
	KindListItem        Kind = "list-item"
	KindOrderedListItem Kind = "o-list-item"
	KindImage           Kind = "image"
	KindEmbed           Kind = "embed"
)

// Span kinds
const (
	KindStrong    Kind = "strong"
	KindEmphasis  Kind = "em"
	KindHyperlink Kind = "hyperlink"
	KindLabel     Kind = "label"
)

// Synthetic kinds produced by the block grouper.
const (
	KindGroupListItem        Kind = "group-list-item"
	KindGroupOrderedListItem Kind = "group-o-list-item"
)

// IsHeading reports whether k is one of heading1..heading6.
func (k Kind) IsHeading() bool {
	switch k {
	case KindHeading1, KindHeading2, KindHeading3, KindHeading4, KindHeading5, KindHeading6:
		return true
	}
	return false
}

// IsListItem reports whether blocks of this kind are merged into list groups.
func (k Kind) IsListItem() bool {
	return k == KindListItem || k == KindOrderedListItem
}

// GroupKind returns the synthetic group kind for a list item kind.
func (k Kind) GroupKind() Kind {
	return "group-" + k
}

// Dimensions of an image in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OEmbed is the provider metadata and markup carried by an embed block.
type OEmbed struct {
	Type         string `json:"type,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
	Title        string `json:"title,omitempty"`
	Width        any    `json:"width,omitempty"`
	Height       any    `json:"height,omitempty"`
	HTML         string `json:"html,omitempty"`
}

// Block is one item of a structured text.
type Block struct {
	Kind  Kind   `json:"type"`
	Text  string `json:"text,omitempty"`
	Spans []Span `json:"spans,omitempty"`
	Label string `json:"label,omitempty"`

	// Image payload
	URL        string      `json:"url,omitempty"`
	Alt        string      `json:"alt,omitempty"`
	Copyright  string      `json:"copyright,omitempty"`
	Dimensions Dimensions  `json:"dimensions,omitzero"`
	LinkTo     *LinkTarget `json:"linkTo,omitempty"`

	// LinkURL is the resolved LinkTo destination. It is only ever set on the
	// copy of the block the grouper hands to the serializer.
	LinkURL string `json:"-"`

	// Embed payload
	OEmbed *OEmbed `json:"oembed,omitempty"`
}

// Span is an inline annotation over the UTF-16 range [Start, End) of the
// owning block's text.
type Span struct {
	Start int  `json:"start"`
	End   int  `json:"end"`
	Kind  Kind `json:"type"`

	// Link is the hyperlink destination (hyperlink spans only).
	Link *LinkTarget `json:"-"`
	// Label is the class name of a label span.
	Label string `json:"-"`
	// Data keeps the raw payload of spans whose kind is not known here.
	Data json.RawMessage `json:"-"`

	// URL is the resolved Link destination. It is only ever set on the span
	// copy the resolver pushes on its stack.
	URL string `json:"-"`
}

// Len is the length of the span in code units.
func (s Span) Len() int { return s.End - s.Start }

// Group is a maximal run of same-kind list items. Groups exist only for the
// duration of one render.
type Group struct {
	Kind   Kind
	Blocks []Block
}

// Element is anything the serializer can render: a Block, a Span or a Group.
type Element interface {
	ElementKind() Kind
	ElementLabel() string
}

// Node is a top-level item produced by the grouper: a Block or a Group.
type Node interface {
	Element
	isNode()
}

func (b Block) ElementKind() Kind    { return b.Kind }
func (b Block) ElementLabel() string { return b.Label }
func (Block) isNode()                {}

func (s Span) ElementKind() Kind    { return s.Kind }
func (s Span) ElementLabel() string { return s.Label }

func (g Group) ElementKind() Kind  { return g.Kind }
func (Group) ElementLabel() string { return "" }
func (Group) isNode()              {}
