package richtext

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Renderer turns blocks into HTML using a rendering table and reports
// recoverable problems (unresolvable links, unknown kinds) on a logger.
// A Renderer holds no per-call state and may be used concurrently.
type Renderer struct {
	cfg *PreparedConfig
	log *zap.Logger
}

// NewRenderer returns a renderer for cfg logging to log. A nil cfg selects
// DefaultConfig and a nil log discards diagnostics.
func NewRenderer(cfg *PreparedConfig, log *zap.Logger) *Renderer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{cfg: cfg, log: log}
}

// AsHTML renders the blocks as HTML. Consecutive list items are wrapped in
// list containers, block text goes through InsertSpans and every element is
// offered to serializer before the default rendering applies.
func (r *Renderer) AsHTML(blocks []Block, resolve LinkResolver, serializer Serializer) string {
	var sb strings.Builder
	for _, node := range r.GroupBlocks(blocks, resolve) {
		sb.WriteString(r.Serialize(node, r.nodeContent(node, resolve, serializer), serializer))
	}
	return sb.String()
}

func (r *Renderer) nodeContent(node Node, resolve LinkResolver, serializer Serializer) string {
	switch n := node.(type) {
	case Group:
		var sb strings.Builder
		for _, b := range n.Blocks {
			sb.WriteString(r.Serialize(b, r.nodeContent(b, resolve, serializer), serializer))
		}
		return sb.String()
	case Block:
		return r.InsertSpans(n.Text, n.Spans, resolve, serializer)
	}
	return ""
}

// AsHTML renders blocks with the default rendering table, discarding
// diagnostics.
func AsHTML(blocks []Block, resolve LinkResolver, serializer Serializer) string {
	return NewRenderer(nil, nil).AsHTML(blocks, resolve, serializer)
}

// AsText joins the text of all blocks that have text with single spaces.
// Spans and list grouping are ignored.
func AsText(blocks []Block) string {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Text != "" {
			texts = append(texts, b.Text)
		}
	}
	return strings.Join(texts, " ")
}

// StructuredText is a rich text fragment: an ordered list of blocks.
type StructuredText []Block

// AsHTML renders the fragment with the default rendering table.
func (st StructuredText) AsHTML(resolve LinkResolver, serializer Serializer) string {
	return AsHTML(st, resolve, serializer)
}

// AsText returns the plain text of the fragment.
func (st StructuredText) AsText() string {
	return AsText(st)
}

// FirstHeading returns the first heading block of any level.
func (st StructuredText) FirstHeading() (Block, bool) {
	for _, b := range st {
		if b.Kind.IsHeading() {
			return b, true
		}
	}
	return Block{}, false
}

// Title is an alias of FirstHeading.
func (st StructuredText) Title() (Block, bool) {
	return st.FirstHeading()
}

// FirstParagraph returns the first paragraph block.
func (st StructuredText) FirstParagraph() (Block, bool) {
	for _, b := range st {
		if b.Kind == KindParagraph {
			return b, true
		}
	}
	return Block{}, false
}

// Paragraphs returns all paragraph blocks in order.
func (st StructuredText) Paragraphs() []Block {
	var paragraphs []Block
	for _, b := range st {
		if b.Kind == KindParagraph {
			paragraphs = append(paragraphs, b)
		}
	}
	return paragraphs
}

// Paragraph returns the n-th paragraph block, counting from zero.
func (st StructuredText) Paragraph(n int) (Block, bool) {
	if n < 0 {
		return Block{}, false
	}
	for _, b := range st {
		if b.Kind != KindParagraph {
			continue
		}
		if n == 0 {
			return b, true
		}
		n--
	}
	return Block{}, false
}

// FirstImage returns a view of the first image block.
func (st StructuredText) FirstImage() (ImageView, bool) {
	for _, b := range st {
		if b.Kind == KindImage {
			return ImageView{
				URL:    b.URL,
				Width:  b.Dimensions.Width,
				Height: b.Dimensions.Height,
				Alt:    b.Alt,
			}, true
		}
	}
	return ImageView{}, false
}

// ImageView is the renderable part of an image: its URL, size and alt text.
type ImageView struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt,omitempty"`
}

// Ratio is width divided by height, or 0 for an image without height.
func (v ImageView) Ratio() float64 {
	if v.Height == 0 {
		return 0
	}
	return float64(v.Width) / float64(v.Height)
}

// AsHTML renders the view as an img tag.
func (v ImageView) AsHTML() string {
	return `<img src="` + escapeAttr(v.URL) +
		`" width="` + strconv.Itoa(v.Width) +
		`" height="` + strconv.Itoa(v.Height) +
		`" alt="` + escapeAttr(v.Alt) + `">`
}

func zapKind(k Kind) zap.Field {
	return zap.String("kind", string(k))
}
