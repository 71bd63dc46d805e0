package richtext

import "strings"

// Serializer overrides the default rendering of an element. It receives the
// element and its already rendered content; returning an empty string falls
// back to the default rendering. Elements are passed as values: Block, Span
// or Group.
type Serializer func(el Element, content string) string

// Serialize renders one element around its rendered content. A non-empty
// result of serializer wins verbatim.
func (r *Renderer) Serialize(el Element, content string, serializer Serializer) string {
	if serializer != nil {
		if custom := serializer(el, content); custom != "" {
			return custom
		}
	}
	return r.serializeDefault(el, content)
}

func (r *Renderer) serializeDefault(el Element, content string) string {
	kind := el.ElementKind()
	if tag, ok := r.cfg.Tag(kind); ok {
		return wrapTag(tag, el.ElementLabel(), content)
	}

	switch e := el.(type) {
	case Block:
		switch e.Kind {
		case KindImage:
			return r.serializeImage(e)
		case KindEmbed:
			return serializeEmbed(e)
		}
	case Span:
		switch e.Kind {
		case KindHyperlink:
			return `<a href="` + escapeAttr(e.URL) + `">` + content + `</a>`
		case KindLabel:
			return `<span class="` + escapeAttr(e.Label) + `">` + content + `</span>`
		}
	}

	r.log.Debug("No default rendering for element kind", zapKind(kind))
	return r.cfg.FallbackComment(kind) + content
}

func wrapTag(tag, label, content string) string {
	var sb strings.Builder
	sb.Grow(len(tag)*2 + len(content) + len(label) + 13)
	sb.WriteString("<")
	sb.WriteString(tag)
	if label != "" {
		sb.WriteString(` class="`)
		sb.WriteString(escapeAttr(label))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(content)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

func (r *Renderer) serializeImage(b Block) string {
	class := r.cfg.ImageClass()
	if b.Label != "" {
		class = strings.TrimSpace(class + " " + b.Label)
	}
	img := `<img src="` + escapeAttr(b.URL) + `" alt="` + escapeAttr(b.Alt) + `">`
	if b.LinkURL != "" {
		img = `<a href="` + escapeAttr(b.LinkURL) + `">` + img + `</a>`
	}
	return `<p class="` + escapeAttr(class) + `">` + img + `</p>`
}

func serializeEmbed(b Block) string {
	var oe OEmbed
	if b.OEmbed != nil {
		oe = *b.OEmbed
	}
	var sb strings.Builder
	sb.WriteString(`<div data-oembed="`)
	sb.WriteString(escapeAttr(oe.EmbedURL))
	sb.WriteString(`" data-oembed-type="`)
	sb.WriteString(escapeAttr(oe.Type))
	sb.WriteString(`" data-oembed-provider="`)
	sb.WriteString(escapeAttr(oe.ProviderName))
	sb.WriteString(`"`)
	if b.Label != "" {
		sb.WriteString(` class="`)
		sb.WriteString(escapeAttr(b.Label))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	// provider markup is trusted as delivered
	sb.WriteString(oe.HTML)
	sb.WriteString("</div>")
	return sb.String()
}
