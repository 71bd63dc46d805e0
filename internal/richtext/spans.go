package richtext

import (
	"sort"
	"unicode/utf16"

	"go.uber.org/zap"
)

// frame is an open span on the resolver stack with the markup rendered
// inside it so far
type frame struct {
	span    Span
	content []byte
}

// InsertSpans renders text with its spans applied, escaping the text and
// nesting the span markup. Offsets count UTF-16 code units.
//
// The text is scanned once from left to right. At every position the spans
// ending there are closed first, most recently opened first, then the spans
// starting there are opened, longest first. A span that crosses the end of an
// enclosing span is therefore cut short by it, which keeps the markup
// balanced for any input.
func (r *Renderer) InsertSpans(text string, spans []Span, resolve LinkResolver, serializer Serializer) string {
	if len(spans) == 0 {
		return EscapeHTML(text)
	}

	units := UTF16Len(text)
	opensAt := make(map[int][]Span, len(spans))
	for _, s := range spans {
		start, end, ok := clampSpan(s.Start, s.End, units)
		if !ok {
			r.log.Debug("Ignoring span with inverted offsets",
				zapKind(s.Kind), zap.Int("start", s.Start), zap.Int("end", s.End))
			continue
		}
		s.Start, s.End = start, end
		opensAt[start] = append(opensAt[start], s)
	}
	// number of stacked spans ending at a position
	closesAt := make(map[int]int, len(spans))

	var (
		out   []byte
		stack []frame
	)

	emit := func(s string) {
		if n := len(stack); n > 0 {
			stack[n-1].content = append(stack[n-1].content, s...)
			return
		}
		out = append(out, s...)
	}

	closeTop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		emit(r.Serialize(top.span, string(top.content), serializer))
	}

	visit := func(pos int) {
		for n := closesAt[pos]; n > 0 && len(stack) > 0; n-- {
			closeTop()
		}

		opening := opensAt[pos]
		if len(opening) == 0 {
			return
		}
		// equal lengths keep their input order
		sort.SliceStable(opening, func(i, j int) bool {
			return opening[i].Len() > opening[j].Len()
		})
		for _, s := range opening {
			if s.Kind == KindHyperlink {
				url, err := s.Link.URL(resolve)
				if err != nil {
					r.log.Error("Unable to resolve hyperlink, keeping its text unlinked",
						zap.Int("start", s.Start), zap.Int("end", s.End), zap.Error(err))
					continue
				}
				s.URL = url
			}
			if s.Len() == 0 {
				emit(r.Serialize(s, "", serializer))
				continue
			}
			stack = append(stack, frame{span: s})
			closesAt[s.End]++
		}
	}

	pos := 0
	for _, ch := range text {
		visit(pos)
		emit(EscapeHTML(string(ch)))
		w := runeUnits(ch)
		if w == 2 {
			// a boundary inside a surrogate pair applies after the whole rune
			visit(pos + 1)
		}
		pos += w
	}
	visit(pos)

	for len(stack) > 0 {
		closeTop()
	}
	return string(out)
}

// clampSpan bounds [start, end) to the text. Inverted ranges are rejected.
func clampSpan(start, end, units int) (int, int, bool) {
	start = min(max(start, 0), units)
	end = min(max(end, 0), units)
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

func runeUnits(ch rune) int {
	if w := utf16.RuneLen(ch); w > 0 {
		return w
	}
	return 1
}

// UTF16Len is the length of s in the code units span offsets count.
func UTF16Len(s string) int {
	n := 0
	for _, ch := range s {
		n += runeUnits(ch)
	}
	return n
}
