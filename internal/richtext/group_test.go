package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGroupBlocks(t *testing.T) {
	li := func(text string) Block { return Block{Kind: KindListItem, Text: text} }
	oli := func(text string) Block { return Block{Kind: KindOrderedListItem, Text: text} }
	p := func(text string) Block { return Block{Kind: KindParagraph, Text: text} }

	tests := []struct {
		name   string
		blocks []Block
		want   []Node
	}{
		{
			name: "empty",
			want: []Node{},
		},
		{
			name:   "runs of list items become groups",
			blocks: []Block{li("a"), li("b"), p("c"), li("d")},
			want: []Node{
				Group{Kind: KindGroupListItem, Blocks: []Block{li("a"), li("b")}},
				p("c"),
				Group{Kind: KindGroupListItem, Blocks: []Block{li("d")}},
			},
		},
		{
			name:   "change of list kind closes the group",
			blocks: []Block{li("a"), oli("b"), oli("c"), li("d")},
			want: []Node{
				Group{Kind: KindGroupListItem, Blocks: []Block{li("a")}},
				Group{Kind: KindGroupOrderedListItem, Blocks: []Block{oli("b"), oli("c")}},
				Group{Kind: KindGroupListItem, Blocks: []Block{li("d")}},
			},
		},
		{
			name:   "no list items",
			blocks: []Block{p("a"), {Kind: KindHeading2, Text: "b"}},
			want:   []Node{p("a"), Block{Kind: KindHeading2, Text: "b"}},
		},
	}

	r := NewRenderer(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.GroupBlocks(tt.blocks, nil)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.blocks), countLeaves(got))
		})
	}
}

func countLeaves(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		if g, ok := node.(Group); ok {
			n += len(g.Blocks)
		} else {
			n++
		}
	}
	return n
}

func TestGroupBlocks_ResolvesImageLinkOnce(t *testing.T) {
	calls := 0
	resolve := func(doc DocumentRef, broken bool) string {
		calls++
		return pathResolver(doc, broken)
	}
	blocks := []Block{
		{Kind: KindImage, URL: "https://img/a.png", LinkTo: docLink("home", "page")},
		{Kind: KindImage, URL: "https://img/b.png"},
	}

	html := NewRenderer(nil, nil).AsHTML(blocks, resolve, nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t,
		`<p class="block-img"><a href="/page/home"><img src="https://img/a.png" alt=""></a></p>`+
			`<p class="block-img"><img src="https://img/b.png" alt=""></p>`,
		html)
	assert.Empty(t, blocks[0].LinkURL, "input block must not be modified")
}

func TestGroupBlocks_UnresolvableImageLink(t *testing.T) {
	r, logs := observedRenderer()
	blocks := []Block{{Kind: KindImage, URL: "u", LinkTo: &LinkTarget{Type: "Link.unknown"}}}

	nodes := r.GroupBlocks(blocks, pathResolver)

	require.Len(t, nodes, 1)
	assert.Empty(t, nodes[0].(Block).LinkURL)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}
