package richtext

import "go.uber.org/zap"

// GroupBlocks merges every maximal run of same-kind list items into a Group
// and keeps all other blocks as they are, in order. Image links are resolved
// here, once per image, on the copy of the block that is returned.
func (r *Renderer) GroupBlocks(blocks []Block, resolve LinkResolver) []Node {
	nodes := make([]Node, 0, len(blocks))
	for i, b := range blocks {
		if b.Kind == KindImage && b.LinkTo != nil {
			url, err := b.LinkTo.URL(resolve)
			if err != nil {
				r.log.Error("Unable to resolve image link, rendering image without link",
					zap.Int("block", i), zap.Error(err))
			} else {
				b.LinkURL = url
			}
		}

		if !b.Kind.IsListItem() {
			nodes = append(nodes, b)
			continue
		}

		// an open group is always the last node
		if n := len(nodes); n > 0 {
			if g, ok := nodes[n-1].(Group); ok && g.Kind == b.Kind.GroupKind() {
				g.Blocks = append(g.Blocks, b)
				nodes[n-1] = g
				continue
			}
		}
		nodes = append(nodes, Group{Kind: b.Kind.GroupKind(), Blocks: []Block{b}})
	}
	return nodes
}
