package layout

import (
	"fmt"

	"pagelay/utils/debug"
)

// Dump returns indented human readable representation of the layout tree.
func Dump(root *Layout) string {
	tw := debug.NewTreeWriter()
	dump(tw, root, 0)
	return tw.String()
}

func dump(tw *debug.TreeWriter, l *Layout, depth int) {
	props := map[string]string{
		"at":   fmt.Sprintf("<%g,%g>", l.X, l.Y),
		"size": l.Size.String(),
	}
	if l.Override != nil {
		props["override"] = NodeName(l.Override)
	}
	if l.Leftover != nil {
		props["leftover"] = NodeName(l.Leftover)
	}
	tw.Props(depth, NodeName(l.Node), props)

	switch n := l.Node.(type) {
	case Tag:
		tw.TextBlock(depth+1, n.Key, fmt.Sprint(n.Value))
	case fmt.Stringer:
		tw.TextBlock(depth+1, "text", n.String())
	}
	for _, ch := range l.Children {
		dump(tw, ch, depth+1)
	}
}
