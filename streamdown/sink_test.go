package streamdown_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/mdstream/streamdown"
)

func TestTree(t *testing.T) {
	t.Run("text nodes", func(t *testing.T) {
		var tree Tree
		tree.AppendText("a")
		tree.AppendText("b")
		tree.AppendInlineCode("c")
		tree.AppendText("d")
		assert.Equal(t, []Node{text("a"), text("b"), inlineCode("c"), text("d")}, tree.Nodes)
	})

	t.Run("merged text nodes", func(t *testing.T) {
		tree := Tree{MergeText: true}
		tree.AppendText("a")
		tree.AppendText("b")
		tree.AppendInlineCode("c")
		tree.AppendText("d")
		assert.Equal(t, []Node{text("ab"), inlineCode("c"), text("d")}, tree.Nodes)
	})

	t.Run("long merged text run", func(t *testing.T) {
		tree := Tree{MergeText: true}
		tree.AppendText("x")
		tree.AppendEmphasis(false, "y")
		for i := 0; i < 1e5; i++ {
			tree.AppendText("a")
		}
		require.Len(t, tree.Nodes, 3)
		assert.Equal(t, text("x"), tree.Nodes[0])
		assert.Equal(t, strings.Repeat("a", 1e5), tree.Nodes[2].Text)

		tree.Nodes[2].Text = "b"
		tree.AppendText("c")
		assert.Equal(t, text("bc"), tree.Nodes[2], "must extend text set by the caller")
	})

	t.Run("list grouping", func(t *testing.T) {
		var tree Tree
		tree.AppendListItem("1")
		tree.AppendListItem("2")
		tree.AppendEmphasis(true, "x")
		tree.AppendListItem("3")
		tree.AppendCodeBlock("y")
		assert.Equal(t, []Node{
			list("1", "2"),
			emphasis(true, "x"),
			list("3"),
			codeBlock("y"),
		}, tree.Nodes)

		tree.Reset()
		assert.Empty(t, tree.Nodes)
		tree.AppendListItem("4")
		assert.Equal(t, []Node{list("4")}, tree.Nodes)
	})
}

func TestNode_Format(t *testing.T) {
	for _, tc := range []struct {
		node           Node
		terse, verbose string
	}{
		{text("a"), `Text "a"`, `<Text text="a">`},
		{heading(2, "b"), `Heading2 "b"`, `<Heading level=2 text="b">`},
		{emphasis(false, "c"), `Italic "c"`, `<Emphasis bold=false text="c">`},
		{emphasis(true, "d"), `Bold "d"`, `<Emphasis bold=true text="d">`},
		{codeBlock("e"), `CodeBlock "e"`, `<CodeBlock text="e">`},
		{list("f", "g"), `List["f" "g"]`, "<List items=2>\n  <ListItem text=\"f\">\n  <ListItem text=\"g\">"},
		{Node{Kind: Kind(99)}, `InvalidKind99 ""`, `<InvalidKind99 text="">`},
	} {
		assert.Equal(t, tc.terse, fmt.Sprintf("%v", tc.node))
		assert.Equal(t, tc.verbose, fmt.Sprintf("%+v", tc.node))
	}
}
