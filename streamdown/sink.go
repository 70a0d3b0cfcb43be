package streamdown

import "strings"

// Kind identifies the type of a Node, and of the recognizer that produces it.
type Kind int

const (
	noKind Kind = iota
	Text
	Heading
	CodeBlock
	InlineCode
	ListItem
	Emphasis
	List // container of ListItem nodes, only ever built by a sink
)

// Node is one finished unit of parsed output.
type Node struct {
	Kind  Kind
	Text  string
	Level int    // Heading level, unbounded
	Bold  bool   // Emphasis weight
	Items []Node // ListItem children of a List
}

// Sink receives finished nodes from a Parser.
// Calls are append-only and in construct close order; a Sink must not fail.
type Sink interface {
	AppendText(content string)
	AppendHeading(level int, content string)
	AppendCodeBlock(content string)
	AppendInlineCode(content string)
	AppendListItem(content string)
	AppendEmphasis(bold bool, content string)
}

// Tree is a Sink that collects nodes in memory.
//
// A ListItem goes into the last top level node if that is a List, otherwise a
// new List is appended to hold it. No other grouping happens, except that
// adjacent Text nodes are merged when MergeText is set.
type Tree struct {
	Nodes     []Node
	MergeText bool

	merged *strings.Builder // backs the last Text node under MergeText
}

// AppendText appends a Text node, or extends the last one under MergeText.
func (tree *Tree) AppendText(content string) {
	if !tree.MergeText {
		tree.Nodes = append(tree.Nodes, Node{Kind: Text, Text: content})
		return
	}
	if tree.merged == nil {
		tree.merged = &strings.Builder{}
	}
	last := tree.last()
	if last == nil || last.Kind != Text {
		tree.Nodes = append(tree.Nodes, Node{Kind: Text})
		last = tree.last()
		tree.merged.Reset()
	} else if tree.merged.Len() != len(last.Text) {
		tree.merged.Reset()
		tree.merged.WriteString(last.Text)
	}
	tree.merged.WriteString(content)
	last.Text = tree.merged.String()
}

// AppendHeading appends a Heading node.
func (tree *Tree) AppendHeading(level int, content string) {
	tree.Nodes = append(tree.Nodes, Node{Kind: Heading, Level: level, Text: content})
}

// AppendCodeBlock appends a CodeBlock node.
func (tree *Tree) AppendCodeBlock(content string) {
	tree.Nodes = append(tree.Nodes, Node{Kind: CodeBlock, Text: content})
}

// AppendInlineCode appends an InlineCode node.
func (tree *Tree) AppendInlineCode(content string) {
	tree.Nodes = append(tree.Nodes, Node{Kind: InlineCode, Text: content})
}

// AppendListItem appends a ListItem into the trailing List container.
func (tree *Tree) AppendListItem(content string) {
	last := tree.last()
	if last == nil || last.Kind != List {
		tree.Nodes = append(tree.Nodes, Node{Kind: List})
		last = tree.last()
	}
	last.Items = append(last.Items, Node{Kind: ListItem, Text: content})
}

// AppendEmphasis appends an Emphasis node.
func (tree *Tree) AppendEmphasis(bold bool, content string) {
	tree.Nodes = append(tree.Nodes, Node{Kind: Emphasis, Bold: bold, Text: content})
}

// Reset discards all collected nodes.
func (tree *Tree) Reset() {
	tree.Nodes = tree.Nodes[:0]
	tree.merged = nil
}

func (tree *Tree) last() *Node {
	if i := len(tree.Nodes) - 1; i >= 0 {
		return &tree.Nodes[i]
	}
	return nil
}
