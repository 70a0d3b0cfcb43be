package streamdown

import (
	"fmt"
	"io"
	"strings"
)

// Format writes a type string representing the receiver code.
func (k Kind) Format(f fmt.State, _ rune) {
	switch k {
	case noKind:
		io.WriteString(f, "None")
	case Text:
		io.WriteString(f, "Text")
	case Heading:
		io.WriteString(f, "Heading")
	case CodeBlock:
		io.WriteString(f, "CodeBlock")
	case InlineCode:
		io.WriteString(f, "InlineCode")
	case ListItem:
		io.WriteString(f, "ListItem")
	case Emphasis:
		io.WriteString(f, "Emphasis")
	case List:
		io.WriteString(f, "List")
	default:
		fmt.Fprintf(f, "InvalidKind%v", int(k))
	}
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a verbose "<Kind attr=value>" form when
// formatted with `%+v", a terse one line form otherwise.
func (n Node) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		switch n.Kind {
		case Heading:
			fmt.Fprintf(f, "<%v level=%v text=%q>", n.Kind, n.Level, n.Text)
		case Emphasis:
			fmt.Fprintf(f, "<%v bold=%v text=%q>", n.Kind, n.Bold, n.Text)
		case List:
			fmt.Fprintf(f, "<%v items=%v>", n.Kind, len(n.Items))
			for _, item := range n.Items {
				fmt.Fprintf(f, "\n  %+v", item)
			}
		default:
			fmt.Fprintf(f, "<%v text=%q>", n.Kind, n.Text)
		}
		return
	}

	switch n.Kind {
	case Heading:
		fmt.Fprintf(f, "%v%v %q", n.Kind, n.Level, n.Text)
	case Emphasis:
		if n.Bold {
			fmt.Fprintf(f, "Bold %q", n.Text)
		} else {
			fmt.Fprintf(f, "Italic %q", n.Text)
		}
	case List:
		fmt.Fprintf(f, "%v[", n.Kind)
		for i, item := range n.Items {
			if i > 0 {
				io.WriteString(f, " ")
			}
			fmt.Fprintf(f, "%q", item.Text)
		}
		io.WriteString(f, "]")
	default:
		fmt.Fprintf(f, "%v %q", n.Kind, n.Text)
	}
}

// Format writes one node per line, numbered when formatted with `%+v".
func (tree Tree) Format(f fmt.State, _ rune) {
	for i, n := range tree.Nodes {
		if i > 0 {
			io.WriteString(f, "\n")
		}
		if f.Flag('+') {
			fmt.Fprintf(f, "%v. %+v", i+1, n)
		} else {
			fmt.Fprintf(f, "%v", n)
		}
	}
}

// Format writes the parser's scan state: the lookback window, and any open
// construct.
func (p *Parser) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "back=%q", p.back.String())
	if kind, size, open := p.Pending(); open {
		if f.Flag('+') {
			fmt.Fprintf(f, " open=%v size=%v", kind, size)
		} else {
			fmt.Fprintf(f, " open=%v", kind)
		}
	}
	if p.npart > 0 {
		fmt.Fprintf(f, " partial=%v", p.npart)
	}
}

// String returns all nodes formatted one per line.
func (tree Tree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", tree)
	return sb.String()
}
