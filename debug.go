package regexzero

import (
	"fmt"
	"strings"

	"github.com/coregx/regexzero/parser"
)

// dumpNode renders an AST the way a debugger would, nesting children
// with parenthesized call notation (e.g. "Or(Char(a), Plus(Char(b)))"),
// mirroring the {:?} derive output DebugPrint's reference design used
// for its own AST enum.
func dumpNode(n *parser.Node) string {
	switch n.Kind {
	case parser.KindChar:
		return fmt.Sprintf("Char(%c)", n.Char)
	case parser.KindSeq:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = dumpNode(c)
		}
		return fmt.Sprintf("Seq(%s)", strings.Join(parts, ", "))
	case parser.KindOr:
		return fmt.Sprintf("Or(%s, %s)", dumpNode(n.Left), dumpNode(n.Right))
	case parser.KindPlus:
		return fmt.Sprintf("Plus(%s)", dumpNode(n.Child))
	case parser.KindStar:
		return fmt.Sprintf("Star(%s)", dumpNode(n.Child))
	case parser.KindQuestion:
		return fmt.Sprintf("Question(%s)", dumpNode(n.Child))
	default:
		return fmt.Sprintf("<bad node kind %s>", n.Kind)
	}
}
