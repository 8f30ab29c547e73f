package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// DumpExpr returns a one line structural rendering of expr. The output
// depends only on the case tags, payloads and child order of the tree:
// equal trees always dump to the same text.
func DumpExpr(expr Expr) string {
	var buf bytes.Buffer
	dumpNode(&buf, expr)
	return buf.String()
}

func dumpNode(w io.Writer, n Node) {
	switch e := n.(type) {
	case Number:
		io.WriteString(w, "number(")
		io.WriteString(w, strconv.FormatInt(e.value, 10))
		io.WriteString(w, ")")
	case Literal:
		io.WriteString(w, "literal(")
		io.WriteString(w, e.value)
		io.WriteString(w, ")")
	case Boolean:
		io.WriteString(w, "boolean(")
		io.WriteString(w, strconv.FormatBool(e.value))
		io.WriteString(w, ")")
	case Cond:
		io.WriteString(w, "cond(")
		dumpNode(w, e.test)
		io.WriteString(w, ", ")
		dumpNode(w, e.csq)
		io.WriteString(w, ", ")
		dumpNode(w, e.alt)
		io.WriteString(w, ")")
	case Lambda:
		io.WriteString(w, "func(params: ")
		for i := range e.params {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			dumpNode(w, e.params[i])
		}
		io.WriteString(w, ", body: ")
		for i := range e.body {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			dumpNode(w, e.body[i])
		}
		io.WriteString(w, ")")
	case Function:
		io.WriteString(w, "function(")
		for i := range e.clauses {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			dumpNode(w, e.clauses[i])
		}
		io.WriteString(w, ")")
	case Application:
		io.WriteString(w, "application(")
		dumpNode(w, e.callee)
		io.WriteString(w, ", args: ")
		for i := range e.args {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			dumpNode(w, e.args[i])
		}
		io.WriteString(w, ")")
	case Arith:
		io.WriteString(w, "arith(")
		io.WriteString(w, e.op.String())
		io.WriteString(w, ", ")
		dumpNode(w, e.left)
		io.WriteString(w, ", ")
		dumpNode(w, e.right)
		io.WriteString(w, ")")
	case Logic:
		io.WriteString(w, "logic(")
		io.WriteString(w, e.op.String())
		io.WriteString(w, ", ")
		dumpNode(w, e.left)
		io.WriteString(w, ", ")
		dumpNode(w, e.right)
		io.WriteString(w, ")")
	default:
		io.WriteString(w, fmt.Sprintf("unknown(%T)", e))
	}
}
