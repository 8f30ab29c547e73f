package ast

// Children returns the direct children of n as a fresh slice, in field
// order: test, then, else for Cond; the clauses for Function; the callee
// followed by the arguments for Application; left then right for Arith and
// Logic; the parameters followed by the body for Lambda. Leaves return
// nil.
func Children(n Node) []Node {
	switch e := n.(type) {
	case Cond:
		return []Node{e.test, e.csq, e.alt}
	case Lambda:
		list := make([]Node, 0, len(e.params)+len(e.body))
		for i := range e.params {
			list = append(list, e.params[i])
		}
		for i := range e.body {
			list = append(list, e.body[i])
		}
		return list
	case Function:
		list := make([]Node, 0, len(e.clauses))
		for i := range e.clauses {
			list = append(list, e.clauses[i])
		}
		return list
	case Application:
		list := make([]Node, 0, len(e.args)+1)
		list = append(list, e.callee)
		for i := range e.args {
			list = append(list, e.args[i])
		}
		return list
	case Arith:
		return []Node{e.left, e.right}
	case Logic:
		return []Node{e.left, e.right}
	default:
		return nil
	}
}

type Visitor interface {
	Visit(n Node) Visitor
}

// Walk traverses the tree rooted at n depth first, visiting each node
// exactly once in field order. The visitor returned by Visit is used for
// the children of n; a nil visitor prunes the subtree.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at n in the same order as Walk. If fn
// returns false for a node, its children are skipped.
func Inspect(n Node, fn func(Node) bool) {
	Walk(inspector(fn), n)
}

// Fold reduces the tree rooted at n, calling fn for each node before its
// children, in the same order as Walk.
func Fold[T any](n Node, acc T, fn func(T, Node) T) T {
	acc = fn(acc, n)
	for _, c := range Children(n) {
		acc = Fold(c, acc, fn)
	}
	return acc
}
