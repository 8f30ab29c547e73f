package ast

// Equal reports whether a and b are structurally equal: same case, equal
// payloads and operator tags, and pairwise equal children in field order.
// Equality is purely structural; it knows nothing of the meaning of the
// expressions it compares.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x.value == y.value
	case Literal:
		y, ok := b.(Literal)
		return ok && x.value == y.value
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x.value == y.value
	case Cond:
		y, ok := b.(Cond)
		return ok && Equal(x.test, y.test) && Equal(x.csq, y.csq) && Equal(x.alt, y.alt)
	case Lambda:
		y, ok := b.(Lambda)
		return ok && equalAll(x.params, y.params) && equalAll(x.body, y.body)
	case Function:
		y, ok := b.(Function)
		if !ok || len(x.clauses) != len(y.clauses) {
			return false
		}
		for i := range x.clauses {
			if !Equal(x.clauses[i], y.clauses[i]) {
				return false
			}
		}
		return true
	case Application:
		y, ok := b.(Application)
		if !ok || !Equal(x.callee, y.callee) {
			return false
		}
		return equalAll(x.args, y.args)
	case Arith:
		y, ok := b.(Arith)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	case Logic:
		y, ok := b.(Logic)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	default:
		return false
	}
}

func equalAll(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
