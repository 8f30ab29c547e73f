package ast

// Map rewrites the tree rooted at expr bottom up: children are mapped
// first, then fn is applied to the node rebuilt from the mapped children.
// The input tree is left untouched; Map returns a new tree.
func Map(expr Expr, fn func(Expr) Expr) Expr {
	switch e := expr.(type) {
	case Cond:
		expr = NewCond(Map(e.test, fn), Map(e.csq, fn), Map(e.alt, fn))
	case Function:
		clauses := make([]Lambda, 0, len(e.clauses))
		for i := range e.clauses {
			clauses = append(clauses, mapClause(e.clauses[i], fn))
		}
		expr = NewFunction(clauses[0], clauses[1:]...)
	case Application:
		args := make([]Expr, 0, len(e.args))
		for i := range e.args {
			args = append(args, Map(e.args[i], fn))
		}
		expr = NewApplication(Map(e.callee, fn), args)
	case Arith:
		expr = NewArith(e.op, Map(e.left, fn), Map(e.right, fn))
	case Logic:
		expr = NewLogic(e.op, Map(e.left, fn), Map(e.right, fn))
	}
	return fn(expr)
}

func mapClause(clause Lambda, fn func(Expr) Expr) Lambda {
	var (
		params = make([]Expr, 0, len(clause.params))
		body   = make([]Expr, 0, len(clause.body))
	)
	for i := range clause.params {
		params = append(params, Map(clause.params[i], fn))
	}
	for i := range clause.body {
		body = append(body, Map(clause.body[i], fn))
	}
	return NewLambda(params, body)
}
