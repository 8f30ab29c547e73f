package ast

// Interner deduplicates structurally equal trees. Intern returns the
// first tree seen for a given structure, so external passes can share one
// instance per distinct shape and key memoization tables by it. An
// Interner is not safe for concurrent use.
type Interner struct {
	seen map[uint64][]Expr
}

func NewInterner() *Interner {
	return &Interner{
		seen: make(map[uint64][]Expr),
	}
}

func (i *Interner) Intern(expr Expr) Expr {
	sum := Hash(expr)
	for _, e := range i.seen[sum] {
		if Equal(e, expr) {
			return e
		}
	}
	i.seen[sum] = append(i.seen[sum], expr)
	return expr
}

// Len returns the number of distinct trees interned so far.
func (i *Interner) Len() int {
	var n int
	for _, list := range i.seen {
		n += len(list)
	}
	return n
}
