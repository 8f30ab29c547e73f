// Package ast defines the expression tree of a small lambda language: a
// closed set of expression cases, the function clause node, and the
// operations to build, inspect, compare, hash, and rewrite trees.
//
// Nodes are immutable once constructed. Constructors copy the sequences
// they are given and accessors return copies; a built tree is safe for
// concurrent readers. Nodes contain slices and are not comparable with
// the == operator; use Equal.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/midbel/lambda/internal/slx"
	"github.com/midbel/lambda/op"
)

// Node is implemented by every tree node: the expression cases plus the
// Lambda clause.
type Node interface {
	fmt.Stringer

	KindOf() string

	node()
}

// Expr is implemented by the expression cases. The set is closed: Number,
// Literal, Boolean, Cond, Function, Application, Arith and Logic.
type Expr interface {
	Node

	expr()
}

type Number struct {
	value int64
}

func NewNumber(value int64) Expr {
	return Number{
		value: value,
	}
}

func (n Number) Int() int64 {
	return n.value
}

func (n Number) String() string {
	return strconv.FormatInt(n.value, 10)
}

func (Number) KindOf() string {
	return "number"
}

type Literal struct {
	value string
}

func NewLiteral(value string) Expr {
	return Literal{
		value: value,
	}
}

func (i Literal) Text() string {
	return i.value
}

func (i Literal) String() string {
	return fmt.Sprintf("\"%s\"", i.value)
}

func (Literal) KindOf() string {
	return "literal"
}

type Boolean struct {
	value bool
}

func NewBoolean(value bool) Expr {
	return Boolean{
		value: value,
	}
}

func (b Boolean) Bool() bool {
	return b.value
}

func (b Boolean) String() string {
	return strconv.FormatBool(b.value)
}

func (Boolean) KindOf() string {
	return "boolean"
}

type Cond struct {
	test Expr
	csq  Expr
	alt  Expr
}

func NewCond(test, csq, alt Expr) Expr {
	return Cond{
		test: test,
		csq:  csq,
		alt:  alt,
	}
}

func (c Cond) Test() Expr {
	return c.test
}

func (c Cond) Then() Expr {
	return c.csq
}

func (c Cond) Else() Expr {
	return c.alt
}

func (c Cond) String() string {
	return fmt.Sprintf("if (%s) {%s} else {%s}", c.test.String(), c.csq.String(), c.alt.String())
}

func (Cond) KindOf() string {
	return "cond"
}

// Lambda is a single function clause. Parameters are expressions: the case
// set defines no dedicated identifier node, so producers choose which case
// stands for a parameter name.
type Lambda struct {
	params []Expr
	body   []Expr
}

// NewLambda builds a clause from its parameters and body, both kept in the
// order given. The body is a sequence; by convention its final expression
// is the value of the clause. Both sequences may be empty.
func NewLambda(params, body []Expr) Lambda {
	return Lambda{
		params: slx.Make(params...),
		body:   slx.Make(body...),
	}
}

func (f Lambda) Params() []Expr {
	return slx.Make(f.params...)
}

func (f Lambda) Body() []Expr {
	return slx.Make(f.body...)
}

func (f Lambda) String() string {
	var (
		params = slx.Map(f.params, Expr.String)
		body   = slx.Map(f.body, Expr.String)
	)
	return fmt.Sprintf("func(%s) { %s }", strings.Join(params, ", "), strings.Join(body, "; "))
}

func (Lambda) KindOf() string {
	return "func"
}

type Function struct {
	clauses []Lambda
}

// NewFunction builds a function from one or more clauses, kept in the
// order given. Selecting a clause at application time is left to the
// consumer; the usual policy is the first clause whose parameter count
// matches the argument count of the call.
func NewFunction(clause Lambda, rest ...Lambda) Expr {
	return Function{
		clauses: append(slx.One(clause), rest...),
	}
}

func (f Function) Clauses() []Lambda {
	return slx.Make(f.clauses...)
}

func (f Function) String() string {
	list := slx.Map(f.clauses, Lambda.String)
	return strings.Join(list, " | ")
}

func (Function) KindOf() string {
	return "function"
}

type Application struct {
	callee Expr
	args   []Expr
}

// NewApplication builds a call of callee to args. An empty argument list
// is a valid zero-argument call.
func NewApplication(callee Expr, args []Expr) Expr {
	return Application{
		callee: callee,
		args:   slx.Make(args...),
	}
}

func (a Application) Callee() Expr {
	return a.callee
}

func (a Application) Args() []Expr {
	return slx.Make(a.args...)
}

func (a Application) String() string {
	var args []string
	for i := range a.args {
		args = append(args, a.args[i].String())
	}
	return fmt.Sprintf("%s(%s)", a.callee.String(), strings.Join(args, ", "))
}

func (Application) KindOf() string {
	return "application"
}

type Arith struct {
	op    op.Arith
	left  Expr
	right Expr
}

func NewArith(oper op.Arith, left, right Expr) Expr {
	return Arith{
		op:    oper,
		left:  left,
		right: right,
	}
}

func (b Arith) Op() op.Arith {
	return b.op
}

func (b Arith) Left() Expr {
	return b.left
}

func (b Arith) Right() Expr {
	return b.right
}

func (b Arith) String() string {
	oper := b.op.Symbol()
	return fmt.Sprintf("%s %s %s", b.left.String(), oper, b.right.String())
}

func (Arith) KindOf() string {
	return "arith"
}

type Logic struct {
	op    op.Logic
	left  Expr
	right Expr
}

func NewLogic(oper op.Logic, left, right Expr) Expr {
	return Logic{
		op:    oper,
		left:  left,
		right: right,
	}
}

func (b Logic) Op() op.Logic {
	return b.op
}

func (b Logic) Left() Expr {
	return b.left
}

func (b Logic) Right() Expr {
	return b.right
}

func (b Logic) String() string {
	oper := b.op.Symbol()
	return fmt.Sprintf("%s %s %s", b.left.String(), oper, b.right.String())
}

func (Logic) KindOf() string {
	return "logic"
}

func (Number) node()      {}
func (Literal) node()     {}
func (Boolean) node()     {}
func (Cond) node()        {}
func (Lambda) node()      {}
func (Function) node()    {}
func (Application) node() {}
func (Arith) node()       {}
func (Logic) node()       {}

func (Number) expr()      {}
func (Literal) expr()     {}
func (Boolean) expr()     {}
func (Cond) expr()        {}
func (Function) expr()    {}
func (Application) expr() {}
func (Arith) expr()       {}
func (Logic) expr()       {}
