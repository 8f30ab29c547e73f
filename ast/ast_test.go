package ast

import (
	"testing"

	"github.com/midbel/lambda/op"
)

func TestNumber(t *testing.T) {
	expr := NewNumber(42)
	num, ok := expr.(Number)
	if !ok {
		t.Errorf("number expected but got %T", expr)
		return
	}
	if num.Int() != 42 {
		t.Errorf("number value mismatched! want 42, got %d", num.Int())
	}
	if got := num.KindOf(); got != "number" {
		t.Errorf("kind mismatched! want number, got %s", got)
	}
}

func TestLiteral(t *testing.T) {
	expr := NewLiteral("foobar")
	lit, ok := expr.(Literal)
	if !ok {
		t.Errorf("literal expected but got %T", expr)
		return
	}
	if lit.Text() != "foobar" {
		t.Errorf("literal value mismatched! want foobar, got %s", lit.Text())
	}
	if got := lit.KindOf(); got != "literal" {
		t.Errorf("kind mismatched! want literal, got %s", got)
	}
}

func TestBoolean(t *testing.T) {
	expr := NewBoolean(true)
	b, ok := expr.(Boolean)
	if !ok {
		t.Errorf("boolean expected but got %T", expr)
		return
	}
	if !b.Bool() {
		t.Errorf("boolean value mismatched! want true, got false")
	}
	if got := b.KindOf(); got != "boolean" {
		t.Errorf("kind mismatched! want boolean, got %s", got)
	}
}

func TestCond(t *testing.T) {
	expr := NewCond(NewNumber(1), NewLiteral("a"), NewLiteral("b"))
	cond, ok := expr.(Cond)
	if !ok {
		t.Errorf("cond expected but got %T", expr)
		return
	}
	if !Equal(cond.Test(), NewNumber(1)) {
		t.Errorf("test mismatched! want number(1), got %s", DumpExpr(cond.Test()))
	}
	if !Equal(cond.Then(), NewLiteral("a")) {
		t.Errorf("then mismatched! want literal(a), got %s", DumpExpr(cond.Then()))
	}
	if !Equal(cond.Else(), NewLiteral("b")) {
		t.Errorf("else mismatched! want literal(b), got %s", DumpExpr(cond.Else()))
	}
}

func TestLambda(t *testing.T) {
	clause := NewLambda(
		[]Expr{NewLiteral("x"), NewLiteral("y")},
		[]Expr{NewArith(op.Add, NewLiteral("x"), NewLiteral("y"))},
	)
	params := clause.Params()
	if len(params) != 2 {
		t.Errorf("params count mismatched! want 2, got %d", len(params))
		return
	}
	if !Equal(params[0], NewLiteral("x")) || !Equal(params[1], NewLiteral("y")) {
		t.Errorf("params order mismatched! got %s, %s", DumpExpr(params[0]), DumpExpr(params[1]))
	}
	body := clause.Body()
	if len(body) != 1 {
		t.Errorf("body count mismatched! want 1, got %d", len(body))
		return
	}
	if !Equal(body[0], NewArith(op.Add, NewLiteral("x"), NewLiteral("y"))) {
		t.Errorf("body mismatched! got %s", DumpExpr(body[0]))
	}
	empty := NewLambda(nil, nil)
	if len(empty.Params()) != 0 || len(empty.Body()) != 0 {
		t.Errorf("empty clause should have no params and no body")
	}
}

func TestFunction(t *testing.T) {
	var (
		first  = NewLambda(nil, []Expr{NewNumber(1)})
		second = NewLambda([]Expr{NewLiteral("x")}, []Expr{NewLiteral("x")})
	)
	expr := NewFunction(first, second)
	fn, ok := expr.(Function)
	if !ok {
		t.Errorf("function expected but got %T", expr)
		return
	}
	clauses := fn.Clauses()
	if len(clauses) != 2 {
		t.Errorf("clauses count mismatched! want 2, got %d", len(clauses))
		return
	}
	if !Equal(clauses[0], first) {
		t.Errorf("first clause mismatched!")
	}
	if !Equal(clauses[1], second) {
		t.Errorf("second clause mismatched!")
	}
	single, ok := NewFunction(first).(Function)
	if !ok {
		t.Errorf("function expected")
		return
	}
	if len(single.Clauses()) != 1 {
		t.Errorf("clauses count mismatched! want 1, got %d", len(single.Clauses()))
	}
}

func TestApplication(t *testing.T) {
	expr := NewApplication(NewLiteral("f"), []Expr{NewNumber(1), NewNumber(2)})
	app, ok := expr.(Application)
	if !ok {
		t.Errorf("application expected but got %T", expr)
		return
	}
	if !Equal(app.Callee(), NewLiteral("f")) {
		t.Errorf("callee mismatched! got %s", DumpExpr(app.Callee()))
	}
	args := app.Args()
	if len(args) != 2 {
		t.Errorf("args count mismatched! want 2, got %d", len(args))
		return
	}
	if !Equal(args[0], NewNumber(1)) || !Equal(args[1], NewNumber(2)) {
		t.Errorf("args order mismatched! got %s, %s", DumpExpr(args[0]), DumpExpr(args[1]))
	}
	zero, ok := NewApplication(NewLiteral("f"), nil).(Application)
	if !ok {
		t.Errorf("application expected")
		return
	}
	if len(zero.Args()) != 0 {
		t.Errorf("zero argument call should have no args, got %d", len(zero.Args()))
	}
	if Equal(zero, expr) {
		t.Errorf("zero argument call equals two argument call")
	}
}

func TestArithExpr(t *testing.T) {
	expr := NewArith(op.Add, NewNumber(2), NewNumber(3))
	bin, ok := expr.(Arith)
	if !ok {
		t.Errorf("arith expected but got %T", expr)
		return
	}
	if bin.Op() != op.Add {
		t.Errorf("operator mismatched! want add, got %s", bin.Op())
	}
	if !Equal(bin.Left(), NewNumber(2)) {
		t.Errorf("left operand mismatched! got %s", DumpExpr(bin.Left()))
	}
	if !Equal(bin.Right(), NewNumber(3)) {
		t.Errorf("right operand mismatched! got %s", DumpExpr(bin.Right()))
	}
}

func TestLogicExpr(t *testing.T) {
	expr := NewLogic(op.Xor, NewBoolean(true), NewBoolean(false))
	bin, ok := expr.(Logic)
	if !ok {
		t.Errorf("logic expected but got %T", expr)
		return
	}
	if bin.Op() != op.Xor {
		t.Errorf("operator mismatched! want xor, got %s", bin.Op())
	}
	if !Equal(bin.Left(), NewBoolean(true)) {
		t.Errorf("left operand mismatched! got %s", DumpExpr(bin.Left()))
	}
	if !Equal(bin.Right(), NewBoolean(false)) {
		t.Errorf("right operand mismatched! got %s", DumpExpr(bin.Right()))
	}
}

func TestOwnership(t *testing.T) {
	args := []Expr{NewNumber(1)}
	expr := NewApplication(NewLiteral("f"), args)
	args[0] = NewNumber(9)
	app, ok := expr.(Application)
	if !ok {
		t.Errorf("application expected but got %T", expr)
		return
	}
	if !Equal(app.Args()[0], NewNumber(1)) {
		t.Errorf("arguments storage shared with caller")
	}
	view := app.Args()
	view[0] = NewNumber(9)
	if !Equal(app.Args()[0], NewNumber(1)) {
		t.Errorf("arguments accessor exposes internal storage")
	}

	params := []Expr{NewLiteral("x")}
	clause := NewLambda(params, nil)
	params[0] = NewLiteral("y")
	if !Equal(clause.Params()[0], NewLiteral("x")) {
		t.Errorf("parameters storage shared with caller")
	}
}

func TestNodeStrings(t *testing.T) {
	clause := NewLambda([]Expr{NewLiteral("x")}, []Expr{NewLiteral("x")})
	tests := []struct {
		Node Node
		Want string
	}{
		{Node: NewNumber(42), Want: "42"},
		{Node: NewNumber(-7), Want: "-7"},
		{Node: NewLiteral("foo"), Want: "\"foo\""},
		{Node: NewBoolean(true), Want: "true"},
		{Node: NewBoolean(false), Want: "false"},
		{
			Node: NewCond(NewNumber(1), NewLiteral("a"), NewLiteral("b")),
			Want: "if (1) {\"a\"} else {\"b\"}",
		},
		{Node: NewArith(op.Add, NewNumber(2), NewNumber(3)), Want: "2 + 3"},
		{Node: NewArith(op.Pow, NewNumber(2), NewNumber(8)), Want: "2 ^ 8"},
		{Node: NewArith(op.Mod, NewNumber(7), NewNumber(2)), Want: "7 % 2"},
		{
			Node: NewLogic(op.And, NewBoolean(true), NewBoolean(false)),
			Want: "true and false",
		},
		{Node: clause, Want: "func(\"x\") { \"x\" }"},
		{Node: NewFunction(clause), Want: "func(\"x\") { \"x\" }"},
		{
			Node: NewFunction(clause, NewLambda(nil, []Expr{NewNumber(0)})),
			Want: "func(\"x\") { \"x\" } | func() { 0 }",
		},
		{
			Node: NewApplication(NewLiteral("f"), []Expr{NewNumber(1), NewNumber(2)}),
			Want: "\"f\"(1, 2)",
		},
		{Node: NewApplication(NewLiteral("f"), nil), Want: "\"f\"()"},
	}
	for _, c := range tests {
		if got := c.Node.String(); got != c.Want {
			t.Errorf("%s: string mismatched! want %s, got %s", c.Node.KindOf(), c.Want, got)
		}
	}
}
