package main

import (
	"flag"
	"fmt"

	"github.com/kr/pretty"
	"github.com/midbel/lambda/ast"
	"github.com/midbel/lambda/op"
)

func main() {
	raw := flag.Bool("raw", false, "print raw nodes")
	flag.Parse()

	double := ast.NewFunction(ast.NewLambda(
		[]ast.Expr{ast.NewLiteral("n")},
		[]ast.Expr{ast.NewArith(op.Mul, ast.NewLiteral("n"), ast.NewNumber(2))},
	))
	samples := []ast.Expr{
		ast.NewArith(op.Add, ast.NewNumber(2), ast.NewNumber(3)),
		ast.NewLogic(op.Xor, ast.NewBoolean(true), ast.NewBoolean(false)),
		ast.NewCond(ast.NewBoolean(true), ast.NewLiteral("yes"), ast.NewLiteral("no")),
		double,
		ast.NewApplication(double, []ast.Expr{ast.NewNumber(21)}),
		ast.NewApplication(ast.NewLiteral("list"), nil),
	}
	for _, expr := range samples {
		fmt.Println(expr)
		fmt.Println(ast.DumpExpr(expr))
		fmt.Printf("hash: %016x\n", ast.Hash(expr))
		if *raw {
			pretty.Println(expr)
		}
		fmt.Println()
	}
}
