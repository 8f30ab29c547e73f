package op

import (
	"fmt"
)

type Arith int8

const (
	Add Arith = iota + 1
	Sub
	Mul
	Div
	Mod
	Pow
)

type Logic int8

const (
	And Logic = iota + 1
	Or
	Xor
)

var arithNames = map[Arith]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Mod: "mod",
	Pow: "pow",
}

var arithSymbols = map[Arith]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Pow: "^",
}

var logicNames = map[Logic]string{
	And: "and",
	Or:  "or",
	Xor: "xor",
}

func (a Arith) String() string {
	str, ok := arithNames[a]
	if !ok {
		return "unknown"
	}
	return str
}

func (a Arith) Symbol() string {
	return arithSymbols[a]
}

func (l Logic) String() string {
	str, ok := logicNames[l]
	if !ok {
		return "unknown"
	}
	return str
}

func (l Logic) Symbol() string {
	return logicNames[l]
}

func ArithFromString(str string) (Arith, error) {
	switch str {
	case "add", "+":
		return Add, nil
	case "sub", "-":
		return Sub, nil
	case "mul", "*":
		return Mul, nil
	case "div", "/":
		return Div, nil
	case "mod", "%":
		return Mod, nil
	case "pow", "^":
		return Pow, nil
	default:
		return 0, fmt.Errorf("%s invalid arithmetic operator", str)
	}
}

func LogicFromString(str string) (Logic, error) {
	switch str {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "xor":
		return Xor, nil
	default:
		return 0, fmt.Errorf("%s invalid logical operator", str)
	}
}
