package ast

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

const (
	tagNumber uint8 = iota + 1
	tagLiteral
	tagBoolean
	tagCond
	tagLambda
	tagFunction
	tagApplication
	tagArith
	tagLogic
)

// Hash returns a structural hash of the tree rooted at n, derived from the
// case tag, the payload and the children of each node in field order. The
// hash is stable across runs and processes: structurally equal trees hash
// to the same value. It never consults node identity.
func Hash(n Node) uint64 {
	h := fnv.New64a()
	hashNode(h, n)
	return h.Sum64()
}

func hashNode(w io.Writer, n Node) {
	switch e := n.(type) {
	case Number:
		writeTag(w, tagNumber)
		writeInt(w, uint64(e.value))
	case Literal:
		writeTag(w, tagLiteral)
		writeInt(w, uint64(len(e.value)))
		io.WriteString(w, e.value)
	case Boolean:
		writeTag(w, tagBoolean)
		if e.value {
			writeTag(w, 1)
		} else {
			writeTag(w, 0)
		}
	case Cond:
		writeTag(w, tagCond)
		hashNode(w, e.test)
		hashNode(w, e.csq)
		hashNode(w, e.alt)
	case Lambda:
		writeTag(w, tagLambda)
		writeInt(w, uint64(len(e.params)))
		for i := range e.params {
			hashNode(w, e.params[i])
		}
		writeInt(w, uint64(len(e.body)))
		for i := range e.body {
			hashNode(w, e.body[i])
		}
	case Function:
		writeTag(w, tagFunction)
		writeInt(w, uint64(len(e.clauses)))
		for i := range e.clauses {
			hashNode(w, e.clauses[i])
		}
	case Application:
		writeTag(w, tagApplication)
		hashNode(w, e.callee)
		writeInt(w, uint64(len(e.args)))
		for i := range e.args {
			hashNode(w, e.args[i])
		}
	case Arith:
		writeTag(w, tagArith)
		writeTag(w, uint8(e.op))
		hashNode(w, e.left)
		hashNode(w, e.right)
	case Logic:
		writeTag(w, tagLogic)
		writeTag(w, uint8(e.op))
		hashNode(w, e.left)
		hashNode(w, e.right)
	}
}

func writeTag(w io.Writer, tag uint8) {
	w.Write([]byte{tag})
}

func writeInt(w io.Writer, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	w.Write(buf[:])
}
