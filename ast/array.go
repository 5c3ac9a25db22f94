package ast

import (
	"hash/fnv"
	"strconv"
)

// Array is a parenthesised list of bind values, the right operand of IN.
type Array struct {
	Values []Value
}

func NewArray(values []any) *Array {
	a := &Array{Values: make([]Value, 0, len(values))}
	for _, val := range values {
		a.Values = append(a.Values, Value{Val: val, ValueType: valueTypeOf(val)})
	}
	return a
}

func (a *Array) Type() NodeType {
	return NodeArray
}

func (a *Array) Accept(v Visitor) error {
	return v.VisitArray(a)
}

func (a *Array) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("array:" + strconv.Itoa(len(a.Values)) + ":"))
	for _, val := range a.Values {
		writeValue(h, val.Val)
	}
	return h.Sum64()
}

func (*Array) expressionNode() {}
