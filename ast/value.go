package ast

import (
	"fmt"
	"hash"
	"hash/fnv"
	"strconv"
	"time"
)

type ValueType int

const (
	ValueNull ValueType = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueTime
	ValueOther
)

// Value is a bind parameter.
type Value struct {
	Val       any
	ValueType ValueType
}

func Val(val any) *Value {
	return &Value{Val: val, ValueType: valueTypeOf(val)}
}

func valueTypeOf(val any) ValueType {
	switch val.(type) {
	case nil:
		return ValueNull
	case bool:
		return ValueBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ValueInt
	case float32, float64:
		return ValueFloat
	case string:
		return ValueString
	case time.Time:
		return ValueTime
	default:
		return ValueOther
	}
}

func (v *Value) Type() NodeType           { return NodeValue }
func (v *Value) Accept(vis Visitor) error { return vis.VisitValue(v) }
func (v *Value) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("val:"))
	writeValue(h, v.Val)
	return h.Sum64()
}

// writeValue hashes val framed by its Go type and printed length, so
// neighbouring values cannot run into each other and int32(7) differs from
// int64(7).
func writeValue(h hash.Hash64, val any) {
	printed := fmt.Sprint(val)
	_, _ = h.Write([]byte(fmt.Sprintf("%T:", val)))
	_, _ = h.Write([]byte(strconv.Itoa(len(printed)) + ":"))
	_, _ = h.Write([]byte(printed))
}

func (*Value) expressionNode() {}
