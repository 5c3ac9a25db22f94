package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeColumn
	NodeTable
	NodeRaw
	NodeValue
	NodeArray
	NodeFunction
	NodeGroupedExpr
	NodeBinaryExpr
	NodeUnaryExpr
	NodeJoin
	NodeOrderBy
	NodeLimit
)

var nodeTypeNames = [...]string{
	NodeSelect:      "select",
	NodeColumn:      "column",
	NodeTable:       "table",
	NodeRaw:         "raw",
	NodeValue:       "value",
	NodeArray:       "array",
	NodeFunction:    "function",
	NodeGroupedExpr: "grouped",
	NodeBinaryExpr:  "binary",
	NodeUnaryExpr:   "unary",
	NodeJoin:        "join",
	NodeOrderBy:     "order_by",
	NodeLimit:       "limit",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

// Expression is anything that can be projected in a select list, compared in a
// condition, or sorted on.
type Expression interface {
	Node
	expressionNode()
}

// Condition is a boolean predicate usable in WHERE and in AND/OR combinations.
type Condition interface {
	Expression
	conditionNode()
}
