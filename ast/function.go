package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

type Function struct {
	Name string
	Args []Expression
}

// Fn builds a function call such as Fn("COUNT", Star()).
func Fn(name string, args ...Expression) *Function {
	return &Function{Name: name, Args: args}
}

func (f *Function) Type() NodeType         { return NodeFunction }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
func (f *Function) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("func:" + f.Name))
	for _, arg := range f.Args {
		if arg != nil {
			_, _ = h.Write(utils.U64ToBytes(arg.Fingerprint()))
		}
	}
	return h.Sum64()
}

func (*Function) expressionNode() {}
