package passmanager

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
)

// ErrVerify 模块校验失败
var ErrVerify = errors.New("verify failed")

// Module 演示用的极简IR
type Module struct {
	Name      string
	Functions []*Function
}

type Function struct {
	Name         string
	Instructions []string
}

func (f *Function) String() string { return f.Name }

// FunctionsOf ForEach用来枚举模块里的函数
func FunctionsOf(m *Module) []*Function { return m.Functions }

// Draw 打印模块内容
func (m *Module) Draw(w io.Writer) {
	fmt.Fprintf(w, "module %s\n", m.Name)
	for _, f := range m.Functions {
		fmt.Fprintf(w, "  func %s (%d instructions)\n", f.Name, len(f.Instructions))
		for _, ins := range f.Instructions {
			fmt.Fprintf(w, "    %s\n", ins)
		}
	}
}

// Verifier 模块级pass：函数名非空且不重复
type Verifier struct{}

func (Verifier) Name() string { return "verify" }

func (Verifier) Run(m *Module) error {
	seen := make(map[string]struct{}, len(m.Functions))
	for i, f := range m.Functions {
		if f == nil || f.Name == "" {
			return errors.Wrapf(ErrVerify, "function #%d has no name", i)
		}
		if _, ok := seen[f.Name]; ok {
			return errors.Wrapf(ErrVerify, "duplicate function %q", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// NopEliminator 函数级pass：删除nop指令
type NopEliminator struct {
	Removed int
}

func (*NopEliminator) Name() string { return "eliminate-nops" }

func (e *NopEliminator) Run(f *Function) error {
	before := len(f.Instructions)
	f.Instructions = slices.DeleteFunc(f.Instructions, func(ins string) bool { return ins == "nop" })
	e.Removed += before - len(f.Instructions)
	return nil
}

// InstructionCounter 函数级pass：统计每个函数的指令数
type InstructionCounter struct {
	Total       int
	PerFunction map[string]int
}

func (*InstructionCounter) Name() string { return "count-instructions" }

func (c *InstructionCounter) Run(f *Function) error {
	if c.PerFunction == nil {
		c.PerFunction = make(map[string]int)
	}
	c.PerFunction[f.Name] = len(f.Instructions)
	c.Total += len(f.Instructions)
	return nil
}
