package passmanager

import (
	"fmt"

	"github.com/pkg/errors"
)

// ForEach 把处理单元U的pass提升为处理容器M的pass，
// 例如把函数级pass用在整个模块上
type ForEach[M, U any] struct {
	units func(M) []U
	pass  Pass[U]
}

func NewForEach[M, U any, P Pass[U]](units func(M) []U, pass P) *ForEach[M, U] {
	return &ForEach[M, U]{units: units, pass: pass}
}

func (a *ForEach[M, U]) Name() string { return "foreach(" + nameOf(a.pass) + ")" }

func (a *ForEach[M, U]) Run(m M) error {
	for i, u := range a.units(m) {
		if err := a.pass.Run(u); err != nil {
			switch n := any(u).(type) {
			case Named:
				return errors.Wrapf(err, "unit %s", n.Name())
			case fmt.Stringer:
				return errors.Wrapf(err, "unit %s", n.String())
			default:
				return errors.Wrapf(err, "unit #%d", i)
			}
		}
	}
	return nil
}
