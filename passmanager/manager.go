package passmanager

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
同一套"概念/模型"思路用在编译器的pass管线上：
Manager只认识内部接口passConcept，每种具体pass在AddPass时实例化一个passModel[U, P]。
pass之间没有任何公共基类，只要有Run(U) error方法即可。
*/

// Pass 处理单元U的一个pass
type Pass[U any] interface {
	Run(u U) error
}

// PassFunc 让普通函数也能当pass用
type PassFunc[U any] func(u U) error

func (f PassFunc[U]) Run(u U) error { return f(u) }

// Named 可选能力，出错时用于定位是哪个pass
type Named interface {
	Name() string
}

type passConcept[U any] interface {
	run(u U) error
	name() string
}

type passModel[U any, P Pass[U]] struct {
	pass P
}

func (m *passModel[U, P]) run(u U) error { return m.pass.Run(u) }
func (m *passModel[U, P]) name() string  { return nameOf(m.pass) }

// Manager 按插入顺序执行pass，自身也是一个Pass[U]，可以嵌套
type Manager[U any] struct {
	name   string
	passes []passConcept[U]
}

func NewManager[U any](name string) *Manager[U] {
	return &Manager[U]{name: name}
}

// AddPass 方法不能带类型参数，所以写成函数
func AddPass[U any, P Pass[U]](m *Manager[U], p P) {
	m.passes = append(m.passes, &passModel[U, P]{pass: p})
}

func (m *Manager[U]) Len() int { return len(m.passes) }

func (m *Manager[U]) Name() string { return m.name }

// Names 返回所有pass的名字，顺序与执行顺序一致
func (m *Manager[U]) Names() []string {
	names := make([]string, 0, len(m.passes))
	for _, p := range m.passes {
		names = append(names, p.name())
	}
	return names
}

// Run 遇到第一个错误即停止，错误里带上pass序号和名字
func (m *Manager[U]) Run(u U) error {
	for i, p := range m.passes {
		if err := p.run(u); err != nil {
			return errors.Wrapf(err, "pass #%d (%s)", i, p.name())
		}
	}
	return nil
}

func nameOf(v any) string {
	if n, ok := v.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", v)
}
