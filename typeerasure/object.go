package typeerasure

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

/*
基于概念的多态（concept-based polymorphism），也叫类型擦除。

传统做法是让所有类型去"继承"同一个基类（在Go里就是让所有类型去实现同一个导出接口），
调用方拿到的是一个指向基类的引用，值语义就此丢失。
类型擦除反过来：具体类型只需要"恰好能画"，包装时由泛型为每个具体类型T生成一个小适配器(model[T])，
外层Object只持有内部接口concept，调用时多一次间接调用，换来的是异构类型可以放进同一个同构容器。

Object可以随意拷贝，所有拷贝共享同一个不可变的model；最后一个引用消失后model由GC回收。
*/

// ErrInvalidObject 对零值Object调用Draw，相当于断言失败
var ErrInvalidObject = errors.New("typeerasure: draw on invalid object")

// Drawer 能力约束：能把自己画到w上即可，不要求任何显式声明
type Drawer interface {
	Draw(w io.Writer)
}

// concept 内部接口，每个model[T]实现它
type concept interface {
	draw(w io.Writer)
	typeName() string
}

// model 为每个具体类型T生成一份，data在包装时拷贝进来，之后不再修改
type model[T any] struct {
	data T
	fn   func(io.Writer, T)
}

func (m *model[T]) draw(w io.Writer) { m.fn(w, m.data) }
func (m *model[T]) typeName() string  { return fmt.Sprintf("%T", m.data) }

// Object 值语义的多态包装
type Object struct {
	self concept
}

// New 包装一个自带Draw方法的值
func New[T Drawer](v T) Object {
	return Object{self: &model[T]{data: v, fn: drawMethod[T]}}
}

// Adapt 包装任意值，能力由自由函数draw提供，适配器在包装时确定
func Adapt[T any](v T, draw func(io.Writer, T)) Object {
	if draw == nil {
		panic(errors.Errorf("typeerasure: nil draw function for %T", v))
	}
	return Object{self: &model[T]{data: v, fn: draw}}
}

// Of 包装任意值：T有Draw方法就用它，否则按%v输出一行
func Of[T any](v T) Object {
	if _, ok := any(v).(Drawer); ok {
		return Adapt(v, drawDynamic[T])
	}
	return Adapt(v, drawDefault[T])
}

func drawMethod[T Drawer](w io.Writer, v T) { v.Draw(w) }

func drawDynamic[T any](w io.Writer, v T) { any(v).(Drawer).Draw(w) }

func drawDefault[T any](w io.Writer, v T) { fmt.Fprintln(w, v) }

// Draw 转发给内部model，调用方不需要知道具体类型
func (o Object) Draw(w io.Writer) {
	if o.self == nil {
		panic(ErrInvalidObject)
	}
	o.self.draw(w)
}

// Valid 零值Object不可用
func (o Object) Valid() bool { return o.self != nil }

// TypeName 返回被包装值的具体类型名
func (o Object) TypeName() string {
	if o.self == nil {
		return "<invalid>"
	}
	return o.self.typeName()
}

// Same 判断两个Object是否共享同一个model
func (o Object) Same(other Object) bool {
	return o.self != nil && o.self == other.self
}
