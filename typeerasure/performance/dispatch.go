package performance

// Sink 显式的副作用接收器，每次draw都写到这里，防止编译器把调用优化掉
type Sink struct {
	Slots [2]int
	Calls int
}

// Drawable 基准测试用的能力约束
type Drawable interface {
	Draw(s *Sink)
}

// ==================== 虚函数风格：公共"基类" + 覆盖 ====================

// Shape 相当于带虚函数的基类
type Shape interface {
	Draw(s *Sink)
}

// BaseShape 默认实现什么都不做
type BaseShape struct{}

func (BaseShape) Draw(s *Sink) {}

type FirstShape struct{ BaseShape }

func (*FirstShape) Draw(s *Sink) {
	s.Slots[0] = 42
	s.Calls++
}

type SecondShape struct{ BaseShape }

func (*SecondShape) Draw(s *Sink) {
	s.Slots[1] = 101
	s.Calls++
}

// ==================== 类型擦除：彼此毫无关系的类型 ====================

type MyClass struct{}

func (MyClass) Draw(s *Sink) {
	s.Slots[0] = 42
	s.Calls++
}

type MyOtherClass struct{}

func (MyOtherClass) Draw(s *Sink) {
	s.Slots[1] = 101
	s.Calls++
}

// drawSwitch type switch分派，作为对照组
func drawSwitch(x any, s *Sink) {
	switch v := x.(type) {
	case MyClass:
		v.Draw(s)
	case MyOtherClass:
		v.Draw(s)
	default:
		panic("performance: unexpected element type in switch fixture")
	}
}
