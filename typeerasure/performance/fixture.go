package performance

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidConfig 基准配置不合法
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Variant 分派方式
type Variant string

const (
	VariantVirtual Variant = "virtual" // 接口 + 嵌入"基类"
	VariantErased  Variant = "erased"  // ObjectCollection类型擦除
	VariantSwitch  Variant = "switch"  // type switch
)

// Variants 返回全部分派方式，顺序固定
func Variants() []Variant {
	return []Variant{VariantVirtual, VariantErased, VariantSwitch}
}

func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidConfig, "unknown variant %q", s)
}

// Config 一次基准运行的参数
type Config struct {
	Elements    int     // 集合大小
	Repetitions int     // 计时遍历次数
	Ratio       float64 // 第一种类型出现的概率（伯努利分布）
	Seed        uint64  // 0表示随机
}

func DefaultConfig() Config {
	return Config{Elements: 100000, Repetitions: 1001, Ratio: 0.5}
}

func (c Config) Validate() error {
	if c.Elements <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "elements must be positive, got %d", c.Elements)
	}
	if c.Repetitions <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "repetitions must be positive, got %d", c.Repetitions)
	}
	if c.Ratio < 0 || c.Ratio > 1 {
		return errors.Wrapf(ErrInvalidConfig, "ratio must be within [0, 1], got %v", c.Ratio)
	}
	return nil
}

// withSeed 把0种子替换成一个随机种子，结果里会带上，方便复现
func (c Config) withSeed() Config {
	for c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	return c
}

// Fixture 预先构造好的待测集合
type Fixture interface {
	Variant() Variant
	Len() int
	// DrawFirst 只画第一个元素，计时前调用一次
	DrawFirst(s *Sink)
	// Pass 完整遍历一次
	Pass(s *Sink)
}

// NewFixture 按伯努利分布混合两种具体类型构造集合。
// 相同种子下，各分派方式得到的类型序列完全一致。
func NewFixture(v Variant, cfg Config) (Fixture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	first := func() bool { return rng.Float64() < cfg.Ratio }

	switch v {
	case VariantVirtual:
		shapes := make([]Shape, 0, cfg.Elements)
		for i := 0; i < cfg.Elements; i++ {
			if first() {
				shapes = append(shapes, &FirstShape{})
			} else {
				shapes = append(shapes, &SecondShape{})
			}
		}
		return &virtualFixture{shapes: shapes}, nil
	case VariantErased:
		c := NewObjectCollection(cfg.Elements)
		for i := 0; i < cfg.Elements; i++ {
			if first() {
				AddObject(c, MyClass{})
			} else {
				AddObject(c, MyOtherClass{})
			}
		}
		return &erasedFixture{c: c}, nil
	case VariantSwitch:
		items := make([]any, 0, cfg.Elements)
		for i := 0; i < cfg.Elements; i++ {
			if first() {
				items = append(items, MyClass{})
			} else {
				items = append(items, MyOtherClass{})
			}
		}
		return &switchFixture{items: items}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown variant %q", string(v))
	}
}

type virtualFixture struct {
	shapes []Shape
}

func (f *virtualFixture) Variant() Variant  { return VariantVirtual }
func (f *virtualFixture) Len() int          { return len(f.shapes) }
func (f *virtualFixture) DrawFirst(s *Sink) { f.shapes[0].Draw(s) }

func (f *virtualFixture) Pass(s *Sink) {
	for _, x := range f.shapes {
		if x == nil {
			panic("performance: nil element in virtual fixture")
		}
		x.Draw(s)
	}
}

type erasedFixture struct {
	c *ObjectCollection
}

func (f *erasedFixture) Variant() Variant  { return VariantErased }
func (f *erasedFixture) Len() int          { return f.c.Len() }
func (f *erasedFixture) DrawFirst(s *Sink) { f.c.collection[0].draw(s) }
func (f *erasedFixture) Pass(s *Sink)      { f.c.Draw(s) }

type switchFixture struct {
	items []any
}

func (f *switchFixture) Variant() Variant  { return VariantSwitch }
func (f *switchFixture) Len() int          { return len(f.items) }
func (f *switchFixture) DrawFirst(s *Sink) { drawSwitch(f.items[0], s) }

func (f *switchFixture) Pass(s *Sink) {
	for _, x := range f.items {
		drawSwitch(x, s)
	}
}
