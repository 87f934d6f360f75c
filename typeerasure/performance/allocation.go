package performance

import "io"

// SmallValue 小值类型（<=指针大小）
type SmallValue struct {
	X int
}

func (s SmallValue) Draw(w io.Writer) { io.WriteString(w, "small") }

// LargeValue 大值类型，包装进Object时整个结构体被拷贝到堆上的model里
type LargeValue struct {
	A, B, C, D, E, F, G, H int
}

func (l LargeValue) Draw(w io.Writer) { io.WriteString(w, "large") }
