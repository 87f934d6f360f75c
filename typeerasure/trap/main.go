package main

import (
	"fmt"
	"io"
	"os"

	"concept-poly/typeerasure"
)

type Counter struct{ N int }

func (c Counter) Draw(w io.Writer) { fmt.Fprintf(w, "counter=%d\n", c.N) }

// ============================================================
// 陷阱1：零值Object
// Object的零值没有model，调用Draw相当于断言失败，直接panic。
// 放进Document之后同样会在遍历时panic。
// ============================================================

func trapZeroObject() {
	fmt.Println("=== 陷阱1：零值Object ===")

	var doc typeerasure.Document
	doc.Append(typeerasure.Of(1), typeerasure.Object{}) // 第二个元素是零值

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("捕获panic: %v\n", r)
			}
		}()
		doc.Draw(os.Stdout)
	}()

	// 正确：放进去之前用Valid检查
	o := typeerasure.Object{}
	fmt.Println("零值Object.Valid():", o.Valid())
	fmt.Println()
}

// ============================================================
// 陷阱2：包装指针就丢了值语义
// 包装时值会被拷贝进model，之后修改原变量不影响Object。
// 但如果包装的是指针，model里拷贝的只是指针，修改会"穿透"进去。
// ============================================================

func trapPointerCapture() {
	fmt.Println("=== 陷阱2：包装指针就丢了值语义 ===")

	c := Counter{N: 1}
	byValue := typeerasure.New(c)
	byPointer := typeerasure.Of(&c) // *Counter的方法集包含Draw
	c.N = 2

	fmt.Print("值包装: ")
	byValue.Draw(os.Stdout)
	fmt.Print("指针包装: ")
	byPointer.Draw(os.Stdout) // counter=2！
	fmt.Println()
}

// ============================================================
// 陷阱3：用==比较Object
// Object内部是一个接口，==比较的是model指针：
// 同一个值包装两次得到两个不同的model，==为false。
// 想知道两个Object是否是同一份，用Same。
// ============================================================

func trapCompare() {
	fmt.Println("=== 陷阱3：用==比较Object ===")

	a := typeerasure.New(Counter{N: 7})
	b := typeerasure.New(Counter{N: 7})
	c := a

	// 分别包装：false；拷贝：true
	fmt.Println("分别包装 a == b:", a == b)
	fmt.Println("拷贝 a == c:", a == c)
	fmt.Println("a.Same(c):", a.Same(c))
	// 零值之间Same永远为false
	fmt.Println("Object{}.Same(Object{}):", typeerasure.Object{}.Same(typeerasure.Object{}))
	fmt.Println()
}

func main() {
	trapZeroObject()
	trapPointerCapture()
	trapCompare()
}
