package typeerasure

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Document 有序的Object序列，迭代顺序等于插入顺序
type Document struct {
	objects []Object
}

// Append 追加元素，不去重
func (d *Document) Append(objs ...Object) {
	d.objects = append(d.objects, objs...)
}

func (d *Document) Len() int { return len(d.objects) }

func (d *Document) At(i int) Object { return d.objects[i] }

// Draw 依次画出每个元素，前后加上<document>标记。
// 值接收者让Document本身也满足Drawer，可以被再次包装进Object。
func (d Document) Draw(w io.Writer) {
	fmt.Fprintln(w, "<document>")
	for i, o := range d.objects {
		if !o.Valid() {
			panic(errors.Wrapf(ErrInvalidObject, "document element %d", i))
		}
		o.Draw(w)
	}
	fmt.Fprintln(w, "</document>")
}
