package typeerasure

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type circle struct{ R int }

func (c circle) Draw(w io.Writer) { fmt.Fprintf(w, "circle(%d)\n", c.R) }

type label string

func drawLabel(w io.Writer, l label) { fmt.Fprintf(w, "label %q\n", string(l)) }

// counter 记录被画的顺序
type counter struct {
	id  int
	log *[]int
}

func (c counter) Draw(w io.Writer) { *c.log = append(*c.log, c.id) }

func render(d Drawer) string {
	var buf bytes.Buffer
	d.Draw(&buf)
	return buf.String()
}

func TestWrappedDrawMatchesDirect(t *testing.T) {
	tests := []struct {
		name   string
		direct func(w io.Writer)
		object Object
	}{
		{"method", circle{R: 3}.Draw, New(circle{R: 3})},
		{"method via Of", circle{R: 5}.Draw, Of(circle{R: 5})},
		{"free function", func(w io.Writer) { drawLabel(w, "x") }, Adapt(label("x"), drawLabel)},
		{"default int", func(w io.Writer) { fmt.Fprintln(w, 42) }, Of(42)},
		{"default string", func(w io.Writer) { fmt.Fprintln(w, "Hello!") }, Of("Hello!")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want bytes.Buffer
			tt.direct(&want)
			if got := render(tt.object); got != want.String() {
				t.Errorf("got %q, want %q", got, want.String())
			}
		})
	}
}

func TestCopiesShareModel(t *testing.T) {
	a := New(circle{R: 7})
	b := a
	c := New(circle{R: 7})

	if !a.Same(b) {
		t.Error("copy should share the model")
	}
	if a.Same(c) {
		t.Error("separately wrapped values should not share a model")
	}
	if render(a) != render(b) {
		t.Errorf("copies drew differently: %q vs %q", render(a), render(b))
	}
	if (Object{}).Same(Object{}) {
		t.Error("invalid objects should never be Same")
	}
}

func TestValueCapturedAtWrap(t *testing.T) {
	c := circle{R: 1}
	byValue := New(c)
	byPointer := Of(&c)
	c.R = 2

	if got := render(byValue); got != "circle(1)\n" {
		t.Errorf("value capture: got %q", got)
	}
	// *circle的方法集包含Draw，指针捕获会看到后续修改
	if got := render(byPointer); got != "circle(2)\n" {
		t.Errorf("pointer capture: got %q", got)
	}
}

func TestDocumentDrawsInInsertionOrder(t *testing.T) {
	var order []int
	var doc Document
	const n = 10
	for i := 0; i < n; i++ {
		doc.Append(New(counter{id: i, log: &order}))
	}
	doc.Draw(io.Discard)

	if len(order) != n {
		t.Fatalf("drew %d times, want %d", len(order), n)
	}
	for i, id := range order {
		if id != i {
			t.Fatalf("order[%d] = %d, want %d", i, id, i)
		}
	}
}

func TestDocumentMarkers(t *testing.T) {
	var doc Document
	doc.Append(Of(1), Of(2))

	want := "<document>\n1\n2\n</document>\n"
	if got := render(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if doc.Len() != 2 || doc.At(1).TypeName() != "int" {
		t.Errorf("Len=%d At(1)=%s", doc.Len(), doc.At(1).TypeName())
	}
}

func TestNestedDocument(t *testing.T) {
	var inner Document
	inner.Append(Of("inner"))

	var outer Document
	outer.Append(Of("before"), New(inner), Of("after"))
	// 包装之后再追加，不影响已包装的拷贝
	inner.Append(Of("late"))

	want := strings.Join([]string{
		"<document>",
		"before",
		"<document>",
		"inner",
		"</document>",
		"after",
		"</document>",
	}, "\n") + "\n"
	if got := render(outer); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInvalidObjectPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidObject) {
			t.Fatalf("expected ErrInvalidObject panic, got %v", r)
		}
	}()
	var o Object
	o.Draw(io.Discard)
}

func TestDocumentInvalidElementPanics(t *testing.T) {
	var doc Document
	doc.Append(Of(1), Object{})

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidObject) {
			t.Fatalf("expected ErrInvalidObject panic, got %v", r)
		}
		if !strings.Contains(err.Error(), "element 1") {
			t.Errorf("panic should name the element: %v", err)
		}
	}()
	doc.Draw(io.Discard)
}

func TestAdaptNilFunctionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil draw function")
		}
	}()
	Adapt[int](1, nil)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		o    Object
		want string
	}{
		{Of(0), "int"},
		{Of("s"), "string"},
		{New(circle{}), "typeerasure.circle"},
		{Adapt(label(""), drawLabel), "typeerasure.label"},
		{Object{}, "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.o.TypeName(); got != tt.want {
			t.Errorf("TypeName() = %q, want %q", got, tt.want)
		}
	}
}
