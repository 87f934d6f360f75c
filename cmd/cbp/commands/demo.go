package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"concept-poly/typeerasure"
)

// MyClass 客户端自定义类型，和库之间没有任何声明上的关系
type MyClass struct{}

func (MyClass) Draw(w io.Writer) { fmt.Fprintln(w, "MyClass") }

// demoDocument 固定的演示序列：数字、字符串、自定义类型
func demoDocument() typeerasure.Document {
	var doc typeerasure.Document
	doc.Append(
		typeerasure.Of(0),
		typeerasure.Of("Hello!"),
		typeerasure.New(MyClass{}),
	)
	return doc
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Draw a document of heterogeneous type-erased values",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := demoDocument()
			logx.Infof("demo: drawing %d objects", doc.Len())
			doc.Draw(cmd.OutOrStdout())
			return nil
		},
	}
}
