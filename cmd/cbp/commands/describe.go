package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func describeCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show which concrete type sits behind each object of the demo document",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			doc := demoDocument()
			for i := 0; i < doc.Len(); i++ {
				o := doc.At(i)
				fmt.Fprintf(out, "[%d] %s\n", i, o.TypeName())
			}
			if dump {
				// 连同未导出的model一起打印，能看到每个具体类型各有一份适配器
				cs := spew.ConfigState{
					Indent:                  "  ",
					DisablePointerAddresses: true,
					DisableCapacities:       true,
					DisableMethods:          true,
				}
				cs.Fdump(out, doc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the internal models with go-spew")
	return cmd
}
