package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"concept-poly/passmanager"
	"concept-poly/typeerasure"
)

func demoModule() *passmanager.Module {
	return &passmanager.Module{
		Name: "demo",
		Functions: []*passmanager.Function{
			{Name: "main", Instructions: []string{"call init", "nop", "call run", "ret"}},
			{Name: "init", Instructions: []string{"nop", "nop", "ret"}},
			{Name: "run", Instructions: []string{"load", "add", "nop", "store", "ret"}},
		},
	}
}

func passesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passes",
		Short: "Run a type-erased pass pipeline over a toy module",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			mod := demoModule()

			elim := &passmanager.NopEliminator{}
			count := &passmanager.InstructionCounter{}
			pm := passmanager.NewManager[*passmanager.Module]("O1")
			passmanager.AddPass(pm, passmanager.Verifier{})
			passmanager.AddPass(pm, passmanager.NewForEach(passmanager.FunctionsOf, elim))
			passmanager.AddPass(pm, passmanager.NewForEach(passmanager.FunctionsOf, count))

			logx.Infof("passes: running %v", pm.Names())
			if err := pm.Run(mod); err != nil {
				logx.Errorf("passes: %v", err)
				return err
			}

			var doc typeerasure.Document
			doc.Append(typeerasure.New(mod))
			doc.Draw(out)

			fmt.Fprintf(out, "removed nops: %d\n", elim.Removed)
			names := make([]string, 0, len(count.PerFunction))
			for name := range count.PerFunction {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s: %d\n", name, count.PerFunction[name])
			}
			fmt.Fprintf(out, "total: %d\n", count.Total)
			return nil
		},
	}
}
