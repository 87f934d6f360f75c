package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"concept-poly/internal/config"
)

var (
	configFile string
	appConfig  config.Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cbp",
		Short:        "Concept-based polymorphism: type erasure demos and dispatch benchmarks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configFile)
			if err != nil {
				return err
			}
			setupLogging(c.Log, cmd.ErrOrStderr())
			appConfig = c
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml/json/toml)")

	root.AddCommand(demoCmd(), describeCmd(), benchCmd(), passesCmd())
	return root
}

// setupLogging 日志写到stderr，stdout只留给命令本身的输出
func setupLogging(c logx.LogConf, w io.Writer) {
	logx.MustSetup(c)
	logx.SetWriter(logx.NewWriter(w))
}
