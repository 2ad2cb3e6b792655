// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/app"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
)

var (
	// configPath 配置文件或目录路径，由 --config 指定.
	configPath string

	// debug 是否打印 viper 内部状态，由 --debug 指定.
	debug bool

	rootCmd = &cobra.Command{
		Use:   configs.AppName,
		Short: "A microservice that reports name, MIME type and size of an uploaded file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "path to the config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print internal config state in config subcommands")

	registerConfigsCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
