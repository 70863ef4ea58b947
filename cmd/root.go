package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "datesort [source-directory]",
	Short: "Organize digitized documents into date-based folders",
	Long: `Datesort scans a source directory for image files that carry dates in
their filenames and moves them into subfolders named YYYY-MM-DD.

Filenames following the archive convention (XXX_YYYY_MM_DD_*, with a
three-letter uppercase source abbreviation) are moved silently; legacy
names with dashes, lowercase abbreviations, or unpadded dates still
yield a date but are collected into a sidecar report
(<source>_non_standard.txt) next to the source directory.`,
	Version: "1.2.0",
	Args:    cobra.ExactArgs(1),
	RunE:    runOrganize,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.datesort.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file diagnostics")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".datesort")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
