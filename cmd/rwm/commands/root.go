package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "rwm",
		Short: "rwm - a tiling window manager for X11",
		Long: `rwm tiles windows across one or more monitors, grouped into nine
numbered tags, and is driven over a Unix socket by a separate client for
scripting key bindings.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/rwm/rwm.toml, else $HOME/.config/rwm/rwm.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("display", "", "X11 display name (default from $DISPLAY)")
	rootCmd.PersistentFlags().String("socket", "", "IPC socket path (default /tmp/rwm.sock)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("display", rootCmd.PersistentFlags().Lookup("display"))
	viper.BindPFlag("socket", rootCmd.PersistentFlags().Lookup("socket"))
	viper.BindEnv("log_level", "RWM_LOG")
	viper.SetEnvPrefix("RWM")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ConfigFile returns the --config flag value, empty if unset.
func ConfigFile() string {
	return cfgFile
}
