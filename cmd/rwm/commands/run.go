package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-rwm/rwm/internal/config"
	"github.com/go-rwm/rwm/internal/eventloop"
	"github.com/go-rwm/rwm/internal/ipc"
	"github.com/go-rwm/rwm/internal/logger"
	"github.com/go-rwm/rwm/internal/wm"
	"github.com/go-rwm/rwm/internal/x11"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Become the window manager for the current X11 display",
	Long: `run connects to the X display, takes over window management duties,
and listens for commands on a Unix socket until it receives Quit or a
terminating signal.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rwm.toml"
	}
	return filepath.Join(dir, "rwm", "rwm.toml")
}

func runRun(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if viper.IsSet("log_level") && viper.GetString("log_level") != "" {
		logLevel = viper.GetString("log_level")
	}
	logger.Init(logLevel, true)
	log := *logger.WithComponent("wm")

	configPath := ConfigFile()
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	log.Info().Str("path", configPath).Msg("loading configuration")
	cfgMgr, err := config.NewManager(configPath, log)
	if err != nil {
		return fmt.Errorf("initializing config manager: %w", err)
	}
	stopWatch, err := cfgMgr.Watch()
	if err != nil {
		log.Warn().Err(err).Msg("config hot-reload watch could not be started")
	} else {
		defer stopWatch()
	}

	displayName := viper.GetString("display")
	log.Info().Str("display", displayName).Msg("connecting to X11")
	port := x11.New(log)
	if err := port.Connect(displayName); err != nil {
		return fmt.Errorf("connecting to X11: %w", err)
	}
	defer port.Close()

	core := wm.New(port, cfgMgr, log)
	log.Info().Msg("scanning monitors and existing windows")
	if err := core.Scan(); err != nil {
		return fmt.Errorf("scanning initial state: %w", err)
	}

	socketPath := viper.GetString("socket")
	if socketPath == "" {
		socketPath = ipc.DefaultSocketPath
	}
	log.Info().Str("socket", socketPath).Msg("listening for commands")
	server, err := ipc.Listen(socketPath)
	if err != nil {
		return fmt.Errorf("starting IPC listener: %w", err)
	}
	defer server.Close()

	loop := eventloop.New(core, port, server, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		core.Quit()
		loop.RequestStop()
	}()

	log.Info().Msg("rwm is running")
	if err := loop.Run(); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	log.Info().Msg("shutting down")
	return nil
}
