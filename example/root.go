package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ionut-t/synedit/internal/config"
	"github.com/ionut-t/synedit/internal/log"
)

func init() {
	// Query the terminal background before the program owns stdin, otherwise
	// the OSC 11 reply can leak into the input loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "synedit [file]",
	Short: "Syntax highlighted editor showcase",
	Long:  `A terminal showcase of the synedit syntax editor component, optionally editing a file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShowcase,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/synedit/config.yaml)")
	rootCmd.Flags().StringP("file", "f", "", "file to edit")
	rootCmd.Flags().StringP("theme", "t", "", "highlighting theme")
	rootCmd.Flags().StringP("ext", "e", "", "file extension selecting the grammar")
	rootCmd.Flags().String("preset", "", "editor style: default, simple, outlined or minimal")
	rootCmd.Flags().Bool("no-watch", false, "do not reload the file when it changes on disk")
	rootCmd.Flags().Bool("debug", false, "write a debug log")

	_ = viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("editor.theme", rootCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("editor.extension", rootCmd.Flags().Lookup("ext"))
	_ = viper.BindPFlag("editor.preset", rootCmd.Flags().Lookup("preset"))
	_ = viper.BindPFlag("debug.enabled", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("watch", defaults.Watch)
	viper.SetDefault("editor.theme", defaults.Editor.Theme)
	viper.SetDefault("editor.extension", defaults.Editor.Extension)
	viper.SetDefault("editor.preset", defaults.Editor.Preset)
	viper.SetDefault("editor.height", defaults.Editor.Height)
	viper.SetDefault("editor.line_height", defaults.Editor.LineHeight)
	viper.SetDefault("debug.log_path", defaults.Debug.LogPath)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .synedit/config.yaml (current directory)
		// 2. ~/.config/synedit/config.yaml (user config)
		if _, err := os.Stat(".synedit/config.yaml"); err == nil {
			viper.SetConfigFile(".synedit/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "synedit"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runShowcase(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.File = args[0]
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug.Enabled {
		cleanup, err := log.InitWithTeaLog(cfg.Debug.LogPath, "synedit")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed())
	}

	model, err := newShowcase(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
