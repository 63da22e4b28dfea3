package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/morphlab/steamward/internal/pathutil"
)

type initConfigFile struct {
	Steam struct {
		APIHost string `yaml:"api_host"`
		APIKey  string `yaml:"api_key"`
		Enabled bool   `yaml:"enabled"`
	} `yaml:"steam"`
	FileStateDir string `yaml:"file_state_dir"`
	Logging      struct {
		Level     string `yaml:"level"`
		Format    string `yaml:"format"`
		AddSource bool   `yaml:"add_source"`
	} `yaml:"logging"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize config.yaml and the state directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "~/.steamward/"
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				dir = args[0]
			}
			dir = pathutil.ExpandHomePath(dir)
			if strings.TrimSpace(dir) == "" {
				return fmt.Errorf("invalid dir")
			}
			dir = filepath.Clean(dir)

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			cfgPath := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("config already exists: %s", cfgPath)
			}

			cfg := defaultInitConfig(dir)
			body, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, body, 0o644); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", dir)
			return nil
		},
	}
}

func defaultInitConfig(dir string) initConfigFile {
	var cfg initConfigFile
	cfg.Steam.APIHost = "https://api.steampowered.com"
	cfg.Steam.APIKey = ""
	cfg.Steam.Enabled = false
	cfg.FileStateDir = filepath.ToSlash(dir)
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	cfg.Logging.AddSource = false
	return cfg
}
