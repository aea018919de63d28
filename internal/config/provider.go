package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, err
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	pc, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ConfigFile:     pc.Path,
		NetworkName:    v.GetString("network"),
		Networks:       pc.Networks,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Offline:        v.GetBool("offline"),
		AssumeYes:      v.GetBool("yes"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		Artifacts:      pc.Artifacts,
		Exports:        pc.Exports,
		Deploy:         pc.Deploy,
	}

	// Allow overriding the frontend directory per invocation
	if frontend := v.GetString("frontend"); frontend != "" {
		cfg.Artifacts.Frontend = resolvePath(projectRoot, frontend, ".")
	}

	// An unknown network is not fatal here: commands that need a network
	// identifier report it when they ask for one.
	if network, ok := pc.Networks[cfg.NetworkName]; ok {
		cfg.Network = network
	}

	return cfg, nil
}

// ProvideExportConfig extracts the export table for Wire. Commands that export
// report an empty table themselves so that networks still works without contracts.
func ProvideExportConfig(cfg *config.RuntimeConfig) (*config.ExportConfig, error) {
	if cfg.Exports == nil {
		return config.NewExportConfig(nil)
	}
	return cfg.Exports, nil
}

// FindProjectRoot walks up from current directory to find frontsync.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", domain.ConfigurationError("find project root",
				fmt.Errorf("%s not found in the current directory or any parent", ConfigFileName))
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("FRONTSYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("network", "localhost")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("offline", false)
	v.SetDefault("yes", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		bindFlags(v, cmd.Flags())
		bindFlags(v, cmd.InheritedFlags())
	}

	return v
}

// bindFlags binds every flag under its snake_case key so env vars and flags share names
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}
