package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "contour",
	Short: "Extract hierarchical outlines from PDF documents",
	Long: `Contour turns PDF documents into hierarchical outlines: a document
title plus an ordered list of headings, each tagged with a nesting
level (H1-H4) and page number.

Heading detection combines lexical patterns, typography relative to
the document's font profile, structural numbering, and content
keywords. The result is written as JSON, one file per input document.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./contour.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn, error",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the optional config file and environment overrides.
// Settings resolve in order: flags, CONTOUR_* environment variables,
// config file, built-in defaults.
func initConfig() {
	viper.SetDefault("max_pages", 50)
	viper.SetDefault("strictness", "normal")
	viper.SetDefault("output", "./output")

	viper.SetEnvPrefix("CONTOUR")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("contour")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			slog.Error("failed to read config file", "file", cfgFile, "error", err)
			os.Exit(1)
		}
	}
}

// initLogging configures the process-wide slog handler.
func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
