package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tonylturner/catview/internal/config"
	apperrors "github.com/tonylturner/catview/internal/errors"
)

type initFlags struct {
	defaults bool
	force    bool
}

func newInitCmd(g *globalFlags) *cobra.Command {
	flags := &initFlags{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file",
		Long: `Create a catview config file at --config.

Without --defaults an interactive form asks where the sheets come from
(spreadsheet endpoint, local CSV directory or S3 bucket) and which number
receives chat enquiries.`,
		Example: `  # Interactive setup
  catview init

  # Write defaults for the published spreadsheet
  catview init --defaults --config catview.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(g, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.defaults, "defaults", false, "Write the default config without prompting")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(g *globalFlags, flags *initFlags) error {
	path := g.configPath
	if _, err := os.Stat(path); err == nil && !flags.force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	cfg := config.CreateDefaultConfig()
	if !flags.defaults {
		form, apply := buildConfigForm(cfg)
		if err := form.Run(); err != nil {
			return fmt.Errorf("config form: %w", err)
		}
		if err := apply(); err != nil {
			return apperrors.WrapConfigError(err, path)
		}
	}

	config.ApplyDefaults(cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return apperrors.WrapConfigError(err, path)
	}
	if err := config.WriteConfig(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Config written: %s\n", path)
	fmt.Fprintf(os.Stdout, "Source: %s\n", cfg.Source.Describe())
	return nil
}

// buildConfigForm returns a form editing cfg and a function that copies the
// answers that need conversion back into cfg once the form has completed.
func buildConfigForm(cfg *config.Config) (*huh.Form, func() error) {
	sourceType := string(cfg.Source.Type)
	timeout := ""
	if cfg.Source.TimeoutMs > 0 {
		timeout = strconv.Itoa(cfg.Source.TimeoutMs)
	}

	sourceGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Sheet source").
			Description("Where the items, images and categories sheets are read from.").
			Key("source_type").
			Options(
				huh.NewOption("Spreadsheet endpoint (HTTP)", string(config.SourceHTTP)),
				huh.NewOption("Local CSV directory", string(config.SourceFile)),
				huh.NewOption("S3 bucket", string(config.SourceS3)),
			).
			Value(&sourceType),
	)

	httpGroup := huh.NewGroup(
		huh.NewInput().
			Title("Base URL").
			Description("Endpoint answering ?sheet=<name> with CSV.").
			Key("base_url").
			Value(&cfg.Source.BaseURL),
		huh.NewInput().
			Title("Timeout (ms)").
			Description("Leave empty for no timeout.").
			Key("timeout_ms").
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				if n, err := strconv.Atoi(s); err != nil || n < 0 {
					return fmt.Errorf("enter a whole number of milliseconds")
				}
				return nil
			}).
			Value(&timeout),
	).WithHideFunc(func() bool { return sourceType != string(config.SourceHTTP) })

	fileGroup := huh.NewGroup(
		huh.NewInput().
			Title("CSV directory").
			Description("Directory holding Data.csv, Images.csv and Categories.csv.").
			Key("dir").
			Value(&cfg.Source.Dir),
	).WithHideFunc(func() bool { return sourceType != string(config.SourceFile) })

	s3Group := huh.NewGroup(
		huh.NewInput().Title("Bucket").Key("bucket").Value(&cfg.Source.Bucket),
		huh.NewInput().Title("Key prefix").Description("Optional, e.g. catalogue/").Key("prefix").Value(&cfg.Source.Prefix),
		huh.NewInput().Title("Region").Key("region").Value(&cfg.Source.Region),
		huh.NewInput().Title("Endpoint").Description("Optional S3-compatible endpoint URL.").Key("endpoint").Value(&cfg.Source.Endpoint),
	).WithHideFunc(func() bool { return sourceType != string(config.SourceS3) })

	chatGroup := huh.NewGroup(
		huh.NewInput().
			Title("Chat phone number").
			Description("International format, digits only.").
			Key("chat_phone").
			Validate(func(s string) error {
				for _, r := range s {
					if r < '0' || r > '9' {
						return fmt.Errorf("digits only")
					}
				}
				return nil
			}).
			Value(&cfg.Chat.Phone),
	)

	apply := func() error {
		cfg.Source.Type = config.SourceType(sourceType)
		cfg.Source.TimeoutMs = 0
		if timeout != "" {
			n, err := strconv.Atoi(timeout)
			if err != nil {
				return fmt.Errorf("source.timeout_ms: %w", err)
			}
			cfg.Source.TimeoutMs = n
		}
		return nil
	}

	return huh.NewForm(sourceGroup, httpGroup, fileGroup, s3Group, chatGroup), apply
}
