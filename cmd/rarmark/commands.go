package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-rarmark/internal/app"
	"github.com/shiroemons/go-rarmark/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rarmark",
		Short: "Decrypt and inspect spans of password-protected legacy archives",
		Long: `rarmark reads a span of a password-protected legacy archive through the
same decrypting, byte-counting reader a header parser uses.

Commands:
  dump      Decrypt a span and print a hex dump or save it to a file
  decode    Decode a sequence of little-endian values from a span
  derive    Print the key and initial chaining value for a password and salt`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterPersistentFlags(root.PersistentFlags())
	root.AddCommand(newDumpCmd(), newDecodeCmd(), newDeriveCmd())
	return root
}

// loadConfig はフラグ・環境変数・設定ファイルから設定を読み込みます
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	return config.Load(v, source)
}

func newApp(cmd *cobra.Command, cfg *config.Config) *app.App {
	return app.NewWithOptions(cfg, app.Options{Output: cmd.OutOrStdout()})
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decrypt a span and print a hex dump or save it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			_, err = newApp(cmd, cfg).Dump(cmd.Context())
			return err
		},
	}
	config.RegisterReadFlags(cmd.Flags())
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a sequence of little-endian values from a span",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			_, err = newApp(cmd, cfg).Decode(cmd.Context())
			return err
		},
	}
	config.RegisterReadFlags(cmd.Flags())
	return cmd
}

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Print the key and initial chaining value for a password and salt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			_, err = newApp(cmd, cfg).Derive()
			return err
		},
	}
}
