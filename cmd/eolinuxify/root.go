package main

import (
	"os"

	"github.com/bethropolis/eolinuxify/internal/app"
	"github.com/bethropolis/eolinuxify/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the eolinuxify command
func NewRootCommand() *cobra.Command {
	cfg := config.New()
	cfg.Version = Version

	cmd := &cobra.Command{
		Use:   "eolinuxify",
		Short: "Normalize CRLF line endings of project files to LF",
		Long: `eolinuxify finds the source files of the project in the current directory
and rewrites those containing CRLF line endings to use LF only.

Files are found by walking the tree and honoring every .gitignore on the way,
or with --git by asking git for tracked and untracked-but-not-ignored files.
Globs listed under "exclude" in eolinuxify.json are skipped.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Finalize(cmd.InOrStdin(), os.Stdout)
			application, err := app.NewWithIO(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	cfg.BindFlags(cmd.Flags())
	return cmd
}
