package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reify/internal/app"
	"go.trai.ch/reify/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [manifest-or-dir...]",
		Short: "Bring every entry of the given manifests up to date",
		Long: "Runs the command of every entry whose files or command changed since its digest\n" +
			"was recorded, then records the new digest. Without arguments the manifests in the\n" +
			"current directory are used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args, runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry-run", "n", false, "Report stale entries without running anything")
	cmd.Flags().BoolP("fail-fast", "f", false, "Skip the remaining entries after the first failure")
	cmd.Flags().BoolP("verbose", "v", false, "Stream command output while it runs")
	cmd.Flags().BoolP("recursive", "r", false, "Search directories recursively for manifests")
	cmd.Flags().StringP("match", "m", domain.DefaultManifestName, "Glob selecting manifest files in directories")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	failFast, _ := cmd.Flags().GetBool("fail-fast")
	verbose, _ := cmd.Flags().GetBool("verbose")
	recursive, _ := cmd.Flags().GetBool("recursive")
	match, _ := cmd.Flags().GetString("match")
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLog, _ := cmd.Flags().GetBool("log-json")

	return app.RunOptions{
		DryRun:    dryRun,
		FailFast:  failFast,
		Verbose:   verbose,
		Recursive: recursive,
		Match:     match,
		Debug:     debug,
		JSONLog:   jsonLog,
	}
}
