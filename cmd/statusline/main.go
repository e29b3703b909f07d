package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"statusline/internal/gitstate"
	"statusline/internal/render"
	"statusline/internal/session"
	"statusline/internal/transcript"
)

var rootCmd = &cobra.Command{
	Use:          "statusline",
	Short:        "Reads session JSON from stdin, prints one colored context-usage line",
	Args:         cobra.NoArgs,
	RunE:         run,
	SilenceUsage: true,
}

func run(cmd *cobra.Command, _ []string) error {
	// stdout is a pipe to the host shell, which renders the ANSI itself,
	// so profile detection must be bypassed.
	lipgloss.SetColorProfile(termenv.TrueColor)

	req, err := session.Parse(cmd.InOrStdin())
	if err != nil {
		return err
	}

	usage, err := transcript.LatestUsage(req.TranscriptPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Line(req, usage, gitstate.Get(req.Cwd)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
