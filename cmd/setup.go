package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/adrg/xdg"
	"github.com/matheuskafuri/verse/internal/render"
	"github.com/matheuskafuri/verse/internal/shell"
	"github.com/spf13/cobra"
)

var flagYes bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Add auto-run snippet to your shell profile",
	Long: `Append a line to your shell startup file so new interactive shells print
the verse of the day once per day. Supports bash, zsh, fish and PowerShell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := shell.Detect(runtime.GOOS, os.Getenv("SHELL"))
		newLogger().Debug("detected shell", "shell", name)
		stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
		return installProfile(cmd.OutOrStdout(), surveyConfirm(stdio), name, xdg.Home, flagYes)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "append without asking for confirmation")
}

// confirmFunc asks a yes/no question, defaulting to no.
type confirmFunc func(message string) (bool, error)

func surveyConfirm(stdio terminal.Stdio) confirmFunc {
	return func(message string) (bool, error) {
		ok := false
		err := survey.AskOne(
			&survey.Confirm{Message: message, Default: false},
			&ok,
			survey.WithStdio(stdio.In, stdio.Out, stdio.Err),
		)
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading answer (rerun with --yes when not on a terminal): %w", err)
		}
		return ok, nil
	}
}

func installProfile(out io.Writer, ask confirmFunc, name, home string, yes bool) error {
	p, err := shell.ProfileFor(name, home)
	if err != nil {
		return fmt.Errorf("%w\nAdd the line `verse --auto` to your shell's startup file manually", err)
	}

	installed, err := shell.Installed(p)
	if err != nil {
		return err
	}
	if installed {
		fmt.Fprintln(out, "Startup snippet already present - nothing to do.")
		return nil
	}

	fmt.Fprintf(out, "\nAbout to append the following line to %s:\n\n", p.Path)
	fmt.Fprintf(out, "%s\n\n", render.Snippet(p.Snippet))

	if !yes {
		ok, err := ask("Proceed?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := shell.Install(p); err != nil {
		return err
	}
	fmt.Fprintln(out, render.Success("Added. Open a new terminal to test."))
	return nil
}
