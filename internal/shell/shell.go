// Package shell knows where each supported shell keeps its startup file and
// which line makes it run verse on new interactive sessions.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	Bash       = "bash"
	Zsh        = "zsh"
	Fish       = "fish"
	PowerShell = "powershell"
	Unknown    = "unknown"
)

const posixSnippet = "if [[ $- == *i* ]]; then verse --auto; fi"

// Profile is a startup file and the line to add to it.
type Profile struct {
	Shell   string
	Path    string
	Snippet string
}

// UnsupportedShellError is returned for shells without a profile entry.
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unable to determine startup file for shell %q (supported: bash, zsh, fish, powershell)", e.Shell)
}

// Detect names the user's shell from the OS and the value of $SHELL.
func Detect(goos, shellEnv string) string {
	if goos == "windows" {
		return PowerShell
	}
	switch {
	case strings.Contains(shellEnv, "zsh"):
		return Zsh
	case strings.Contains(shellEnv, "fish"):
		return Fish
	case strings.Contains(shellEnv, "bash"):
		return Bash
	default:
		return Unknown
	}
}

// ProfileFor returns the startup file for shell relative to home.
func ProfileFor(shell, home string) (Profile, error) {
	p := Profile{Shell: shell}
	switch shell {
	case Bash:
		p.Path = filepath.Join(home, ".bashrc")
		p.Snippet = posixSnippet
	case Zsh:
		p.Path = filepath.Join(home, ".zshrc")
		p.Snippet = posixSnippet
	case Fish:
		p.Path = filepath.Join(home, ".config", "fish", "config.fish")
		p.Snippet = "if status --is-interactive; verse --auto; end"
	case PowerShell:
		p.Path = filepath.Join(home, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")
		p.Snippet = "if ($Host.UI.RawUI.WindowTitle) { verse --auto }"
	default:
		return Profile{}, &UnsupportedShellError{Shell: shell}
	}
	return p, nil
}

// Installed reports whether the profile already carries the snippet.
func Installed(p Profile) (bool, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", p.Path, err)
	}
	return strings.Contains(string(data), p.Snippet), nil
}

// Install appends the snippet, creating the profile and its directory if needed.
func Install(p Profile) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(p.Path), err)
	}
	f, err := os.OpenFile(p.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", p.Path, err)
	}
	if _, err := f.WriteString("\n" + p.Snippet + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", p.Path, err)
	}
	return f.Close()
}
