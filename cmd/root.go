package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagVerbose bool
	verseFlags  verseOptions
)

var rootCmd = &cobra.Command{
	Use:   "verse",
	Short: "Print the Bible verse of the day",
	Long:  "verse prints the Bible \"Verse of the Day\", fetching it at most once per day and caching it locally.",
	Example: `  verse                 # print today's verse (cached if already fetched)
  verse --force         # always pull a fresh verse
  verse show -c         # show cached verse and copy to clipboard
  verse show --force    # force-refresh via the show command
  verse init            # greet me once per day on new terminal`,
	SilenceUsage: true,
	RunE:         runVerse,
}

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Print today's verse (cached, unless --force)",
	RunE:    runVerse,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "verse %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log diagnostics to stderr")

	addVerseFlags(rootCmd, &verseFlags)
	addVerseFlags(showCmd, &verseFlags)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func addVerseFlags(cmd *cobra.Command, opts *verseOptions) {
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "fetch a fresh verse even if today's is cached")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "copy verse to clipboard")
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "only print when today's verse has not been shown yet (used by the shell snippet)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
