// Package cli wires the cobra command tree for menucli's subcommands
// (list, search, click, toggle, state, apps, check-access) and global
// flags.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
	"github.com/oleksiiluchnikov/menucli/internal/logging"
	"github.com/oleksiiluchnikov/menucli/internal/output"
	"go.uber.org/zap"
)

// Version is set via ldflags at build time.
var Version = "dev"

// globalFlags mirrors the persistent flag set shared by every subcommand.
type globalFlags struct {
	app         string
	alternates  bool
	jsonShort   bool
	outputFmt   string
	fields      string
	noHeader    bool
	limit       int
	exact       bool
	dryRun      bool
	flat        bool
	treeView    bool
	extras      bool
	verbose     bool
	enabledOnly bool
}

var flags globalFlags

var log *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "menucli",
	Short:   "Script macOS application menus from the command line",
	Version: Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(flags.verbose)
	},
}

// Execute runs the CLI application, exiting with the mapped exit code on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := derrors.GetCode(err)
		reportErr(string(code), err.Error())
		os.Exit(derrors.ExitCode(code))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.app, "app", "", "application name, pid, or bundle id (default: frontmost)")
	pf.BoolVar(&flags.alternates, "alternates", false, "include Option-alternate menu items")
	pf.BoolVar(&flags.jsonShort, "json", false, "shorthand for --output json")
	pf.StringVar(&flags.outputFmt, "output", "auto", "output format: json|compact|ndjson|table|path|id|auto")
	pf.StringVar(&flags.fields, "fields", "", "comma-separated field projection")
	pf.BoolVar(&flags.noHeader, "no-header", false, "omit the table header row")
	pf.IntVar(&flags.limit, "limit", 0, "maximum number of search results")
	pf.BoolVar(&flags.exact, "exact", false, "match query as an exact path, not a fuzzy search")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "resolve without pressing")
	pf.BoolVar(&flags.flat, "flat", false, "emit a flat item list instead of a tree")
	pf.BoolVar(&flags.treeView, "tree", false, "emit the nested tree instead of a flat list")
	pf.BoolVar(&flags.extras, "extras", false, "target the extras (status) menu bar instead of the standard one")
	pf.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")
	pf.BoolVar(&flags.enabledOnly, "enabled-only", false, "discard disabled items when searching")

	rootCmd.AddCommand(listCmd, searchCmd, clickCmd, toggleCmd, stateCmd, appsCmd, checkAccessCmd)
}

func outputFormat() output.Format {
	if flags.jsonShort {
		return output.FormatJSON
	}

	return output.Format(flags.outputFmt)
}

func reportErr(kind, message string) {
	_ = output.WriteError(os.Stderr, outputFormat(), kind, message)
}

func ensurePermission() error {
	if accessibility.CheckPermissions() {
		return nil
	}

	return derrors.New(derrors.CodePermissionDenied, "accessibility permission not granted; enable menucli in System Settings > Privacy & Security > Accessibility")
}

func fieldList() []string {
	if flags.fields == "" {
		return nil
	}

	parts := strings.Split(flags.fields, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
