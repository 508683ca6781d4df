package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/oleksiiluchnikov/menucli/internal/actuate"
	"github.com/oleksiiluchnikov/menucli/internal/apps"
	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
	"github.com/oleksiiluchnikov/menucli/internal/flatten"
	"github.com/oleksiiluchnikov/menucli/internal/model"
	"github.com/oleksiiluchnikov/menucli/internal/output"
	"github.com/oleksiiluchnikov/menucli/internal/resolve"
	"github.com/oleksiiluchnikov/menucli/internal/tree"
)

var checkAccessCmd = &cobra.Command{
	Use:   "check-access",
	Short: "Check whether menucli is trusted for Accessibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensurePermission(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "accessibility permission granted")

		return nil
	},
}

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running, Dock-visible applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensurePermission(); err != nil {
			return err
		}

		for _, app := range apps.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", app.PID, app.Name, app.BundleID)
		}

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List an application's menu items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, roots, err := buildAndFlatten()
		if err != nil {
			return err
		}

		if flags.treeView && !flags.flat {
			return output.RenderTree(cmd.OutOrStdout(), roots, renderOptions())
		}

		return output.Render(cmd.OutOrStdout(), items, renderOptions())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search an application's menu items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := buildAndFlatten()
		if err != nil {
			return err
		}

		limit := flags.limit
		if limit <= 0 {
			limit = 10
		}

		candidates := resolve.Search(items, args[0], resolve.Options{
			EnabledOnly:       flags.enabledOnly,
			AlternatesAllowed: flags.alternates,
			Limit:             limit,
		})

		matched := make([]model.FlatItem, len(candidates))
		for i, c := range candidates {
			matched[i] = c.Item
		}

		return output.Render(cmd.OutOrStdout(), matched, renderOptions())
	},
}

var clickCmd = &cobra.Command{
	Use:   "click <query>",
	Short: "Press a resolved menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := resolveOne(args[0])
		if err != nil {
			return err
		}

		result, err := actuate.Press(item, flags.dryRun)
		if err != nil {
			return derrors.Wrap(err, derrors.CodeAxFailure, "press failed")
		}

		return output.Render(cmd.OutOrStdout(), []model.FlatItem{result.Item}, renderOptions())
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <query>",
	Short: "Press a resolved menu item and verify its checked state changed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := resolveOne(args[0])
		if err != nil {
			return err
		}

		result, err := actuate.Toggle(item, flags.dryRun)
		if err != nil {
			return derrors.Wrap(err, derrors.CodeAxFailure, "toggle failed")
		}

		item.Checked = result.CheckedAfter

		return output.Render(cmd.OutOrStdout(), []model.FlatItem{item}, renderOptions())
	},
}

var stateCmd = &cobra.Command{
	Use:   "state <query>",
	Short: "Report a resolved menu item's current state without pressing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := resolveOne(args[0])
		if err != nil {
			return err
		}

		return output.Render(cmd.OutOrStdout(), []model.FlatItem{item}, renderOptions())
	},
}

func renderOptions() output.Options {
	return output.Options{
		Format:   outputFormat(),
		Fields:   fieldList(),
		NoHeader: flags.noHeader,
	}
}

func resolveOne(query string) (model.FlatItem, error) {
	items, _, err := buildAndFlatten()
	if err != nil {
		return model.FlatItem{}, err
	}

	return resolve.Resolve(items, query, resolve.Options{
		Exact:             flags.exact,
		EnabledOnly:       flags.enabledOnly,
		AlternatesAllowed: flags.alternates,
	})
}

// buildAndFlatten resolves the target application, builds its menu tree
// (or every extras tree, per --extras), and flattens it into FlatItems.
// The returned tree is kept alive as long as items reference live element
// handles; callers that are done with it should call tree.Release.
func buildAndFlatten() ([]model.FlatItem, []*model.MenuNode, error) {
	if err := ensurePermission(); err != nil {
		return nil, nil, err
	}

	opts := tree.DefaultOptions(log)
	opts.IncludeAlternates = flags.alternates

	if flags.extras {
		return buildAllExtrasFlat(opts)
	}

	app, err := apps.Resolve(flags.app)
	if err != nil {
		return nil, nil, err
	}

	root, err := tree.Build(app.PID, opts)
	if err != nil {
		return nil, nil, err
	}

	return flatten.Flatten(root), []*model.MenuNode{root}, nil
}

func buildAllExtrasFlat(opts tree.Options) ([]model.FlatItem, []*model.MenuNode, error) {
	pids := make([]int, 0)
	for _, app := range apps.List() {
		pids = append(pids, app.PID)
	}

	results := tree.BuildAllExtras(pids, opts)

	var items []model.FlatItem

	roots := make([]*model.MenuNode, 0, len(results))

	for _, r := range results {
		for _, item := range flatten.Flatten(r.Tree) {
			item.AppName = r.AppName
			item.AppPID = r.AppPID
			items = append(items, item)
		}

		roots = append(roots, r.Tree)
	}

	return items, roots, nil
}
