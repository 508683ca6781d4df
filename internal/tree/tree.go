// Package tree builds the recursive menu-tree entity by walking
// the Accessibility Element Facade concurrently, one worker per top-level
// menu, joined before the tree is returned.
package tree

import (
	"sync"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	"github.com/oleksiiluchnikov/menucli/internal/accessibility/shortcut"
	"github.com/oleksiiluchnikov/menucli/internal/config"
	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
	"github.com/oleksiiluchnikov/menucli/internal/model"
	"go.uber.org/zap"
)

// Kind selects the tree root.
type Kind int

const (
	KindStandard Kind = iota
	KindExtras
)

// Options configures a single build_tree invocation.
type Options struct {
	IncludeAlternates bool
	Kind              Kind
	MaxDepth          int
	ParallelThreshold int
	MaxParallelDepth  int
	Logger            *zap.Logger
}

// DefaultOptions returns the tree builder's defaults.
func DefaultOptions(logger *zap.Logger) Options {
	return Options{
		IncludeAlternates: false,
		Kind:              KindStandard,
		MaxDepth:          config.DefaultMaxDepth,
		ParallelThreshold: config.DefaultParallelThreshold,
		MaxParallelDepth:  config.DefaultMaxParallelDepth,
		Logger:            logger,
	}
}

// siblingMemo caches targeted primary_ui_element -> title lookups for one
// whole walk (Build creates one and every worker shares it), avoiding
// duplicate AX round trips when several alternate items reference the same
// primary item.
type siblingMemo struct {
	mu    sync.Mutex
	known map[uint64]string
}

func newSiblingMemo() *siblingMemo {
	return &siblingMemo{known: make(map[uint64]string)}
}

func (m *siblingMemo) titleOf(el *accessibility.Element) (string, bool) {
	hash := el.Hash()

	m.mu.Lock()
	title, ok := m.known[hash]
	m.mu.Unlock()

	if ok {
		return title, true
	}

	attrs, err := el.Fetch()
	if err != nil {
		return "", false
	}

	m.mu.Lock()
	m.known[hash] = attrs.Title
	m.mu.Unlock()

	return attrs.Title, true
}

// Build constructs the menu tree rooted at pid's standard or extras menu
// bar.
func Build(pid int, opts Options) (*model.MenuNode, error) {
	app := accessibility.ApplicationByPID(pid)
	if app == nil {
		return nil, derrors.Newf(derrors.CodeAppNotFound, "no application for pid %d", pid)
	}
	defer app.Release()

	var root *accessibility.Element
	if opts.Kind == KindExtras {
		root = app.ExtrasMenuBar()
	} else {
		root = app.MenuBar()
	}

	if root == nil {
		return nil, derrors.New(derrors.CodeUnsupported, "menu bar attribute unsupported for this application")
	}
	defer root.Release()

	attrs, err := root.Fetch()
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeAxFailure, "fetching root attributes")
	}

	rootNode := nodeFromAttrs(attrs)
	rootNode.Element = root

	descend(rootNode, root, 1, opts, newSiblingMemo())

	return rootNode, nil
}

// ExtrasResult is one entry of build_all_extras's ordered output.
type ExtrasResult struct {
	AppName string
	AppPID  int
	Tree    *model.MenuNode
}

// BuildAllExtras concurrently attempts an extras-bar walk for every running
// application the App Resolver enumerates, skipping apps whose extras
// attribute is unsupported without surfacing an error for them.
func BuildAllExtras(pids []int, opts Options) []ExtrasResult {
	opts.Kind = KindExtras

	results := make([]*ExtrasResult, len(pids))

	var waitGroup sync.WaitGroup

	for i, pid := range pids {
		waitGroup.Add(1)

		go func(idx, pid int) {
			defer waitGroup.Done()

			tree, err := Build(pid, opts)
			if err != nil {
				// Unsupported extras bar or any other per-app failure is
				// skipped silently.
				return
			}

			app := accessibility.ApplicationByPID(pid)
			name := ""
			if app != nil {
				name = app.ApplicationName()
				app.Release()
			}

			results[idx] = &ExtrasResult{AppName: name, AppPID: pid, Tree: tree}
		}(i, pid)
	}

	waitGroup.Wait()

	ordered := make([]ExtrasResult, 0, len(pids))
	for _, r := range results {
		if r != nil {
			ordered = append(ordered, *r)
		}
	}

	return ordered
}

// descend recurses depth-first from el, filling node.Children. Top-level
// children fork one goroutine each, bounded by MaxParallelDepth/
// ParallelThreshold; deeper levels walk sequentially within whichever
// worker reached them.
func descend(node *model.MenuNode, el *accessibility.Element, depth int, opts Options, memo *siblingMemo) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}

	children := childrenOf(el, opts)
	if len(children) == 0 {
		return
	}

	parallelize := depth <= opts.MaxParallelDepth && len(children) >= opts.ParallelThreshold

	built := make([]*model.MenuNode, len(children))

	if parallelize {
		buildChildrenParallel(built, children, depth, opts, memo)
	} else {
		buildChildrenSequential(built, children, depth, opts, memo)
	}

	node.Children = make([]*model.MenuNode, 0, config.DefaultChildrenCapacity)

	for _, child := range built {
		if child == nil {
			continue
		}

		if child.IsAlternate && !opts.IncludeAlternates {
			continue
		}

		child.Parent = node
		node.Children = append(node.Children, child)
	}
}

func buildChildrenSequential(
	out []*model.MenuNode,
	children []*accessibility.Element,
	depth int,
	opts Options,
	memo *siblingMemo,
) {
	for i, child := range children {
		out[i] = buildOne(child, depth, opts, memo)
	}
}

func buildChildrenParallel(
	out []*model.MenuNode,
	children []*accessibility.Element,
	depth int,
	opts Options,
	memo *siblingMemo,
) {
	var waitGroup sync.WaitGroup

	for i, child := range children {
		waitGroup.Add(1)

		go func(idx int, el *accessibility.Element) {
			defer waitGroup.Done()

			out[idx] = buildOne(el, depth, opts, memo)
		}(i, child)
	}

	waitGroup.Wait()
}

// buildOne fetches a single child's attributes and recurses into its
// submenu, if any. A nil return means the node was dropped (InvalidElement
// mid-walk); any other per-element failure instead produces a placeholder
// node built from whatever attributes were obtained, so one bad element
// never deletes a real menu item and its subtree from the tree.
func buildOne(el *accessibility.Element, depth int, opts Options, memo *siblingMemo) *model.MenuNode {
	attrs, err := el.Fetch()
	if err == accessibility.ErrCannotComplete {
		// Retryable by caller at most once.
		attrs, err = el.Fetch()
	}

	if err == accessibility.ErrInvalidElement {
		el.Release()

		return nil
	}

	if err != nil {
		logDebug(opts, "per-element fetch failed, emitting placeholder node", zap.Error(err))

		node := nodeFromAttrs(attrs)
		node.Element = el

		return node
	}

	logDebug(opts, "fetched node", zap.String("title", attrs.Title), zap.String("role", attrs.Role))

	node := nodeFromAttrs(attrs)
	node.Element = el

	if attrs.PrimaryUIElement != nil {
		node.IsAlternate = true

		if title, ok := memo.titleOf(attrs.PrimaryUIElement); ok {
			node.AlternateOf = title
		}

		attrs.PrimaryUIElement.Release()
	}

	if submenu := submenuChild(el, opts); submenu != nil {
		menuNode := &model.MenuNode{Role: model.RoleMenu, Parent: node}
		menuNode.Element = submenu

		descend(menuNode, submenu, depth+1, opts, memo)

		node.Children = []*model.MenuNode{menuNode}
	}

	return node
}

// submenuChild returns el's child when el has exactly one child and that
// child's role is AXMenu, the shape of an item that opens a submenu. The
// facade exposes no role-of-children shortcut, so this issues one more fetch
// on that sole child.
func submenuChild(el *accessibility.Element, opts Options) *accessibility.Element {
	children := childrenOf(el, opts)
	if len(children) != 1 {
		releaseAll(children)

		return nil
	}

	attrs, err := children[0].Fetch()
	if err != nil || attrs.Role != model.RoleMenu {
		releaseAll(children)

		return nil
	}

	return children[0]
}

func childrenOf(el *accessibility.Element, opts Options) []*accessibility.Element {
	if opts.Kind == KindExtras {
		return el.VisibleChildren()
	}

	return el.Children()
}

func releaseAll(elements []*accessibility.Element) {
	for _, el := range elements {
		el.Release()
	}
}

// logDebug is a nil-safe lazy-log call on the tree-builder's hot path.
func logDebug(opts Options, msg string, fields ...zap.Field) {
	if opts.Logger == nil {
		return
	}

	if ce := opts.Logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Release walks tree, releasing every node's underlying element except
// those of the nodes listed in keep (identified by pointer identity); the
// descendants of a kept node are still released. Callers use
// this once a built tree has been flattened/resolved and only a handful of
// resolved elements still need to outlive the walk.
func Release(tree *model.MenuNode, keep ...*model.MenuNode) {
	keepSet := make(map[*model.MenuNode]struct{}, len(keep))
	for _, n := range keep {
		keepSet[n] = struct{}{}
	}

	releaseRecursive(tree, keepSet)
}

func releaseRecursive(node *model.MenuNode, keep map[*model.MenuNode]struct{}) {
	if node == nil {
		return
	}

	if _, skip := keep[node]; !skip {
		if el, ok := node.Element.(*accessibility.Element); ok {
			el.Release()
			node.Element = nil
		}
	}

	for _, child := range node.Children {
		releaseRecursive(child, keep)
	}
}

func nodeFromAttrs(attrs accessibility.Attributes) *model.MenuNode {
	node := &model.MenuNode{
		Title:   attrs.Title,
		Role:    attrs.Role,
		Enabled: attrs.EnabledKnown && attrs.Enabled,
	}

	node.Checked = checkedFrom(attrs)

	if attrs.ShortcutKey != "" {
		mods := 0
		if attrs.ShortcutModsSet {
			mods = attrs.ShortcutMods
		}

		node.Shortcut = shortcut.Canonicalize(attrs.ShortcutKey, mods)
	}

	return node
}

func checkedFrom(attrs accessibility.Attributes) model.Checked {
	if !attrs.MarkCharKnown {
		return model.CheckedUnknown
	}

	switch attrs.MarkChar {
	case "":
		return model.CheckedUnchecked
	case "-", "–", "—":
		return model.CheckedMixed
	default:
		return model.CheckedChecked
	}
}
