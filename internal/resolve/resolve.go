// Package resolve implements the exact and fuzzy matching rules, turning a
// flattened item list and a query into a single resolved item (or a typed
// NotFound/Ambiguous outcome).
package resolve

import (
	"sort"
	"strings"

	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
	"github.com/oleksiiluchnikov/menucli/internal/model"
)

// Options carries the resolver's input flags.
type Options struct {
	Exact             bool
	EnabledOnly       bool
	AlternatesAllowed bool
	Limit             int
}

// Candidate pairs a FlatItem with its fuzzy score, for Search's ranked output.
type Candidate struct {
	Item  model.FlatItem
	Score int

	order int
}

// Resolve finds the single item matching query under opts. It returns
// derrors.CodeNotFound or derrors.CodeAmbiguous as the error's code on
// failure.
func Resolve(items []model.FlatItem, query string, opts Options) (model.FlatItem, error) {
	if opts.Exact {
		return resolveExact(items, query)
	}

	candidates := Search(items, query, unlimited(opts))

	if len(candidates) == 0 || candidates[0].Score == 0 {
		return model.FlatItem{}, derrors.Newf(derrors.CodeNotFound, "no menu item matches %q", query)
	}

	if len(candidates) == 1 {
		return candidates[0].Item, nil
	}

	if candidates[0].Score > candidates[1].Score {
		return candidates[0].Item, nil
	}

	// Tied top score: only genuinely ambiguous when the leaf titles also
	// match, since the deterministic tie-break (path length, then
	// traversal order) otherwise already distinguishes the winner.
	if leafTitle(candidates[0].Item.Path) == leafTitle(candidates[1].Item.Path) {
		tied := 0
		for _, c := range candidates {
			if c.Score == candidates[0].Score {
				tied++
			}
		}

		return model.FlatItem{}, derrors.Newf(derrors.CodeAmbiguous,
			"%q matches %d items with equal rank", query, tied).
			WithContext("top_path", candidates[0].Item.Path).
			WithContext("runner_up_path", candidates[1].Item.Path)
	}

	return candidates[0].Item, nil
}

func unlimited(opts Options) Options {
	opts.Limit = 0

	return opts
}

func resolveExact(items []model.FlatItem, path string) (model.FlatItem, error) {
	var matches []model.FlatItem

	for _, item := range items {
		if item.Path == path {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return model.FlatItem{}, derrors.Newf(derrors.CodeNotFound, "no menu item at path %q", path)
	case 1:
		return matches[0], nil
	default:
		return model.FlatItem{}, derrors.Newf(derrors.CodeAmbiguous, "path %q is not unique", path)
	}
}

// Search ranks every item against query per the scoring rubric and
// returns up to opts.Limit candidates (every candidate when Limit <= 0).
func Search(items []model.FlatItem, query string, opts Options) []Candidate {
	tokens := strings.Fields(query)

	candidates := make([]Candidate, 0, len(items))

	for i, item := range items {
		if opts.EnabledOnly && !item.Enabled {
			continue
		}

		if !opts.AlternatesAllowed && item.IsAlternate {
			continue
		}

		if !allTokensMatch(tokens, item.Path) {
			continue
		}

		score := scoreItem(item, query, tokens)
		if score == 0 && query != "" {
			continue
		}

		candidates = append(candidates, Candidate{Item: item, Score: score, order: i})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		if len(candidates[a].Item.Path) != len(candidates[b].Item.Path) {
			return len(candidates[a].Item.Path) < len(candidates[b].Item.Path)
		}

		return candidates[a].order < candidates[b].order
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = len(candidates)
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	return candidates[:limit]
}

// allTokensMatch reports whether every token matches somewhere in path,
// using smart-case comparison: a lowercase token matches case-insensitively,
// any other token matches case-sensitively.
func allTokensMatch(tokens []string, path string) bool {
	for _, token := range tokens {
		if token == strings.ToLower(token) {
			if !strings.Contains(strings.ToLower(path), token) {
				return false
			}

			continue
		}

		if !strings.Contains(path, token) {
			return false
		}
	}

	return true
}

func leafTitle(path string) string {
	idx := strings.LastIndex(path, model.PathSeparator)
	if idx < 0 {
		return path
	}

	return path[idx+len(model.PathSeparator):]
}

// scoreItem applies the additive scoring rubric.
func scoreItem(item model.FlatItem, query string, tokens []string) int {
	leaf := leafTitle(item.Path)

	score := 0

	if query != "" {
		if strings.Contains(strings.ToLower(leaf), strings.ToLower(query)) {
			score += 100
		}
		if strings.HasPrefix(strings.ToLower(leaf), strings.ToLower(query)) {
			score += 50
		}
	}

	matchedInLeaf, run := tokenLeafStats(tokens, leaf)
	score += 25 * matchedInLeaf
	score += 10 * run

	score -= len(item.Path)

	return score
}

// tokenLeafStats counts how many tokens match inside leaf (as opposed to
// ancestor path segments) and the longest run of consecutive such tokens.
func tokenLeafStats(tokens []string, leaf string) (matched int, longestRun int) {
	lowerLeaf := strings.ToLower(leaf)

	run := 0

	for _, token := range tokens {
		hit := false
		if token == strings.ToLower(token) {
			hit = strings.Contains(lowerLeaf, token)
		} else {
			hit = strings.Contains(leaf, token)
		}

		if hit {
			matched++
			run++

			if run > longestRun {
				longestRun = run
			}
		} else {
			run = 0
		}
	}

	return matched, longestRun
}
