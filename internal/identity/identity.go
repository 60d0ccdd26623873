// Package identity resolves raw in-game display names to stable canonical
// player identifiers. The rest of the pipeline never does its own name
// matching; every component sees only canonical ids.
package identity

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Resolver maps raw identities to canonical player ids. The fallback chain
// is fixed: stable id when the source record carries one, then alias lookup
// on the lower-cased display name, then the raw display name itself.
type Resolver struct {
	byID    map[string]string
	byAlias map[string]string
}

// NewResolver builds a resolver from an alias table: canonical id → known
// stable ids and display-name variants. A nil table yields a resolver that
// passes raw names through unchanged.
func NewResolver(aliases map[string]AliasSet) *Resolver {
	r := &Resolver{
		byID:    make(map[string]string),
		byAlias: make(map[string]string),
	}
	for canonical, set := range aliases {
		for _, id := range set.IDs {
			r.byID[id] = canonical
		}
		r.byAlias[strings.ToLower(canonical)] = canonical
		for _, name := range set.Names {
			r.byAlias[strings.ToLower(name)] = canonical
		}
	}
	return r
}

// AliasSet lists the known identifiers of one canonical player.
type AliasSet struct {
	IDs   []string `json:"ids,omitempty"`
	Names []string `json:"names,omitempty"`
}

// Load reads an alias table from a JSON file:
//
//	{"Ponce": {"ids": ["42"], "names": ["poncefleur", "PonceTwitch"]}}
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	var aliases map[string]AliasSet
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("decode alias file: %w", err)
	}
	return NewResolver(aliases), nil
}

// Resolve returns the canonical id for a raw (stable id, display name) pair.
// Unresolvable identities fall back to the raw display name as their own
// canonical id; Resolve never fails.
func (r *Resolver) Resolve(stableID, displayName string) string {
	if stableID != "" {
		if canonical, ok := r.byID[stableID]; ok {
			return canonical
		}
	}
	if canonical, ok := r.byAlias[strings.ToLower(strings.TrimSpace(displayName))]; ok {
		return canonical
	}
	return strings.TrimSpace(displayName)
}

// Resolved reports whether the pair maps to a known canonical id without
// falling back to the raw name.
func (r *Resolver) Resolved(stableID, displayName string) bool {
	if stableID != "" {
		if _, ok := r.byID[stableID]; ok {
			return true
		}
	}
	_, ok := r.byAlias[strings.ToLower(strings.TrimSpace(displayName))]
	return ok
}
