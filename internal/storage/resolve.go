// ABOUTME: ID prefix resolution against a Store.
// ABOUTME: Lets CLI and MCP callers pass short unique id prefixes instead of full UUIDs.
package storage

import (
	"fmt"
	"strings"
)

// ResolveActivityID expands an id prefix to the full activity id. Full
// UUIDs pass through without a lookup; anything else must match exactly
// one stored record.
func ResolveActivityID(s Store, idOrPrefix string) (string, error) {
	if looksLikeFullID(idOrPrefix) {
		return idOrPrefix, nil
	}
	activities, err := s.LoadAllActivities()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, a := range activities {
		if strings.HasPrefix(a.ID, idOrPrefix) {
			matches = append(matches, a.ID)
		}
	}
	return onlyMatch(idOrPrefix, matches)
}

// ResolveGoalID expands an id prefix to the full goal id.
func ResolveGoalID(s Store, idOrPrefix string) (string, error) {
	if looksLikeFullID(idOrPrefix) {
		return idOrPrefix, nil
	}
	goals, err := s.LoadAllGoals()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, idOrPrefix) {
			matches = append(matches, g.ID)
		}
	}
	return onlyMatch(idOrPrefix, matches)
}

func looksLikeFullID(s string) bool {
	return len(s) == 36 && strings.Count(s, "-") == 4
}

func onlyMatch(prefix string, matches []string) (string, error) {
	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", prefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", prefix)
	}
	return matches[0], nil
}
