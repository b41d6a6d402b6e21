package services

import "sort"

// SelectionSet is the set of resume ids checked for a batch operation.
// Membership only; insertion order is irrelevant.
type SelectionSet map[string]struct{}

func NewSelectionSet() SelectionSet {
	return make(SelectionSet)
}

// Toggle adds id when absent and removes it when present, returning
// whether the id is selected afterwards. Toggling twice restores the
// original membership.
func (s SelectionSet) Toggle(id string) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s SelectionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s SelectionSet) Len() int {
	return len(s)
}

// IDs returns the selected ids sorted for deterministic request bodies.
func (s SelectionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reconcile drops every selected id that is no longer present in the
// last fetched resume list, so stale ids are never submitted to the
// backend after the list changed.
func (s SelectionSet) Reconcile(listed []string) {
	alive := make(map[string]struct{}, len(listed))
	for _, id := range listed {
		alive[id] = struct{}{}
	}
	for id := range s {
		if _, ok := alive[id]; !ok {
			delete(s, id)
		}
	}
}
