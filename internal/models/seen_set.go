package models

import "slices"

// SeenSet is the set of movie ids already surfaced to the user. It only grows.
type SeenSet map[uint32]struct{}

func NewSeenSet(ids ...uint32) SeenSet {
	s := make(SeenSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SeenSet) Contains(id uint32) bool {
	_, ok := s[id]
	return ok
}

func (s SeenSet) Insert(id uint32) {
	s[id] = struct{}{}
}

func (s SeenSet) Len() int {
	return len(s)
}

// IDs returns the members in ascending order.
func (s SeenSet) IDs() []uint32 {
	ids := make([]uint32, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
