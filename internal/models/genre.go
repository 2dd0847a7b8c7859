package models

import (
	"slices"
	"strings"
)

type Genre struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// GenreResponse is the body of GET /genre/movie/list.
type GenreResponse struct {
	Genres []Genre `json:"genres"`
}

// GenreCatalog maps genre id to display name. Built once per run and only read afterwards.
type GenreCatalog map[uint32]string

func NewGenreCatalog(genres []Genre) GenreCatalog {
	catalog := make(GenreCatalog, len(genres))
	for _, g := range genres {
		catalog[g.ID] = g.Name
	}
	return catalog
}

// IDByName returns the id whose name equals name exactly. When several genres
// share the name the lowest id wins.
func (c GenreCatalog) IDByName(name string) (uint32, bool) {
	var (
		found bool
		best  uint32
	)
	for id, n := range c {
		if n != name {
			continue
		}
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best, found
}

// NamesFor joins the names of ids in order, skipping ids missing from the catalog.
func (c GenreCatalog) NamesFor(ids []uint32) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := c[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// IDs returns catalog ids in ascending order.
func (c GenreCatalog) IDs() []uint32 {
	ids := make([]uint32, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
