// SPDX-License-Identifier: MIT

package fretboard

import (
	"slices"

	"github.com/katalvlaran/harmonics/voicing"
)

// Group collects the shapes that realise one register-normalized voicing.
type Group struct {
	Voicing voicing.Voicing
	byCat   [categoryCount][]GtrShape
}

// Shapes returns the shapes of category c.
func (g Group) Shapes(c Category) []GtrShape {
	if c < 0 || c >= categoryCount {
		return nil
	}

	return slices.Clone(g.byCat[c])
}

// Len counts shapes across categories.
func (g Group) Len() int {
	total := 0
	for _, shapes := range g.byCat {
		total += len(shapes)
	}

	return total
}

// Result is the grouped outcome of FindGtrShapes. Groups are ordered by
// voicing (voice count, then pitches from the bottom); shapes inside a
// category by their frets.
type Result struct {
	groups []Group
}

// Len counts every shape.
func (r Result) Len() int {
	total := 0
	for _, g := range r.groups {
		total += g.Len()
	}

	return total
}

// Groups returns the groups in order.
func (r Result) Groups() []Group {
	return slices.Clone(r.groups)
}

// Shapes returns every shape of category c, group by group.
func (r Result) Shapes(c Category) []GtrShape {
	var out []GtrShape
	for _, g := range r.groups {
		out = append(out, g.Shapes(c)...)
	}

	return out
}

// Find looks a shape up by its frets, Muted for unplayed strings.
func (r Result) Find(frets ...int) (GtrShape, bool) {
	for _, g := range r.groups {
		for _, shapes := range g.byCat {
			for _, s := range shapes {
				if slices.Equal(s.Frets, frets) {
					return s, true
				}
			}
		}
	}

	return GtrShape{}, false
}

// groupShapes buckets shapes by normalized voicing and category and sorts
// everything into its output order.
func groupShapes(shapes []GtrShape) Result {
	index := make(map[string]int)
	var groups []Group
	for _, s := range shapes {
		key := s.Voicing().Normalize()
		gi, ok := index[key.Key()]
		if !ok {
			gi = len(groups)
			index[key.Key()] = gi
			groups = append(groups, Group{Voicing: key})
		}
		groups[gi].byCat[s.Category] = append(groups[gi].byCat[s.Category], s)
	}

	slices.SortFunc(groups, func(a, b Group) int {
		return voicing.Compare(a.Voicing, b.Voicing)
	})
	for gi := range groups {
		for c := range groups[gi].byCat {
			slices.SortFunc(groups[gi].byCat[c], func(a, b GtrShape) int {
				return slices.Compare(a.Frets, b.Frets)
			})
		}
	}

	return Result{groups: groups}
}
