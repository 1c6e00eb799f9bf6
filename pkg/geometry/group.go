package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is an ordered collection of primitives reporting the nearest hit among them
type Group struct {
	Members []Primitive
}

// NewGroup creates a group from the given members
func NewGroup(members ...Primitive) *Group {
	return &Group{Members: members}
}

// Add appends a member to the group
func (g *Group) Add(p Primitive) {
	g.Members = append(g.Members, p)
}

// Len returns the number of direct members
func (g *Group) Len() int {
	return len(g.Members)
}

// Intersect tests every member and keeps the closest hit.
// Each member only has to beat the closest t found so far.
func (g *Group) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	closest := NoHit()
	closestSoFar := tMax
	hitAnything := false

	for _, member := range g.Members {
		if hit, isHit := member.Intersect(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
