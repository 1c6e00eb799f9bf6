package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestGroup_Intersect_Empty(t *testing.T) {
	group := NewGroup()
	hit, isHit := group.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0, math.Inf(1))
	assertMiss(t, hit, isHit)
}

func TestGroup_Intersect_NearestIsOrderIndependent(t *testing.T) {
	red := material.NewMaterial(core.NewVec3(1, 0, 0), core.Vec3{}, 1)
	green := material.NewMaterial(core.NewVec3(0, 1, 0), core.Vec3{}, 1)
	blue := material.NewMaterial(core.NewVec3(0, 0, 1), core.Vec3{}, 1)

	near := NewSphere(core.NewVec3(0, 0, -4), 1, green)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, red)
	floor := NewPlane(core.NewVec3(0, 0, 1), -20, blue)
	behind := NewSphere(core.NewVec3(0, 0, 5), 1, red)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := [][]Primitive{
		{near, far, floor, behind},
		{far, near, behind, floor},
		{floor, behind, far, near},
		{behind, floor, near, far},
	}

	for i, members := range orders {
		hit, isHit := NewGroup(members...).Intersect(ray, 0, math.Inf(1))
		assertHitT(t, hit, isHit, 3)
		if hit.Material != green {
			t.Errorf("order %d: expected nearest sphere's material", i)
		}
	}
}

func TestGroup_Intersect_MatchesMinimumOfMembers(t *testing.T) {
	members := []Primitive{
		NewSphere(core.NewVec3(0.5, 0, -6), 1.5, nil),
		NewPlane(core.NewVec3(0.2, 0.1, 1), -7, nil),
		NewFlatTriangle(core.NewVec3(-3, -3, -5), core.NewVec3(3, -3, -5), core.NewVec3(0, 3, -5), nil),
		NewCone(core.NewVec3(0, -2, -4), core.NewVec3(0, 1, 0), 3, 1, nil),
	}
	group := NewGroup(members...)

	for _, dir := range []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.1, -0.2, -1),
		core.NewVec3(-0.3, 0.05, -1),
		core.NewVec3(0.4, 0.4, -1),
	} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)

		expected := math.Inf(1)
		for _, m := range members {
			if hit, ok := m.Intersect(ray, 0.01, math.Inf(1)); ok && hit.T < expected {
				expected = hit.T
			}
		}

		hit, isHit := group.Intersect(ray, 0.01, math.Inf(1))
		if math.IsInf(expected, 1) {
			assertMiss(t, hit, isHit)
			continue
		}
		assertHitT(t, hit, isHit, expected)
	}
}

func TestGroup_Intersect_Nested(t *testing.T) {
	inner := NewGroup(NewSphere(core.NewVec3(0, 0, -3), 1, nil))
	outer := NewGroup(NewSphere(core.NewVec3(0, 0, -8), 1, nil))
	outer.Add(inner)

	if outer.Len() != 2 {
		t.Fatalf("Expected 2 members, got %d", outer.Len())
	}

	hit, isHit := outer.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0, math.Inf(1))
	assertHitT(t, hit, isHit, 2)
}
