package geometry

import (
	"math"
	"testing"

	"github.com/WilliamC07/graphics-final/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := list.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected empty list to miss, got hit at t=%f", hit.T)
	}
}

func TestHittableList_NearestHitWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -10), 0.5, testMaterial{})
	list := NewHittableList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0, math.Inf(1))

	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nearest sphere at t=1.5, got t=%f", hit.T)
	}
}

func TestHittableList_OrderIndependent(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{})
	b := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial{})
	c := NewSphere(core.NewVec3(0, 0, -9), 0.5, testMaterial{})

	orderings := [][]core.Hittable{
		{a, b, c},
		{c, b, a},
		{b, a, c},
		{c, a, b},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var expectedT float64
	for i, objects := range orderings {
		list := NewHittableList(objects...)
		hit, isHit := list.Hit(ray, 0, math.Inf(1))
		if !isHit {
			t.Fatalf("Ordering %d: expected hit, but got miss", i)
		}

		if i == 0 {
			expectedT = hit.T
			continue
		}
		if hit.T != expectedT {
			t.Errorf("Ordering %d: expected t=%f, got t=%f", i, expectedT, hit.T)
		}
	}
}

func TestHittableList_AddAndClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{}))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, 0, math.Inf(1)); !isHit {
		t.Fatal("Expected hit after Add")
	}

	list.Clear()
	if hit, isHit := list.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected miss after Clear, got hit at t=%f", hit.T)
	}
}

func TestHittableList_WindowNarrowing(t *testing.T) {
	// Two spheres along the ray; a tMax between them hides the far one
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -10), 0.5, testMaterial{})
	list := NewHittableList(near, far)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 3.0, 8.0)

	if isHit {
		t.Errorf("Expected both spheres outside (3, 8), got hit at t=%f", hit.T)
	}
}
