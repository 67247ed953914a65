package geometry

import (
	"github.com/WilliamC07/graphics-final/pkg/core"
)

// HittableList aggregates shapes and answers ray queries with the
// nearest intersection across all of them.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit implements the Hittable interface. The search window shrinks to
// the closest hit found so far, so the result is the nearest
// intersection regardless of object order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}
