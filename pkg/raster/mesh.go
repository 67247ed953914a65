package raster

import (
	"math"

	"github.com/WilliamC07/graphics-final/pkg/core"
)

// Vertex is a mesh vertex carrying its surface normal.
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
}

// Triangle spans three vertices.
type Triangle struct {
	V0, V1, V2 Vertex
}

// Mesh is a triangle soup approximating a surface.
type Mesh struct {
	Triangles []Triangle
}

// TessellateSphere approximates a sphere with a latitude/longitude grid:
// stacks bands from pole to pole, slices segments around the axis. Vertex
// normals are the exact sphere normals, so shading stays smooth even at
// coarse resolutions. Produces 2*slices*(stacks-1) triangles.
func TessellateSphere(center core.Vec3, radius float64, stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	// Grid of vertices, (stacks+1) rows by (slices+1) columns. The last
	// column repeats the first so the seam closes exactly.
	grid := make([][]Vertex, stacks+1)
	for i := 0; i <= stacks; i++ {
		grid[i] = make([]Vertex, slices+1)

		// phi runs from the north pole (0) to the south pole (pi)
		phi := math.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)

		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)

			normal := core.NewVec3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			grid[i][j] = Vertex{
				Position: center.Add(normal.Multiply(radius)),
				Normal:   normal,
			}
		}
	}

	mesh := &Mesh{Triangles: make([]Triangle, 0, 2*slices*(stacks-1))}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			// Each grid cell becomes two triangles, except at the poles
			// where one collapses to a degenerate sliver and is skipped.
			if i > 0 {
				mesh.Triangles = append(mesh.Triangles, Triangle{
					V0: grid[i][j],
					V1: grid[i+1][j],
					V2: grid[i][j+1],
				})
			}
			if i < stacks-1 {
				mesh.Triangles = append(mesh.Triangles, Triangle{
					V0: grid[i][j+1],
					V1: grid[i+1][j],
					V2: grid[i+1][j+1],
				})
			}
		}
	}

	return mesh
}
