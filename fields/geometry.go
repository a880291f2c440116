package fields

import (
	"fmt"
)

// Geometry describes one uniform, cell centered mesh level
type Geometry struct {
	ProbLo, ProbHi [3]float64
	NCell          [3]int
}

func NewGeometry(probLo, probHi [3]float64, nCell [3]int) (g Geometry) {
	for n := 0; n < 3; n++ {
		if nCell[n] < 1 || probHi[n] <= probLo[n] {
			panic(fmt.Errorf("invalid geometry in direction %d: [%g, %g] with %d cells",
				n, probLo[n], probHi[n], nCell[n]))
		}
	}
	g = Geometry{
		ProbLo: probLo,
		ProbHi: probHi,
		NCell:  nCell,
	}
	return
}

func (g Geometry) CellSize() (dx [3]float64) {
	for n := 0; n < 3; n++ {
		dx[n] = (g.ProbHi[n] - g.ProbLo[n]) / float64(g.NCell[n])
	}
	return
}

// CellCenter is valid for ghost indices as well, i < 0 or i >= NCell
func (g Geometry) CellCenter(i, j, k int) (x, y, z float64) {
	dx := g.CellSize()
	x = g.ProbLo[0] + (float64(i)+0.5)*dx[0]
	y = g.ProbLo[1] + (float64(j)+0.5)*dx[1]
	z = g.ProbLo[2] + (float64(k)+0.5)*dx[2]
	return
}

func (g Geometry) Refine(ratio int) Geometry {
	var nCell [3]int
	for n := 0; n < 3; n++ {
		nCell[n] = g.NCell[n] * ratio
	}
	return NewGeometry(g.ProbLo, g.ProbHi, nCell)
}

// Mesh holds the geometry of every active level, level 0 is the coarsest
type Mesh struct {
	Geoms    []Geometry
	RefRatio int
}

func NewMesh(base Geometry, nLevels, refRatio int) (m *Mesh) {
	if nLevels < 1 {
		nLevels = 1
	}
	if refRatio < 1 {
		refRatio = 2
	}
	m = &Mesh{
		Geoms:    make([]Geometry, nLevels),
		RefRatio: refRatio,
	}
	m.Geoms[0] = base
	for lev := 1; lev < nLevels; lev++ {
		m.Geoms[lev] = m.Geoms[lev-1].Refine(refRatio)
	}
	return
}

func (m *Mesh) NumLevels() int { return len(m.Geoms) }

func (m *Mesh) Geom(lev int) Geometry { return m.Geoms[lev] }
