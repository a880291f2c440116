package fields

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gowaves/utils"
)

/*
	FieldLevel stores a multi-component cell centered field on one mesh level,
	including NGhost layers of ghost cells in every direction. Storage is a
	dense matrix with one row per cell and one column per component.

	Cell indices run from -NGhost to NCell+NGhost-1 in each direction.
*/
type FieldLevel struct {
	Geom   Geometry
	NComp  int
	NGhost int
	Dims   [3]int // Number of cells including ghosts
	Data   *mat.Dense
}

func NewFieldLevel(geom Geometry, nComp, nGhost int) (fl *FieldLevel) {
	fl = &FieldLevel{
		Geom:   geom,
		NComp:  nComp,
		NGhost: nGhost,
	}
	for n := 0; n < 3; n++ {
		fl.Dims[n] = geom.NCell[n] + 2*nGhost
	}
	fl.Data = mat.NewDense(fl.Dims[0]*fl.Dims[1]*fl.Dims[2], nComp, nil)
	return
}

func (fl *FieldLevel) Index(i, j, k int) (ind int) {
	var (
		g = fl.NGhost
	)
	if i < -g || j < -g || k < -g || i >= fl.Dims[0]-g || j >= fl.Dims[1]-g || k >= fl.Dims[2]-g {
		panic(fmt.Errorf("cell (%d,%d,%d) outside of field with %d ghost cells and dims %v",
			i, j, k, g, fl.Dims))
	}
	ind = (i + g) + fl.Dims[0]*((j+g)+fl.Dims[1]*(k+g))
	return
}

func (fl *FieldLevel) At(i, j, k, n int) float64 {
	return fl.Data.At(fl.Index(i, j, k), n)
}

func (fl *FieldLevel) Set(i, j, k, n int, val float64) {
	fl.Data.Set(fl.Index(i, j, k), n, val)
}

// Cell returns a view of all components of one cell
func (fl *FieldLevel) Cell(i, j, k int) []float64 {
	return fl.Data.RawRowView(fl.Index(i, j, k))
}

// Sweep calls kernel for every valid cell plus nGrow ghost layers, in parallel.
// Kernels must only write the cell they are handed. Sweep returns after all
// cells are done.
func (fl *FieldLevel) Sweep(ProcLimit, nGrow int, kernel func(i, j, k int)) {
	if nGrow > fl.NGhost {
		nGrow = fl.NGhost
	}
	var (
		nc = fl.Geom.NCell
		ni = nc[0] + 2*nGrow
		nj = nc[1] + 2*nGrow
		nk = nc[2] + 2*nGrow
	)
	utils.ParallelFor(ProcLimit, ni*nj*nk, func(ind int) {
		i := ind%ni - nGrow
		j := (ind/ni)%nj - nGrow
		k := ind/(ni*nj) - nGrow
		kernel(i, j, k)
	})
}

func (fl *FieldLevel) SetVal(val float64) {
	var (
		raw = fl.Data.RawMatrix().Data
	)
	for i := range raw {
		raw[i] = val
	}
}

type Field struct {
	Name          string
	NComp, NGhost int
	Levels        []*FieldLevel
}

func (f *Field) Level(lev int) *FieldLevel {
	return f.Levels[lev]
}

func (f *Field) NumLevels() int { return len(f.Levels) }

func (f *Field) SetVal(val float64) {
	for _, fl := range f.Levels {
		fl.SetVal(val)
	}
}

func (f *Field) allocate(m *Mesh) {
	f.Levels = make([]*FieldLevel, m.NumLevels())
	for lev := range f.Levels {
		f.Levels[lev] = NewFieldLevel(m.Geom(lev), f.NComp, f.NGhost)
	}
}
