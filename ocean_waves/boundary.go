package ocean_waves

import (
	"fmt"
	"math"

	"github.com/notargets/gowaves/fields"
	"github.com/notargets/gowaves/sim"
)

type Face uint8

const (
	XLo Face = iota
	YLo
	ZLo
	XHi
	YHi
	ZHi
)

func (f Face) String() string {
	switch f {
	case XLo:
		return "xlo"
	case YLo:
		return "ylo"
	case ZLo:
		return "zlo"
	case XHi:
		return "xhi"
	case YHi:
		return "yhi"
	case ZHi:
		return "zhi"
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

func (f Face) Dir() int { return int(f) % 3 }

func (f Face) IsHigh() bool { return f >= XHi }

// OceanWavesBoundary serves the target fields as boundary data and keeps the
// time those fields were last computed for
type OceanWavesBoundary struct {
	sim          *sim.CFDSim
	bdyTime      float64
	haveBdyTime  bool
	targetFields map[string]string
}

func NewOceanWavesBoundary(s *sim.CFDSim) (ob *OceanWavesBoundary) {
	ob = &OceanWavesBoundary{
		sim: s,
		targetFields: map[string]string{
			"velocity": TargetVelocity,
			"levelset": TargetLevelset,
			"vof":      TargetVOF,
		},
	}
	return
}

func (ob *OceanWavesBoundary) RecordBoundaryDataTime(t float64) {
	ob.bdyTime = t
	ob.haveBdyTime = true
}

func (ob *OceanWavesBoundary) BoundaryDataTime() float64 { return ob.bdyTime }

// IsStale is true when the target fields were not computed for time t
func (ob *OceanWavesBoundary) IsStale(t float64) bool {
	if !ob.haveBdyTime {
		return true
	}
	return math.Abs(t-ob.bdyTime) > 1.e-12*math.Max(1., math.Abs(t))
}

func (ob *OceanWavesBoundary) target(fieldName string, level int) (fl *fields.FieldLevel, err error) {
	name, ok := ob.targetFields[fieldName]
	if !ok {
		err = &UnsupportedFieldError{Field: fieldName}
		return
	}
	fl = ob.sim.Repo().GetField(name).Level(level)
	return
}

// Sample returns all components of the target matching fieldName at one cell
func (ob *OceanWavesBoundary) Sample(fieldName string, level, i, j, k int) (vals []float64, err error) {
	var src *fields.FieldLevel
	if src, err = ob.target(fieldName, level); err != nil {
		return
	}
	vals = append(vals, src.Cell(i, j, k)...)
	return
}

// SetInflow fills the ghost cells of dest beyond face with the matching target
// field, over as many ghost layers as both fields carry
func (ob *OceanWavesBoundary) SetInflow(fieldName string, level int, face Face, dest *fields.FieldLevel) (err error) {
	var src *fields.FieldLevel
	if src, err = ob.target(fieldName, level); err != nil {
		return
	}
	if src.NComp != dest.NComp {
		return fmt.Errorf("%w: %s has %d components, boundary data %s has %d",
			ErrConfig, fieldName, dest.NComp, ob.targetFields[fieldName], src.NComp)
	}
	var (
		nGrow = min(src.NGhost, dest.NGhost)
		dir   = face.Dir()
		nCell = dest.Geom.NCell[dir]
	)
	dest.Sweep(ob.sim.ParallelLimit(), nGrow, func(i, j, k int) {
		ind := [3]int{i, j, k}[dir]
		if (face.IsHigh() && ind >= nCell) || (!face.IsHigh() && ind < 0) {
			copy(dest.Cell(i, j, k), src.Cell(i, j, k))
		}
	})
	return
}
