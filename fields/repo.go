package fields

import (
	"fmt"
	"sort"
)

// FieldRepo owns every field of a simulation, defined on every active level
type FieldRepo struct {
	mesh   *Mesh
	fields map[string]*Field
}

func NewFieldRepo(m *Mesh) (r *FieldRepo) {
	r = &FieldRepo{
		mesh:   m,
		fields: make(map[string]*Field),
	}
	return
}

func (r *FieldRepo) Mesh() *Mesh { return r.mesh }

func (r *FieldRepo) NumActiveLevels() int { return r.mesh.NumLevels() }

// DeclareField creates the field, or returns the existing one when the shape
// matches. A shape mismatch is a programming error.
func (r *FieldRepo) DeclareField(name string, nComp, nGhost int) (f *Field) {
	var ok bool
	if f, ok = r.fields[name]; ok {
		if f.NComp != nComp || f.NGhost != nGhost {
			panic(fmt.Errorf("field %s redeclared with %d components, %d ghosts; existing has %d, %d",
				name, nComp, nGhost, f.NComp, f.NGhost))
		}
		return
	}
	f = &Field{
		Name:   name,
		NComp:  nComp,
		NGhost: nGhost,
	}
	f.allocate(r.mesh)
	r.fields[name] = f
	return
}

func (r *FieldRepo) FieldExists(name string) (ok bool) {
	_, ok = r.fields[name]
	return
}

func (r *FieldRepo) GetField(name string) (f *Field) {
	var ok bool
	if f, ok = r.fields[name]; !ok {
		panic(fmt.Errorf("field %s does not exist, have %v", name, r.FieldNames()))
	}
	return
}

func (r *FieldRepo) FieldNames() (names []string) {
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Regrid replaces the mesh and reallocates every field. Field contents are not
// carried over, owners must reinitialize.
func (r *FieldRepo) Regrid(m *Mesh) {
	r.mesh = m
	for _, f := range r.fields {
		f.allocate(m)
	}
}
