package sim

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ReadInputs picks up the simulation wide settings, gravity from incflo.gravity
// and the fluid densities from MultiPhase.density_fluid1/2. Absent keys keep
// their defaults.
func (s *CFDSim) ReadInputs(v *viper.Viper) (err error) {
	if v.IsSet("incflo.gravity") {
		var g []float64
		if g, err = ParseVector(v.Get("incflo.gravity")); err != nil {
			return fmt.Errorf("incflo.gravity: %w", err)
		}
		if len(g) != 3 {
			return fmt.Errorf("incflo.gravity: need 3 components, have %d", len(g))
		}
		copy(s.Gravity[:], g)
	}
	for _, key := range []struct {
		name string
		val  *float64
	}{
		{"MultiPhase.density_fluid1", &s.MultiPhase.DensityFluid1},
		{"MultiPhase.density_fluid2", &s.MultiPhase.DensityFluid2},
	} {
		if !v.IsSet(key.name) {
			continue
		}
		if *key.val, err = cast.ToFloat64E(v.Get(key.name)); err != nil {
			return fmt.Errorf("%s: %w", key.name, err)
		}
	}
	return
}

// ParseVector accepts a YAML list or a whitespace separated string, "0 0 -9.81"
func ParseVector(val interface{}) (vec []float64, err error) {
	var items []interface{}
	switch vv := val.(type) {
	case string:
		for _, f := range strings.Fields(vv) {
			items = append(items, f)
		}
	default:
		if items, err = cast.ToSliceE(val); err != nil {
			return
		}
	}
	vec = make([]float64, len(items))
	for i, item := range items {
		if vec[i], err = cast.ToFloat64E(item); err != nil {
			return
		}
	}
	return
}
