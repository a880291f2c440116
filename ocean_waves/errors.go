package ocean_waves

import (
	"errors"
	"fmt"
)

var (
	ErrConfig         = errors.New("ocean waves configuration error")
	ErrMissingPhysics = errors.New("OceanWaves requires MultiPhase or TerrainDrag physics to be active")
)

// UnsupportedFieldError names a field the wave model cannot provide data for
type UnsupportedFieldError struct {
	Field string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("ocean waves: unsupported field %q, have velocity, levelset and vof", e.Field)
}
