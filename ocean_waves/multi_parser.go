package ocean_waves

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

/*
	MultiParser reads keys from two namespaces of one configuration. Keys under
	the label prefix (OceanWaves.<label>) override those under the default
	prefix (OceanWaves.<type>), so several instances of one wave type can share
	defaults.
*/
type MultiParser struct {
	v                     *viper.Viper
	DefaultPrefix, Prefix string
}

func NewMultiParser(v *viper.Viper, defaultPrefix, prefix string) (mp *MultiParser) {
	mp = &MultiParser{
		v:             v,
		DefaultPrefix: defaultPrefix,
		Prefix:        prefix,
	}
	return
}

// joinKey drops the separator when either part is empty, an unlabeled
// instance reads straight from OceanWaves
func joinKey(prefix, key string) string {
	switch {
	case len(prefix) == 0:
		return key
	case len(key) == 0:
		return prefix
	}
	return prefix + "." + key
}

func (mp *MultiParser) lookup(key string) (full string, ok bool) {
	for _, prefix := range []string{mp.Prefix, mp.DefaultPrefix} {
		full = joinKey(prefix, key)
		if mp.v.IsSet(full) {
			return full, true
		}
	}
	return "", false
}

func (mp *MultiParser) Contains(key string) (ok bool) {
	_, ok = mp.lookup(key)
	return
}

// GetFloat reads a required value
func (mp *MultiParser) GetFloat(key string) (val float64, err error) {
	full, ok := mp.lookup(key)
	if !ok {
		err = fmt.Errorf("%w: missing required parameter %s under %s or %s",
			ErrConfig, key, mp.Prefix, mp.DefaultPrefix)
		return
	}
	if val, err = cast.ToFloat64E(mp.v.Get(full)); err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrConfig, full, err)
	}
	return
}

// QueryFloat leaves val unchanged when the key is absent
func (mp *MultiParser) QueryFloat(key string, val *float64) (err error) {
	if !mp.Contains(key) {
		return
	}
	*val, err = mp.GetFloat(key)
	return
}

func (mp *MultiParser) QueryInt(key string, val *int) (err error) {
	full, ok := mp.lookup(key)
	if !ok {
		return
	}
	var iv int
	if iv, err = cast.ToIntE(mp.v.Get(full)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, full, err)
	}
	*val = iv
	return
}

func (mp *MultiParser) QueryBool(key string, val *bool) (err error) {
	full, ok := mp.lookup(key)
	if !ok {
		return
	}
	var bv bool
	if bv, err = cast.ToBoolE(mp.v.Get(full)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, full, err)
	}
	*val = bv
	return
}

func (mp *MultiParser) QueryString(key string, val *string) (err error) {
	full, ok := mp.lookup(key)
	if !ok {
		return
	}
	var sv string
	if sv, err = cast.ToStringE(mp.v.Get(full)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, full, err)
	}
	*val = strings.TrimSpace(sv)
	return
}
