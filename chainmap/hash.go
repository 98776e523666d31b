package chainmap

import (
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Implemented by key types that compute their own hash. The hash must be
// stable for as long as the key is stored, and equal keys must hash equally.
type Hasher interface {
	Hash() uint64
}

// Half the width of the hashes produced by hashOf.
const halfWidth = 32

// Folds the upper half of the hash into the lower half, as only the low bits
// pick a bucket.
func spread(h uint64) uint64 {
	return h ^ (h >> halfWidth)
}

func hashOf(key any) (uint64, error) {
	switch k := key.(type) {
	case Hasher:
		return k.Hash(), nil
	case string:
		return xxhash.Sum64String(k), nil
	case int:
		return uint64(k), nil
	case int64:
		return uint64(k), nil
	case int32:
		return uint64(k), nil
	case uint:
		return uint64(k), nil
	case uint64:
		return k, nil
	case uint32:
		return uint64(k), nil
	case float64:
		return floatBits(k), nil
	case bool:
		return boolBits(k), nil
	}

	return reflectHash(key)
}

// Covers named types and the less common kinds.
func reflectHash(key any) (uint64, error) {
	v := reflect.ValueOf(key)

	switch v.Kind() {
	case reflect.String:
		return xxhash.Sum64String(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return floatBits(v.Float()), nil
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return floatBits(real(c)) ^ bits.RotateLeft64(floatBits(imag(c)), halfWidth), nil
	case reflect.Bool:
		return boolBits(v.Bool()), nil
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return uint64(v.Pointer()), nil
	}

	return 0, &HashError{Type: reflect.TypeOf(key)}
}

// -0 and +0 are equal keys, so they must share a hash.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
