package hashing

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/chainset"
)

// ForKey returns a hash function suitable for keys of type K. The concrete
// hashing is selected per key by its dynamic kind, so interface-typed keys
// and named types work as well. Keys which are == hash equally.
func ForKey[K comparable]() chainset.HashFunc[K] {
	return func(k K) uint64 {
		return Any(k)
	}
}

// Any hashes an arbitrary comparable value. It panics for values of a kind
// which cannot be compared with ==, just like a Go map does.
func Any(v interface{}) uint64 {
	switch x := v.(type) { // fast path for the usual key types
	case nil:
		return 0
	case int:
		return uint64(x)
	case int64:
		return uint64(x)
	case string:
		return String(x)
	}
	return Value(reflect.ValueOf(v))
}

// Value hashes a reflected value by its kind:
//
//     integers, bools  → their own value
//     floats, complex  → IEEE bits, with +0 and -0 unified
//     strings          → xxhash
//     pointers, chans  → address
//     interfaces       → hash of the dynamic value
//     structs, arrays  → xxhash over the element hashes
//
// Struct and array elements are hashed with the same rules, so the hash of a
// struct with a pointer field does not depend on the value pointed to.
func Value(rv reflect.Value) uint64 {
	switch rv.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return combine(Float(real(c)), Float(imag(c)))
	case reflect.String:
		return String(rv.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return uint64(rv.Pointer())
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return Value(rv.Elem())
	case reflect.Struct:
		d := xxhash.New()
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if t.Field(i).Name == "_" { // blank fields do not take part in ==
				continue
			}
			write(d, Value(rv.Field(i)))
		}
		return d.Sum64()
	case reflect.Array:
		d := xxhash.New()
		for i := 0; i < rv.Len(); i++ {
			write(d, Value(rv.Index(i)))
		}
		return d.Sum64()
	}
	panic(fmt.Errorf("hashing: hash of unhashable type %s", rv.Type()))
}

// Identity hashes an integer to its own value.
func Identity[I ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](i I) uint64 {
	return uint64(i)
}

// String hashes a string with xxhash.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Float hashes the IEEE 754 bits of f. +0 and -0 compare equal and therefore
// hash equally.
func Float(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func combine(hashes ...uint64) uint64 {
	d := xxhash.New()
	for _, h := range hashes {
		write(d, h)
	}
	return d.Sum64()
}

func write(d *xxhash.Digest, h uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	d.Write(buf[:])
}
