package helpers

import (
	"reflect"
	"time"
)

// NilPanic returns v, or panics with msg when v is nil. Typed nils (nil pointer, map, slice,
// func, chan, interface) count as nil.
//
// Called from every constructor in service and adapters for required collaborators
// (discoverer, balancer, channel factory, logger, clock, metrics).
func NilPanic[T any](v T, msg string) T {
	if isNil(v) {
		panic(msg)
	}
	return v
}

// DurationPanic returns d, or panics with msg when d is not positive.
func DurationPanic(d time.Duration, msg string) time.Duration {
	if d <= 0 {
		panic(msg)
	}
	return d
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
