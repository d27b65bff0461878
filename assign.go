/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import "reflect"

// Assign writes a loosely typed value into dst, converting when the dynamic
// type does not match exactly. Decoded interchange formats widen numbers
// (JSON turns every number into float64); Assign narrows them back to the
// field's type. Values that neither match nor convert leave dst unchanged —
// type mismatches are not an error at this layer.
func Assign[V any](dst *V, v any) {
	if v == nil {
		var zero V
		*dst = zero
		return
	}
	if tv, ok := v.(V); ok {
		*dst = tv
		return
	}
	rv := reflect.ValueOf(v)
	dt := reflect.TypeOf(*dst)
	if dt == nil || !rv.Type().ConvertibleTo(dt) {
		return
	}
	// Go allows converting integers into one-rune strings; that is never the
	// intent for a loosely typed field value, so treat it as a mismatch.
	if dt.Kind() == reflect.String && rv.Kind() != reflect.String {
		return
	}
	*dst = rv.Convert(dt).Interface().(V)
}
