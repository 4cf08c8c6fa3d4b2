package logging

import (
	"fmt"
	"reflect"
)

// Recursion depth and element caps keep a Dump of a deep or large value
// from flooding the destination.
const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump logs the contents of v as DebugLevel records, one line per struct
// field, map entry or element. Pointers and interfaces are unwrapped with
// cycle detection; unexported fields are skipped. All lines carry the call
// site of the Dump call itself.
func (l *Logger) Dump(v any) {
	if l.unbound() || DebugLevel < l.GetLevel() {
		return
	}
	site := Capture(1)
	if v == nil {
		_ = l.log(DebugLevel, "dump: <nil>", site)
		return
	}
	visited := make(map[uintptr]bool)
	l.dumpValue(v, "dump", site, visited, 0)
}

func (l *Logger) dumpValue(v any, prefix string, site CallSite, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		_ = l.log(DebugLevel, prefix+": <max depth reached>", site)
		return
	}
	if v == nil {
		_ = l.log(DebugLevel, prefix+": <nil>", site)
		return
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			_ = l.log(DebugLevel, prefix+": <nil>", site)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				_ = l.log(DebugLevel, prefix+": <circular reference>", site)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		_ = l.log(DebugLevel, fmt.Sprintf("%s: %s {", prefix, typ.Name()), site)
		for i := 0; i < val.NumField(); i++ {
			field := val.Field(i)
			if !field.CanInterface() {
				continue
			}
			l.dumpValue(field.Interface(), prefix+"."+typ.Field(i).Name, site, visited, depth+1)
		}
		_ = l.log(DebugLevel, prefix+": }", site)

	case reflect.Map:
		_ = l.log(DebugLevel, fmt.Sprintf("%s: %s (len: %d) {", prefix, val.Type(), val.Len()), site)
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			l.dumpValue(iter.Value().Interface(), prefix+"["+key+"]", site, visited, depth+1)
		}
		_ = l.log(DebugLevel, prefix+": }", site)

	case reflect.Slice, reflect.Array:
		_ = l.log(DebugLevel, fmt.Sprintf("%s: %s (len: %d) {", prefix, val.Type(), val.Len()), site)
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			l.dumpValue(val.Index(i).Interface(), fmt.Sprintf("%s[%d]", prefix, i), site, visited, depth+1)
		}
		if val.Len() > maxDumpElements {
			_ = l.log(DebugLevel, fmt.Sprintf("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements), site)
		}
		_ = l.log(DebugLevel, prefix+": }", site)

	default:
		if val.CanInterface() {
			_ = l.log(DebugLevel, fmt.Sprintf("%s: %v", prefix, val.Interface()), site)
		} else {
			_ = l.log(DebugLevel, fmt.Sprintf("%s: %v", prefix, v), site)
		}
	}
}
