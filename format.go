package tracecast

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// The value formatter renders recorded variable values into a painter box.
// Values arrive as decoded JSON (scalars, []any, map[string]any), so the
// walk is reflection-based: containers are written element by element, which
// is what lets one element carry highlight styling and yield an anchor at
// the pixel position where its run ended.

// writeValue renders v at the painter's cursor with plain styling.
func writeValue(p *painter, v any) Anchor {
	return p.write(repr(v), writeStyle{})
}

// writeValueHighlight renders v, drawing the node whose repr equals target
// with the given style, and returns the position where that run ended. When
// no node matches, the whole value is drawn highlighted, matching how a
// freshly assigned value reads back as its own reference source.
func writeValueHighlight(p *painter, v any, target string, hl writeStyle) Anchor {
	if target == "" || !nodeMatches(v, target) {
		return p.write(repr(v), hl)
	}
	w := &valueWriter{p: p, target: target, hl: hl}
	w.emit(v)
	return w.anchor
}

type valueWriter struct {
	p      *painter
	target string
	hl     writeStyle

	anchor Anchor
	hit    bool
}

func (w *valueWriter) emit(v any) {
	full := repr(v)
	if !w.hit && full == w.target {
		w.anchor = w.p.write(full, w.hl)
		w.hit = true
		return
	}

	if v == nil {
		w.p.write(full, writeStyle{})
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		w.p.write("[", writeStyle{})
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				w.p.write(", ", writeStyle{})
			}
			w.emit(rv.Index(i).Interface())
		}
		w.p.write("]", writeStyle{})
	case reflect.Map:
		w.p.write("{", writeStyle{})
		for i, k := range sortedKeys(rv) {
			if i > 0 {
				w.p.write(", ", writeStyle{})
			}
			w.p.write(repr(k.Interface())+": ", writeStyle{})
			w.emit(rv.MapIndex(k).Interface())
		}
		w.p.write("}", writeStyle{})
	default:
		w.p.write(full, writeStyle{})
	}
}

// nodeMatches reports whether v, or any value nested inside it, has target
// as its repr.
func nodeMatches(v any, target string) bool {
	if repr(v) == target {
		return true
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if nodeMatches(rv.Index(i).Interface(), target) {
				return true
			}
		}
	case reflect.Map:
		for _, k := range sortedKeys(rv) {
			if nodeMatches(rv.MapIndex(k).Interface(), target) {
				return true
			}
		}
	}
	return false
}

// repr formats a value the way the variable panels print it: strings quoted,
// lists bracketed, map entries sorted by key for a stable rendition.
func repr(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(repr(rv.Index(i).Interface()))
		}
		b.WriteByte(']')
		return b.String()
	case reflect.Map:
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range sortedKeys(rv) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(repr(k.Interface()))
			b.WriteString(": ")
			b.WriteString(repr(rv.MapIndex(k).Interface()))
		}
		b.WriteByte('}')
		return b.String()
	}
	return fmt.Sprint(v)
}

// sortedKeys returns a map's keys ordered by their repr, so map renditions
// and match order are deterministic across frames.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return repr(keys[i].Interface()) < repr(keys[j].Interface())
	})
	return keys
}
