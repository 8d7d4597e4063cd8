package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylesheet.style'
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Property values are opaque: they are
// neither validated nor normalized, but passed through to the stylesheet
// as written by the client.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS declarations of a single rule, i.e. a mapping from
// property keys to property values. Keys are unique. The map remembers the
// order in which keys have been inserted first; this order is used for
// output. Overwriting the value of a key does not change its position.
//
// nil is a legal (empty) property map for all read operations.
type PropertyMap struct {
	keys []string
	m    map[string]Property
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, kv := range pmap.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	s += "}"
	return s
}

// Len returns the number of properties.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.keys)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil || pmap.m == nil {
		return NullStyle, false
	}
	p, ok := pmap.m[key]
	return p, ok
}

// IsSet is a predicate wether a property is set within this map.
func (pmap *PropertyMap) IsSet(key string) bool {
	_, ok := pmap.Property(key)
	return ok
}

// Set a property's value. Overwrites an existing value, if present.
// Returns true if the map has been changed.
func (pmap *PropertyMap) Set(key string, p Property) bool {
	if pmap.m == nil {
		pmap.m = make(map[string]Property)
	}
	old, exists := pmap.m[key]
	if !exists {
		pmap.keys = append(pmap.keys, key)
	} else if old == p {
		return false
	}
	pmap.m[key] = p
	return true
}

// Keys returns the property keys in insertion order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, len(pmap.keys))
	copy(keys, pmap.keys)
	return keys
}

// Properties returns all properties of a map, in insertion order.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, len(pmap.keys))
	for i, k := range pmap.keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

// Merge sets every property of other in pmap, overwriting values of keys
// present in both. Properties of pmap missing in other are left untouched.
// Returns the number of properties changed or added.
func (pmap *PropertyMap) Merge(other *PropertyMap) int {
	changed := 0
	for _, kv := range other.Properties() {
		if pmap.Set(kv.Key, kv.Value) {
			changed++
		}
	}
	return changed
}

// Copy returns a copy of pmap, which shares no state with pmap.
func (pmap *PropertyMap) Copy() *PropertyMap {
	c := NewPropertyMap()
	c.Merge(pmap)
	return c
}

// Equal is a predicate for property maps holding identical properties,
// regardless of the order of insertion.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Len() != other.Len() {
		return false
	}
	for _, kv := range pmap.Properties() {
		if p, ok := other.Property(kv.Key); !ok || p != kv.Value {
			return false
		}
	}
	return true
}

// Declarations formats the properties in the map as CSS declarations,
// one per line and indented by indent.
//
//     indent + "color: red;\n"
func (pmap *PropertyMap) Declarations(indent string) string {
	var b strings.Builder
	for _, kv := range pmap.Properties() {
		b.WriteString(indent)
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteString(";\n")
	}
	return b.String()
}
