// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsontree is a minimal JSON document model whose objects keep
// their keys in insertion order. Field order is part of the converter's
// output, so nothing here is ever backed by map iteration.
package jsontree

// Value is one JSON node: *Object, *Array, String, or Null.
type Value interface {
	value()
}

// String is a JSON string scalar.
type String string

// Null is the JSON null literal.
type Null struct{}

// Array is an ordered list of values.
type Array struct {
	Items []Value
}

// Object is a JSON object with insertion-ordered keys. Replacing the value of
// an existing key keeps the key's position.
type Object struct {
	keys   []string
	values map[string]Value
}

func (String) value()  {}
func (Null) value()    {}
func (*Array) value()  {}
func (*Object) value() {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// NewArray returns an array holding items.
func NewArray(items ...Value) *Array {
	return &Array{Items: items}
}

// Append adds v to the end of the array.
func (a *Array) Append(v Value) {
	a.Items = append(a.Items, v)
}

// Len returns the number of items.
func (a *Array) Len() int {
	return len(a.Items)
}

// Set stores v under key. New keys go to the end.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Remove deletes key, preserving the order of the remaining keys.
func (o *Object) Remove(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.keys)
}

// Field is one key/value pair of an Object.
type Field struct {
	Key   string
	Value Value
}

// Fields returns an ordered snapshot of the object's fields.
func (o *Object) Fields() []Field {
	out := make([]Field, len(o.keys))
	for i, k := range o.keys {
		out[i] = Field{Key: k, Value: o.values[k]}
	}
	return out
}

// Clear removes every field.
func (o *Object) Clear() {
	o.keys = nil
	o.values = make(map[string]Value)
}
