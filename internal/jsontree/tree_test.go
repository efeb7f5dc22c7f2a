// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	o := NewObject()
	for _, k := range []string{"zeta", "alpha", "mid", "beta"} {
		o.Set(k, String(k))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "beta"}, o.Keys())

	o.Set("alpha", NewArray(String("x")))
	assert.Equal(t, []string{"zeta", "alpha", "mid", "beta"}, o.Keys(), "replacing keeps position")

	v, ok := o.Get("alpha")
	require.True(t, ok)
	assert.IsType(t, &Array{}, v)
}

func TestObjectRemove(t *testing.T) {
	o := NewObject()
	o.Set("a", String("1"))
	o.Set("b", String("2"))
	o.Set("c", String("3"))

	o.Remove("b")
	o.Remove("missing")
	assert.Equal(t, []string{"a", "c"}, o.Keys())
	assert.False(t, o.Has("b"))
	assert.Equal(t, 2, o.Len())

	o.Set("b", Null{})
	assert.Equal(t, []string{"a", "c", "b"}, o.Keys(), "re-added keys go to the end")
}

func TestObjectFieldsSnapshot(t *testing.T) {
	o := NewObject()
	o.Set("x", String("1"))
	o.Set("y", String("2"))

	fields := o.Fields()
	o.Clear()

	assert.Equal(t, 0, o.Len())
	assert.Equal(t, []Field{{Key: "x", Value: String("1")}, {Key: "y", Value: String("2")}}, fields)
}

func TestMarshal(t *testing.T) {
	inner := NewObject()
	inner.Set("b", String("<tag> & \"quote\""))
	inner.Set("a", Null{})

	root := NewObject()
	root.Set("z", inner)
	root.Set("list", NewArray(String("1"), NewObject(), NewArray()))

	got, err := Marshal(root)
	require.NoError(t, err)
	assert.Equal(t, `{"z":{"b":"<tag> & \"quote\"","a":null},"list":["1",{},[]]}`, string(got))
}

func TestMarshalIndent(t *testing.T) {
	inner := NewObject()
	inner.Set("Value", String("Bellandur"))

	root := NewObject()
	root.Set("Values", inner)

	got, err := MarshalIndent(root)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Values\": {\n    \"Value\": \"Bellandur\"\n  }\n}", string(got))
}

func TestMarshalObjectViaInterface(t *testing.T) {
	o := NewObject()
	o.Set("k", String("v"))

	got, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(got))

	arr, err := NewArray(o).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"k":"v"}]`, string(arr))
}
