/*
File   : zlang/object/object_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_ToString_IntegralHasNoTrailingZero(t *testing.T) {
	assert.Equal(t, "14", (&Number{Value: 14}).ToString())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).ToString())
}

func TestBool_ToString_UsesSlang(t *testing.T) {
	assert.Equal(t, "fr", (&Bool{Value: true}).ToString())
	assert.Equal(t, "cap", (&Bool{Value: false}).ToString())
}

func TestArray_ToString_RecursivelyStringifies(t *testing.T) {
	arr := &Array{Elements: []Value{&Number{Value: 1}, &String{Value: "a"}, &Bool{Value: true}}}
	assert.Equal(t, "[1, a, fr]", arr.ToString())
}

func TestObject_ToString_PreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", &Number{Value: 2})
	o.Set("a", &Number{Value: 1})
	assert.Equal(t, "{b: 2, a: 1}", o.ToString())
}

func TestEqual_ScalarsByValue(t *testing.T) {
	assert.True(t, Equal(&Number{Value: 1}, &Number{Value: 1}))
	assert.True(t, Equal(&String{Value: "x"}, &String{Value: "x"}))
	assert.True(t, Equal(NullValue, NullValue))
	assert.False(t, Equal(&Number{Value: 1}, &String{Value: "1"}))
}

func TestEqual_ContainersByIdentity(t *testing.T) {
	a := &Array{Elements: []Value{&Number{Value: 1}}}
	b := &Array{Elements: []Value{&Number{Value: 1}}}
	assert.False(t, Equal(a, b), "distinct arrays with equal contents compare unequal")
	assert.True(t, Equal(a, a), "the same array compares equal to itself")
}

func TestTruthy_ZeroAndEmptyStringAreTruthy(t *testing.T) {
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
	assert.False(t, Truthy(&Bool{Value: false}))
	assert.False(t, Truthy(NullValue))
}

func TestBuiltinLength_AcrossTypes(t *testing.T) {
	s, err := builtinLength(nil, nil, []Value{&String{Value: "hello"}})
	assert.NoError(t, err)
	assert.Equal(t, "5", s.ToString())

	a, err := builtinLength(nil, nil, []Value{&Array{Elements: []Value{&Number{Value: 1}, &Number{Value: 2}}}})
	assert.NoError(t, err)
	assert.Equal(t, "2", a.ToString())
}

func TestBuiltinSplitAndJoin(t *testing.T) {
	arr, err := builtinSplit(nil, nil, []Value{&String{Value: "a,b,c"}, &String{Value: ","}})
	assert.NoError(t, err)
	assert.Equal(t, "3", mustLen(t, arr))

	joined, err := builtinJoin(nil, nil, []Value{arr, &String{Value: "-"}})
	assert.NoError(t, err)
	assert.Equal(t, "a-b-c", joined.ToString())
}

func mustLen(t *testing.T, v Value) string {
	t.Helper()
	n, err := builtinLength(nil, nil, []Value{v})
	assert.NoError(t, err)
	return n.ToString()
}
