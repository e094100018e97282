/*
File   : zlang/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/zlang/object"
	"github.com/stretchr/testify/assert"
)

func TestLookUp_FallsBackToParent(t *testing.T) {
	root := New()
	root.Bind("x", &object.Number{Value: 1})
	child := Enclose(root)

	v, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.ToString())
}

func TestBind_ShadowsWithoutMutatingParent(t *testing.T) {
	root := New()
	root.Bind("x", &object.Number{Value: 1})
	child := Enclose(root)
	child.Bind("x", &object.Number{Value: 2})

	childVal, _ := child.LookUp("x")
	rootVal, _ := root.LookUp("x")
	assert.Equal(t, "2", childVal.ToString())
	assert.Equal(t, "1", rootVal.ToString())
}

func TestAssign_MutatesNearestExistingBinding(t *testing.T) {
	root := New()
	root.Bind("x", &object.Number{Value: 1})
	child := Enclose(root)

	ok := child.Assign("x", &object.Number{Value: 9})
	assert.True(t, ok)

	rootVal, _ := root.LookUp("x")
	assert.Equal(t, "9", rootVal.ToString(), "assignment from a child scope mutates the outer binding in place")
}

func TestAssign_UnboundNameFails(t *testing.T) {
	root := New()
	ok := root.Assign("nope", &object.Number{Value: 1})
	assert.False(t, ok)
}

func TestLookUp_Unbound(t *testing.T) {
	root := New()
	_, ok := root.LookUp("missing")
	assert.False(t, ok)
}

func TestBindings_OnlyReportsThisScope(t *testing.T) {
	root := New()
	root.Bind("x", &object.Number{Value: 1})
	child := Enclose(root)
	child.Bind("y", &object.Number{Value: 2})

	snapshot := child.Bindings()
	assert.Len(t, snapshot, 1)
	_, ok := snapshot["y"]
	assert.True(t, ok)
}
