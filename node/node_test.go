package node_test

import (
	"testing"

	"github.com/0xalexb/hjarta-conf/node"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_NestedValues(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"features": []any{"alpha", "beta"},
	})

	assert.Equal(t, "localhost", root.Get("database", "host").String())
	assert.Equal(t, 5432, root.Get("database", "port").Int())
	assert.Equal(t, "beta", root.Get("features", 1).String())
}

func TestGet_AbsentPathIsVirtual(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"a": 1})

	missing := root.Get("no", "such", "path")

	assert.True(t, missing.IsVirtual())
	assert.False(t, missing.Exists())
	assert.Nil(t, missing.Raw())
	assert.Empty(t, missing.String())
	assert.Zero(t, missing.Int())
	assert.False(t, missing.Bool())
}

func TestGet_ThroughScalarIsVirtual(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"a": "scalar"})

	assert.True(t, root.Get("a", "deeper").IsVirtual())
}

func TestGet_ListIndexOutOfRange(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"list": []any{"only"}})

	assert.True(t, root.Get("list", 1).IsVirtual())
	assert.True(t, root.Get("list", -1).IsVirtual())
}

func TestSet_ExistingValue(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"a": 1})

	err := root.Get("a").Set(2)
	require.NoError(t, err)

	assert.Equal(t, 2, root.Get("a").Int())
}

func TestSet_MaterializesVirtualPath(t *testing.T) {
	t.Parallel()

	root := node.NewRoot()

	err := root.Get("database", "connection", "timeout").Set(30)
	require.NoError(t, err)

	assert.Equal(t, 30, root.Get("database", "connection", "timeout").Int())
	assert.True(t, root.Get("database").Exists())
}

func TestSet_ListElement(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"list": []any{"a", "b"}})

	err := root.Get("list", 1).Set("c")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, root.Get("list").StringSlice())
}

func TestSet_ListCannotGrow(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"list": []any{"a"}})

	err := root.Get("list", 5).Set("x")

	require.Error(t, err)
	assert.ErrorIs(t, err, node.ErrListBounds)
}

func TestSet_ThroughScalarFails(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"a": "scalar"})

	err := root.Get("a", "child").Set(1)

	require.Error(t, err)
	assert.ErrorIs(t, err, node.ErrNotMapping)
}

func TestSet_RootRequiresMapping(t *testing.T) {
	t.Parallel()

	root := node.NewRoot()

	err := root.Set("not a mapping")
	require.ErrorIs(t, err, node.ErrRootNotMapping)

	err = root.Set(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, root.Get("a").Int())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"a": 1, "b": 2})

	root.Get("b") // handles are cheap; navigation must not affect Delete
	root.Delete("b")

	assert.True(t, root.Get("b").IsVirtual())
	assert.Equal(t, []string{"a"}, root.Keys())
}

func TestAccessors_Coercion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(42), want: 42},
		{name: "uint64", value: uint64(42), want: 42},
		{name: "float64", value: float64(42), want: 42},
		{name: "string is not numeric", value: "42", want: 0},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root := node.FromMap(map[string]any{"v": testCase.value})

			assert.Equal(t, testCase.want, root.Get("v").Int())
		})
	}
}

func TestAccessors_Fallbacks(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"present": "value"})

	assert.Equal(t, "value", root.Get("present").StringOr("fallback"))
	assert.Equal(t, "fallback", root.Get("absent").StringOr("fallback"))
	assert.Equal(t, 7, root.Get("absent").IntOr(7))
	assert.True(t, root.Get("absent").BoolOr(true))
}

func TestStringSlice_SkipsNonStrings(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{"list": []any{"a", 1, "b"}})

	assert.Equal(t, []string{"a", "b"}, root.Get("list").StringSlice())
}

func TestKeysAndLen(t *testing.T) {
	t.Parallel()

	root := node.FromMap(map[string]any{
		"b":    1,
		"a":    2,
		"list": []any{1, 2, 3},
	})

	assert.Equal(t, []string{"a", "b", "list"}, root.Keys())
	assert.Equal(t, 3, root.Get("list").Len())
	assert.Zero(t, root.Get("a").Len())
	assert.Nil(t, root.Get("a").Keys())
}

func TestFromMap_NilYieldsEmptyDocument(t *testing.T) {
	t.Parallel()

	root := node.FromMap(nil)

	require.NotNil(t, root.Map())
	assert.Empty(t, root.Map())
}
