package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Hey string
}

func TestEmpty_GetReturnsNoValue(t *testing.T) {
	_, err := Empty[int]().Get()
	require.ErrorIs(t, err, ErrNoValue)
}

func TestOf_NilIsEmpty(t *testing.T) {
	var p *payload
	ofNil := Of(p)
	require.False(t, ofNil.IsPresent())
	_, err := ofNil.Get()
	require.ErrorIs(t, err, ErrNoValue)

	var m map[string]int
	require.False(t, Of(m).IsPresent())

	var anyNil any
	require.False(t, Of(anyNil).IsPresent())
}

func TestOf_ZeroAndFalseArePresent(t *testing.T) {
	ofZero := Of(0)
	require.True(t, ofZero.IsPresent())
	v, err := ofZero.Get()
	require.NoError(t, err)
	require.Equal(t, 0, v)

	ofFalse := Of(false)
	require.True(t, ofFalse.IsPresent())
	b, err := ofFalse.Get()
	require.NoError(t, err)
	require.False(t, b)

	require.True(t, Of("").IsPresent())
}

func TestOf_PointerIsPresentAndIdentical(t *testing.T) {
	obj := &payload{Hey: "sup"}
	ofObject := Of(obj)
	require.True(t, ofObject.IsPresent())
	got, err := ofObject.Get()
	require.NoError(t, err)
	require.Same(t, obj, got)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var o Optional[string]
	require.False(t, o.IsPresent())
}

func TestMap_EmptyNeverCallsFn(t *testing.T) {
	called := false
	mapped := Map(Empty[int](), func(i int) int {
		called = true
		return i
	})
	require.False(t, mapped.IsPresent())
	require.False(t, called)
}

func TestMap_PresentAppliesFn(t *testing.T) {
	doubled := Map(Of(1), func(i int) int { return i * 2 })
	require.True(t, doubled.IsPresent())
	v, err := doubled.Get()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestMap_NilResultCollapsesToEmpty(t *testing.T) {
	mapped := Map(Of(1), func(int) *payload { return nil })
	require.False(t, mapped.IsPresent())
}

func TestIfPresent(t *testing.T) {
	ran := false
	Of(1).IfPresent(func(int) { ran = true })
	require.True(t, ran)

	ran = false
	Empty[int]().IfPresent(func(int) { ran = true })
	require.False(t, ran)
}

func TestFilter(t *testing.T) {
	require.False(t, Empty[int]().Filter(func(int) bool { return true }).IsPresent())

	kept := Of(123).Filter(func(int) bool { return true })
	require.True(t, kept.IsPresent())
	v, err := kept.Get()
	require.NoError(t, err)
	require.Equal(t, 123, v)

	require.False(t, Of(123).Filter(func(int) bool { return false }).IsPresent())
}

func TestIsNil(t *testing.T) {
	var s []int
	var f func()
	var ch chan int
	require.True(t, IsNil(nil))
	require.True(t, IsNil(s))
	require.True(t, IsNil(f))
	require.True(t, IsNil(ch))
	require.False(t, IsNil(0))
	require.False(t, IsNil([]int{}))
}
