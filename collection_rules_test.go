package lengthcheck_test

import (
	"container/list"
	"container/ring"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lengthcheck"
)

func TestSliceRules(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("MinLenSlice", func(t *testing.T) {
		rule := lengthcheck.MinLenSlice("items", items, 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "must have at least 5 items", rule.Error.Message)
		assert.Equal(t, "validation.min_items", rule.Error.TranslationKey)

		assert.False(t, lengthcheck.MinLenSlice("items", items, 6).Check())
	})

	t.Run("MaxLenSlice", func(t *testing.T) {
		assert.True(t, lengthcheck.MaxLenSlice("items", items, 5).Check())
		assert.False(t, lengthcheck.MaxLenSlice("items", items, 4).Check())
	})

	t.Run("LenSlice", func(t *testing.T) {
		assert.True(t, lengthcheck.LenSlice("items", items, 5).Check())
		assert.False(t, lengthcheck.LenSlice("items", items, 4).Check())
	})

	t.Run("LenSliceBetween", func(t *testing.T) {
		rule := lengthcheck.LenSliceBetween("items", items, 5, 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "must have between 5 and 5 items", rule.Error.Message)
		assert.Equal(t, "validation.items_between", rule.Error.TranslationKey)
		assert.Equal(t, 5, rule.Error.TranslationValues["actual"])

		assert.False(t, lengthcheck.LenSliceBetween("items", items, 0, 4).Check())
	})

	t.Run("nil slice has zero elements", func(t *testing.T) {
		assert.True(t, lengthcheck.LenSliceBetween("items", []string(nil), 0, 3).Check())
		assert.False(t, lengthcheck.MinLenSlice("items", []string(nil), 1).Check())
	})

	t.Run("fixed-size arrays via slicing", func(t *testing.T) {
		arr := [5]int{1, 2, 3, 4, 5}
		assert.True(t, lengthcheck.LenSlice("arr", arr[:], 5).Check())
		assert.True(t, lengthcheck.LenSliceBetween("arr", arr[:], 5, 5).Check())
	})
}

func TestMapRules(t *testing.T) {
	attrs := map[string]string{"a": "1", "b": "2", "c": "3"}

	t.Run("MinLenMap", func(t *testing.T) {
		assert.True(t, lengthcheck.MinLenMap("attrs", attrs, 3).Check())
		assert.False(t, lengthcheck.MinLenMap("attrs", attrs, 4).Check())
	})

	t.Run("MaxLenMap", func(t *testing.T) {
		assert.True(t, lengthcheck.MaxLenMap("attrs", attrs, 3).Check())
		assert.False(t, lengthcheck.MaxLenMap("attrs", attrs, 2).Check())
	})

	t.Run("LenMap", func(t *testing.T) {
		rule := lengthcheck.LenMap("attrs", attrs, 3)
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.exact_items", rule.Error.TranslationKey)
	})

	t.Run("LenMapBetween", func(t *testing.T) {
		assert.True(t, lengthcheck.LenMapBetween("attrs", attrs, 1, 5).Check())
		assert.False(t, lengthcheck.LenMapBetween("attrs", attrs, 4, 5).Check())
	})

	t.Run("nil map has zero entries", func(t *testing.T) {
		assert.True(t, lengthcheck.LenMapBetween("attrs", map[string]int(nil), 0, 0).Check())
	})
}

func TestMeasurableRules(t *testing.T) {
	queue := list.New()
	queue.PushBack("a")
	queue.PushBack("b")
	queue.PushBack("c")

	t.Run("linked list element count", func(t *testing.T) {
		assert.True(t, lengthcheck.LenOf("queue", queue, 3).Check())
		assert.True(t, lengthcheck.MinLenOf("queue", queue, 3).Check())
		assert.True(t, lengthcheck.MaxLenOf("queue", queue, 3).Check())
		assert.False(t, lengthcheck.MinLenOf("queue", queue, 4).Check())
	})

	t.Run("LenOfBetween", func(t *testing.T) {
		rule := lengthcheck.LenOfBetween("queue", queue, 1, 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.items_between", rule.Error.TranslationKey)
		assert.Equal(t, 3, rule.Error.TranslationValues["actual"])

		assert.False(t, lengthcheck.LenOfBetween("queue", queue, 4, 5).Check())
	})

	t.Run("ring buffer element count", func(t *testing.T) {
		r := ring.New(4)
		assert.True(t, lengthcheck.LenOf("ring", r, 4).Check())
	})

	t.Run("nil collection measures as empty", func(t *testing.T) {
		assert.True(t, lengthcheck.LenOf("q", nil, 0).Check())
		assert.False(t, lengthcheck.MinLenOf("q", nil, 1).Check())
		assert.True(t, lengthcheck.LenOfBetween("q", nil, 0, 2).Check())
	})
}
