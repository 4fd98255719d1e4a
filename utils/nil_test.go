package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNilish(t *testing.T) {
	t.Parallel()

	t.Run("literal nil", func(t *testing.T) {
		t.Parallel()

		assert.True(t, IsNilish(nil))
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		t.Parallel()

		var p *int

		assert.True(t, IsNilish(p))
	})

	t.Run("nil func", func(t *testing.T) {
		t.Parallel()

		var f func()

		assert.True(t, IsNilish(f))
	})

	t.Run("nil map and slice", func(t *testing.T) {
		t.Parallel()

		var m map[string]int

		var s []string

		assert.True(t, IsNilish(m))
		assert.True(t, IsNilish(s))
	})

	t.Run("non-nil values", func(t *testing.T) {
		t.Parallel()

		assert.False(t, IsNilish(0))
		assert.False(t, IsNilish(""))
		assert.False(t, IsNilish(struct{}{}))
		assert.False(t, IsNilish(func() {}))
	})
}

func TestIsFunc(t *testing.T) {
	t.Parallel()

	t.Run("plain func", func(t *testing.T) {
		t.Parallel()

		assert.True(t, IsFunc(func() {}))
	})

	t.Run("func with signature", func(t *testing.T) {
		t.Parallel()

		assert.True(t, IsFunc(func(string) error { return nil }))
	})

	t.Run("nil func", func(t *testing.T) {
		t.Parallel()

		var f func()

		assert.False(t, IsFunc(f))
	})

	t.Run("non-func values", func(t *testing.T) {
		t.Parallel()

		assert.False(t, IsFunc(nil))
		assert.False(t, IsFunc("not a func"))
		assert.False(t, IsFunc(42))
	})
}
