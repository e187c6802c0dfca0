package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableInsertionOrder(t *testing.T) {
	table := NewTable[string]()
	table.Insert("b", "second")
	table.Insert("a", "first")
	table.Insert("c", "third")

	assert.Equal(t, []string{"second", "first", "third"}, table.List())
}

func TestTableReplace(t *testing.T) {
	table := NewTable[int]()
	table.Insert("x", 1)

	assert.True(t, table.Replace("x", 2))
	got, ok := table.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	assert.False(t, table.Replace("missing", 9))
	assert.Equal(t, 1, table.Len())
}

func TestTableDelete(t *testing.T) {
	table := NewTable[int]()
	table.Insert("a", 1)
	table.Insert("b", 2)

	table.Delete("a")
	table.Delete("a") // idempotent

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []int{2}, table.List())
}

func TestTableInsertExistingKeepsOrder(t *testing.T) {
	table := NewTable[int]()
	table.Insert("a", 1)
	table.Insert("b", 2)
	table.Insert("a", 10)

	assert.Equal(t, []int{10, 2}, table.List())
}

func TestTableFindAndFilter(t *testing.T) {
	table := NewTable[int]()
	table.Insert("a", 1)
	table.Insert("b", 2)
	table.Insert("c", 3)

	got, ok := table.Find(func(v int) bool { return v > 1 })
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = table.Find(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	assert.Equal(t, []int{2, 3}, table.Filter(func(v int) bool { return v > 1 }))
	assert.Equal(t, 2, table.Count(func(v int) bool { return v > 1 }))
}
