package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestItemList_Ordering tests the comparator under both sort keys.
func TestItemList_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		key      SortKey
		items    []*Item
		expected []string
	}{
		{
			name: "largest extent pops first",
			key:  SortKeyMaxExtent,
			items: []*Item{
				NewItem("small", 2, 2, 2, 1, false),
				NewItem("tall", 2, 2, 9, 1, false),
				NewItem("wide", 7, 2, 2, 1, false),
			},
			expected: []string{"tall", "wide", "small"},
		},
		{
			name: "weight breaks extent ties, heavier first",
			key:  SortKeyMaxExtent,
			items: []*Item{
				NewItem("light", 5, 5, 5, 10, false),
				NewItem("heavy", 5, 5, 5, 90, false),
			},
			expected: []string{"heavy", "light"},
		},
		{
			name: "description breaks full ties, earlier string first",
			key:  SortKeyMaxExtent,
			items: []*Item{
				NewItem("zeta", 5, 5, 5, 1, false),
				NewItem("alpha", 5, 5, 5, 1, false),
			},
			expected: []string{"alpha", "zeta"},
		},
		{
			name: "legacy key mixes weight into the extent",
			key:  SortKeyLegacy,
			items: []*Item{
				NewItem("long", 1, 8, 1, 1, false),
				NewItem("dense", 1, 2, 1, 50, false),
			},
			expected: []string{"dense", "long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewItemList(tt.key)
			for _, item := range tt.items {
				list.Insert(item)
			}

			var got []string
			for list.Count() > 0 {
				got = append(got, list.Pop().Description)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestItemList_LazySort verifies the dirty-flag contract: inserts after a
// read re-trigger sorting on the next read.
func TestItemList_LazySort(t *testing.T) {
	list := NewItemList(nil)
	list.Insert(NewItem("medium", 5, 5, 5, 1, false))
	list.Insert(NewItem("big", 9, 9, 9, 1, false))

	assert.Equal(t, "big", list.Peek().Description)

	list.Insert(NewItem("bigger", 12, 12, 12, 1, false))
	assert.Equal(t, "bigger", list.Peek().Description)
	assert.Equal(t, 3, list.Count())
}

func TestItemList_RemoveByIdentity(t *testing.T) {
	a := NewItem("dup", 5, 5, 5, 1, false)
	b := NewItem("dup", 5, 5, 5, 1, false)

	list := NewItemList(nil)
	list.Insert(a)
	list.Insert(b)

	list.Remove(b)

	assert.Equal(t, 1, list.Count())
	assert.Same(t, a, list.Peek())
}

func TestItemList_TopNAndClone(t *testing.T) {
	list := NewItemList(nil)
	list.Insert(NewItem("c", 3, 3, 3, 1, false))
	list.Insert(NewItem("a", 9, 9, 9, 1, false))
	list.Insert(NewItem("b", 6, 6, 6, 1, false))

	top := list.TopN(2)
	assert.Equal(t, 2, top.Count())
	assert.Equal(t, "a", top.Pop().Description)
	assert.Equal(t, "b", top.Pop().Description)
	assert.Equal(t, 3, list.Count(), "TopN must not disturb the source list")

	clone := list.Clone()
	clone.Pop()
	assert.Equal(t, 3, list.Count(), "clone mutations must not reach the source")

	// TopN larger than the list is clamped.
	assert.Equal(t, 3, list.TopN(10).Count())
}

func TestItemList_PopEmpty(t *testing.T) {
	list := NewItemList(nil)
	assert.Nil(t, list.Pop())
	assert.Nil(t, list.Peek())
}

func TestItemList_Iterate(t *testing.T) {
	list := NewItemList(nil)
	list.Insert(NewItem("b", 6, 6, 6, 1, false))
	list.Insert(NewItem("a", 9, 9, 9, 1, false))

	var got []string
	for _, item := range list.Iterate() {
		got = append(got, item.Description)
	}
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, list.Count())
}
