package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTree(t *testing.T) {
	tree := NewTree(map[int]int{21: 20, 25: 20, 22: 20, 30: 31, 7: 7})

	assert.Equal(t, map[int]int{21: 20, 22: 20, 25: 20, 30: 31}, tree.Parent)
	assert.Equal(t, map[int][]int{20: {21, 22, 25}, 31: {30}}, tree.Children)
	assert.True(t, tree.HasChildren(20))
	assert.False(t, tree.HasChildren(21))
	assert.False(t, tree.HasChildren(7))
}

func TestNewTreeEmpty(t *testing.T) {
	tree := NewTree(nil)

	assert.Empty(t, tree.Parent)
	assert.Empty(t, tree.Children)
	assert.False(t, tree.HasChildren(1))
}
