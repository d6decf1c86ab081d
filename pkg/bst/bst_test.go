package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treeview/pkg/errors"
)

func TestInsertOrder(t *testing.T) {
	tr := New(5, 3, 8, 1, 4, 9)

	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, []int{5, 3, 1, 4, 8, 9}, tr.Preorder())
	assert.Equal(t, []int{1, 3, 4, 5, 8, 9}, tr.Inorder())
	assert.Equal(t, []int{1, 4, 3, 9, 8, 5}, tr.Postorder())
	assert.Equal(t, 3, tr.Height())
}

func TestInsertDuplicatesGoRight(t *testing.T) {
	tr := New(5, 5, 5)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, []int{5, 5, 5}, tr.Inorder())
}

func TestEmptyTree(t *testing.T) {
	var tr Tree
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.Inorder())
	assert.Nil(t, tr.ToNode())
	assert.False(t, tr.Delete(1))

	path, found := tr.Search(1)
	assert.False(t, found)
	assert.Empty(t, path)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []int // preorder after delete
		ok    bool
	}{
		{"leaf", 1, []int{5, 3, 4, 8, 9}, true},
		{"one child", 8, []int{5, 3, 1, 4, 9}, true},
		{"two children", 3, []int{5, 4, 1, 8, 9}, true},
		{"root", 5, []int{8, 3, 1, 4, 9}, true},
		{"missing", 7, []int{5, 3, 1, 4, 8, 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(5, 3, 8, 1, 4, 9)
			assert.Equal(t, tt.ok, tr.Delete(tt.value))
			assert.Equal(t, tt.want, tr.Preorder())
			assert.Equal(t, len(tt.want), tr.Len())
		})
	}
}

func TestSearch(t *testing.T) {
	tr := New(5, 3, 8, 1, 4, 9)

	path, found := tr.Search(4)
	assert.True(t, found)
	assert.Equal(t, []int{5, 3, 4}, path)

	path, found = tr.Search(7)
	assert.False(t, found)
	assert.Equal(t, []int{5, 8}, path)

	assert.True(t, tr.Contains(9))
	assert.False(t, tr.Contains(0))
}

func TestBuildBalanced(t *testing.T) {
	tr := BuildBalanced([]int{7, 1, 3, 5, 2, 6, 4})

	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tr.Preorder())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, 7, tr.Len())

	// even length picks the upper middle
	assert.Equal(t, []int{3, 2, 1, 4}, BuildBalanced([]int{1, 2, 3, 4}).Preorder())
}

func TestBuildBalancedDoesNotMutate(t *testing.T) {
	in := []int{3, 1, 2}
	BuildBalanced(in)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestBalance(t *testing.T) {
	tr := New(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 7, tr.Height())

	tr.Balance()
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.Inorder())
	assert.Equal(t, 7, tr.Len())
}

func TestToNode(t *testing.T) {
	root := New(5, 3, 8, 9).ToNode()
	require.NotNil(t, root)
	assert.Equal(t, "5(3 8(9))", root.String())

	// A lone right child becomes the only child.
	assert.Equal(t, "1(2)", New(1, 2).ToNode().String())
	require.NoError(t, root.Validate())
}

func TestParseValues(t *testing.T) {
	got, err := ParseValues(" 5, 3,8 ,-1, ")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, -1}, got)

	for _, in := range []string{"", " , ", "1, x", "1.5"} {
		_, err := ParseValues(in)
		assert.True(t, errors.IsInvalidInput(err), "ParseValues(%q) error = %v", in, err)
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"pre": PreOrder, "In": InOrder, "postorder": PostOrder} {
		got, err := ParseOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseOrder("level")
	assert.True(t, errors.IsInvalidInput(err))
}
