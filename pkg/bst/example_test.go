package bst_test

import (
	"fmt"

	"github.com/matzehuels/treeview/pkg/bst"
)

func ExampleBuildBalanced() {
	values, _ := bst.ParseValues("1, 2, 3, 4, 5")
	t := bst.BuildBalanced(values)

	fmt.Println(t.ToNode())
	fmt.Println(t.Preorder())
	// Output:
	// 3(2(1) 5(4))
	// [3 2 1 5 4]
}
