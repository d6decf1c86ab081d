package layout_test

import (
	"fmt"

	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/tree"
)

func ExampleCompute() {
	root := tree.New("root", tree.New("A"), tree.New("B"))

	l, err := layout.Compute(root, layout.Options{Width: 700, Height: 500})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, n := range l.Nodes {
		fmt.Printf("%s (%.0f, %.0f)\n", n.Name, n.X, n.Y)
	}
	for _, link := range l.Links {
		fmt.Printf("%s -> %s\n", link.Source.Name, link.Target.Name)
	}
	// Output:
	// root (350, 0)
	// A (175, 500)
	// B (525, 500)
	// root -> A
	// root -> B
}
