package render_test

import (
	"fmt"

	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
)

func ExampleRender() {
	root := tree.New("root", tree.New("A"), tree.New("B"))

	scene := render.NewScene()
	if err := render.Render(root, scene, render.DefaultConfig()); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%d circles, %d labels, %d edges\n", len(scene.Circles), len(scene.Texts), len(scene.Lines))
	for i, c := range scene.Circles {
		fmt.Printf("%s at (%.0f, %.0f)\n", scene.Texts[i].Content, c.CX, c.CY)
	}
	// Output:
	// 3 circles, 3 labels, 2 edges
	// root at (350, 0)
	// A at (175, 500)
	// B at (525, 500)
}

func ExampleRender_invalidInput() {
	err := render.Render(nil, render.NewScene(), render.Config{})
	fmt.Println(err)
	// Output:
	// INVALID_INPUT: root node is nil
}
