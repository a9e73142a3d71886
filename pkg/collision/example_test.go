package collision_test

import (
	"fmt"

	"github.com/lucidworks/gridbuilder/pkg/collision"
)

func ExampleCollides() {
	a := collision.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := collision.Rect{X: 5, Y: 5, Width: 10, Height: 10}
	c := collision.Rect{X: 10, Y: 0, Width: 10, Height: 10}

	fmt.Println(collision.Collides(a, b))
	// Touching edges do not collide.
	fmt.Println(collision.Collides(a, c))
	// Output:
	// true
	// false
}

func ExampleFindFreeSpace() {
	// An empty canvas centers the item horizontally, near the top.
	pos := collision.FindFreeSpace(nil, 20, 5)
	fmt.Printf("(%g, %g)\n", pos.X, pos.Y)

	// A full-width banner forces the scan to the first clear row below it.
	banner := []collision.Rect{{X: 0, Y: 0, Width: 50, Height: 10}}
	pos = collision.FindFreeSpace(banner, 20, 5)
	fmt.Printf("(%g, %g)\n", pos.X, pos.Y)
	// Output:
	// (15, 2)
	// (0, 10)
}
