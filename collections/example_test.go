package collections_test

import (
	"fmt"

	"github.com/justinricheson/collectionsynchronizer/collections"
)

func ExampleObservable_OnChange() {
	c := collections.NewObservable("a", "b")
	c.OnChange(func(e collections.Event[string]) error {
		fmt.Println(e, e.NewItems)
		return nil
	})
	_ = c.Append("c")
	_ = c.Insert(0, "z")
	// Output:
	// add@2 +1 [c]
	// add@0 +1 [z]
}

func ExampleObservable_MoveRange() {
	c := collections.NewObservable(1, 2, 3, 4, 5)
	_ = c.MoveRange(0, 2, 3, 2)
	fmt.Println(c.All())
	// Output: [3 4 5 1 2]
}

func ExampleEvent_Validate() {
	e := collections.RemoveEvent(2, []int{7, 8})
	fmt.Println(e.Validate(3))
	// Output: collections: index out of range: remove [2,+2), length 3
}
