package arr_test

import (
	"fmt"

	"github.com/justinricheson/collectionsynchronizer/arr"
)

func ExampleInsert() {
	fmt.Println(arr.Insert([]string{"a", "d"}, 1, "b", "c"))
	// Output: [a b c d]
}

func ExampleRemoveRange() {
	fmt.Println(arr.RemoveRange([]int{1, 2, 3, 4, 5}, 1, 3))
	// Output: [1 5]
}

func ExampleReplaceRange() {
	fmt.Println(arr.ReplaceRange([]int{1, 2, 3}, 1, 1, 20, 21))
	// Output: [1 20 21 3]
}

func ExampleMoveRange() {
	fmt.Println(arr.MoveRange([]int{1, 2, 3, 4, 5}, 0, 2, 3))
	// Output: [3 4 5 1 2]
}
