package synchronizer_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/justinricheson/collectionsynchronizer/collections"
	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

func ExampleNew() {
	models := collections.NewObservable(1, 2, 3)
	views := collections.NewObservable("1", "2", "3")

	s, err := synchronizer.New[int, string](models, views,
		func(v string) (int, error) { return strconv.Atoi(v) },
		synchronizer.Pure(strconv.Itoa),
	)
	if err != nil {
		panic(err)
	}
	defer s.Dispose()

	_ = models.Append(4)
	_ = views.RemoveRange(0, 1)
	fmt.Println(models.All(), views.All())
	// Output: [2 3 4] [2 3 4]
}

func ExampleWithMode() {
	src := collections.NewObservable(1, 2)
	dst := collections.NewObservable(10, 20)
	s, _ := synchronizer.New[int, int](src, dst,
		synchronizer.Pure(func(x int) int { return x / 10 }),
		synchronizer.Pure(func(x int) int { return x * 10 }),
		synchronizer.WithMode(synchronizer.OneWayToTarget),
	)
	defer s.Dispose()

	_ = dst.Append(99) // not relayed
	_ = src.Append(3)
	fmt.Println(src.All(), dst.All())
	// Output: [1 2 3] [10 20 99 30]
}

func ExampleSynchronizer_ResyncTarget() {
	src := collections.NewObservable("1", "2")
	dst := collections.NewObservable(1, 2)
	s, _ := synchronizer.New[string, int](src, dst,
		synchronizer.Pure(strconv.Itoa),
		func(v string) (int, error) { return strconv.Atoi(v) },
	)
	defer s.Dispose()

	err := src.Append("three")
	fmt.Println(errors.Is(err, synchronizer.ErrMappingFailure))

	_ = src.Set(2, "3")
	_ = s.ResyncTarget()
	fmt.Println(dst.All())
	// Output:
	// true
	// [1 2 3]
}
