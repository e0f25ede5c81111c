package collections_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-underbar/collections"
)

func ExampleEach() {
	collections.Each(collections.Sequence[string]{"a", "b"}, func(v string, i int, _ collections.Collection[int, string]) {
		fmt.Println(i, v)
	})
	// Output:
	// 0 a
	// 1 b
}

func ExampleFilter() {
	result := collections.Filter(collections.Sequence[int]{1, 2, 3, 4, 5, 6}, func(n, _ int, _ collections.Collection[int, int]) bool {
		return n%2 == 0
	})
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleReject() {
	fmt.Println(collections.Reject(collections.Sequence[int]{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 }))
	// Output: [1 3 5]
}

func ExampleFirstN() {
	s := collections.Sequence[int]{1, 2, 3, 4}
	fmt.Println(collections.FirstN(s, 2), collections.LastN(s, 3))
	// Output: [1 2] [2 3 4]
}

func ExampleUniq() {
	fmt.Println(collections.Uniq(collections.Sequence[int]{3, 1, 3, 2, 1}))
	// Output: [3 1 2]
}

func ExampleMap() {
	result := collections.Map(collections.Sequence[string]{"go", "fun"}, strings.ToUpper)
	fmt.Println(strings.Join(result, ", "))
	// Output: GO, FUN
}

func ExamplePluck() {
	people := collections.Sequence[map[string]any]{
		{"name": "ann", "age": 31},
		{"name": "bob", "age": 27},
	}
	fmt.Println(collections.Pluck(people, "name"))
	// Output: [ann bob]
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.Sequence[int]{1, 2, 3, 4, 5},
		func(acc, n int) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleEvery() {
	s := collections.Sequence[int]{2, 4, 5}
	even := func(n int) bool { return n%2 == 0 }
	fmt.Println(collections.Every(s, even), collections.Some(s, even), collections.Contains(s, 5))
	// Output: false true true
}

func ExampleInvoke() {
	upper, err := collections.Invoke(
		collections.Sequence[string]{"a", "b"},
		collections.ByFunction(func(s string, _ ...any) string { return strings.ToUpper(s) }),
	)
	fmt.Println(upper, err)
	// Output: [A B] <nil>
}

func ExampleSortBy() {
	people := collections.Sequence[map[string]any]{
		{"name": "ann", "age": 31},
		{"name": "bob", "age": 27},
		{"name": "cid", "age": 31},
	}
	sorted, err := collections.SortBy(people, collections.ByField[map[string]any]("age"))
	if err != nil {
		panic(err)
	}
	fmt.Println(collections.Pluck(sorted, "name"))
	// Output: [bob ann cid]
}

// Sorting a mapping by a field and keeping only the field values.
func ExampleSortBy_pluckedField() {
	people := collections.Mapping[string, map[string]any]{
		"ann": {"age": 31},
		"bob": {"age": 27},
	}
	ages, err := collections.SortBy(
		collections.PluckPath(people, "age"),
		collections.ByKey(func(v any) int { return v.(int) }),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(ages)
	// Output: [27 31]
}

func ExampleZip() {
	rows := collections.Zip(
		collections.Sequence[any]{"a", "b", "c"},
		collections.Sequence[any]{1, 2},
	)
	fmt.Println(rows)
	// Output: [[a 1] [b 2] [c <missing>]]
}

func ExampleFlatten() {
	fmt.Println(collections.Flatten(collections.Sequence[any]{1, []any{2, []any{3, []any{4}}, 5}}))
	// Output: [1 2 3 4 5]
}

func ExampleIntersection() {
	fmt.Println(collections.Intersection(collections.Sequence[int]{1, 2, 3}, collections.Sequence[int]{2, 3, 4}))
	fmt.Println(collections.Difference(collections.Sequence[int]{1, 2, 3}, collections.Sequence[int]{2, 3}))
	// Output:
	// [2 3]
	// [1]
}
