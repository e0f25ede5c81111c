package object_test

import (
	"fmt"

	"github.com/hasbyte1/go-underbar/object"
)

func ExampleExtend() {
	cfg := map[string]any{"host": "localhost"}
	object.Extend(cfg, map[string]any{"port": 8080}, map[string]any{"host": "db"})
	fmt.Println(cfg)
	// Output: map[host:db port:8080]
}

func ExampleDefaults() {
	opts := map[string]any{"retries": 5}
	object.Defaults(opts, map[string]any{"retries": 3, "timeout": "1s"})
	fmt.Println(opts)
	// Output: map[retries:5 timeout:1s]
}

func ExampleGet() {
	m := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	fmt.Println(object.Get(m, "user.address.city"))
	// Output: London
}
