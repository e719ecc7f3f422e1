package configs

import (
	"errors"
	"iter"
)

var ErrValueNotFound = errors.New("config value not found")

// First decodes the value at path from the first file defining it,
// returning the zero value when no file does. Malformed values are
// config defects and panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// All yields the value at path from every file defining it, in
// precedence order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
