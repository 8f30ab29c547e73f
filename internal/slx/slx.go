package slx

import (
	"slices"
)

func One[T any](v T) []T {
	return []T{v}
}

func Make[T any](v ...T) []T {
	return slices.Clone(v)
}

func Map[T, U any](vs []T, fn func(T) U) []U {
	list := make([]U, 0, len(vs))
	for i := range vs {
		list = append(list, fn(vs[i]))
	}
	return list
}
