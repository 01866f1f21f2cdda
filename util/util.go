package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A comparable, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Clamp fits v into [lo, hi].
func Clamp[A constraints.Integer](v, lo, hi A) A {
	return Max(lo, Min(v, hi))
}

// Mod is the non-negative remainder of v / m.
func Mod[A constraints.Signed](v, m A) A {
	return ((v % m) + m) % m
}
