package datastructures

import "github.com/abstratium-informatique-sarl/tapir/pkg/tap"

// a mutable box around a single value, using generics

type Mut[T any] struct {
	value T
}

func NewMut[T any](value T) *Mut[T] {
	return &Mut[T]{
		value: value,
	}
}

func (m *Mut[T]) SetValue(value T) {
	m.value = value
}

func (m *Mut[T]) GetValue() T {
	return m.value
}

// Tap runs f against the boxed value and stores the result back in the box.
func (m *Mut[T]) Tap(f func(*T)) *Mut[T] {
	m.value = tap.Tap(m.value, f)
	return m
}
