package datastructures

import (
	"errors"
	"reflect"
	"slices"

	"github.com/abstratium-informatique-sarl/tapir/pkg/tap"
)

const initialCapacity = 10

var NotFound = errors.New("not found")

type MutList[T any] struct {
	items []T
}

func NewMutList[T any]() *MutList[T] {
	return &MutList[T]{items: make([]T, 0, initialCapacity)}
}

func NewMutListFromArray[T any](initial []T) *MutList[T] {
	l := make([]T, 0, max(initialCapacity, len(initial)))
	return &MutList[T]{items: append(l, initial...)}
}

// equal uses == where both values can be compared that way and
// reflect.DeepEqual otherwise, so slices, maps and funcs do not panic
func equal[T any](a, b T) bool {
	x, y := any(a), any(b)
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if !vx.IsValid() || !vy.IsValid() {
		return vx.IsValid() == vy.IsValid()
	}
	if vx.Comparable() && vy.Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

func (l *MutList[T]) Add(item T) {
	l.items = append(l.items, item)
}

func (l *MutList[T]) AddAll(items []T) {
	l.items = append(l.items, items...)
}

// Remove drops the first occurrence of item, if any.
func (l *MutList[T]) Remove(item T) {
	i := slices.IndexFunc(l.items, func(v T) bool { return equal(v, item) })
	if i >= 0 {
		l.items = slices.Delete(l.items, i, i+1)
	}
}

func (l *MutList[T]) RemoveIf(f func(T) bool) {
	kept := make([]T, 0, len(l.items))
	for _, v := range l.items {
		if !f(v) {
			kept = append(kept, v)
		}
	}
	l.items = kept
}

// clamp bounds n to [0, len] so that reslicing never reaches past the length
func (l *MutList[T]) clamp(n int) int {
	return max(0, min(n, len(l.items)))
}

// RemoveAfter keeps the first index items. An index past Len is a no-op and a
// negative one empties the list.
func (l *MutList[T]) RemoveAfter(index int) {
	l.items = l.items[:l.clamp(index)]
}

func (l *MutList[T]) Contains(item T) bool {
	return slices.ContainsFunc(l.items, func(v T) bool { return equal(v, item) })
}

func (l *MutList[T]) Find(f func(t T) bool) (T, error) {
	i := slices.IndexFunc(l.items, f)
	if i < 0 {
		var zero T
		return zero, NotFound
	}
	return l.items[i], nil
}

func (l *MutList[T]) Get(index int) T {
	return l.items[index]
}

func (l *MutList[T]) Len() int {
	return len(l.items)
}

func (l *MutList[T]) Clear() {
	l.items = make([]T, 0, initialCapacity)
}

// Items returns a copy, changes to it do not reach the list.
func (l *MutList[T]) Items() []T {
	list := make([]T, len(l.items))
	copy(list, l.items)
	return list
}

func (l *MutList[T]) SortFunc(f func(a, b T) int) {
	slices.SortFunc(l.items, f)
}

func (l *MutList[T]) Filter(f func(T) bool) *MutList[T] {
	filtered := make([]T, 0, len(l.items))
	for _, v := range l.items {
		if f(v) {
			filtered = append(filtered, v)
		}
	}
	return NewMutListFromArray(filtered)
}

func (l *MutList[T]) Head(n int) *MutList[T] {
	return NewMutListFromArray(l.items[:l.clamp(n)])
}

// Tap hands the backing slice to f. Whatever f leaves in the slice, including
// appends and reslicing, becomes the list's content.
func (l *MutList[T]) Tap(f func(*[]T)) *MutList[T] {
	l.items = tap.Tap(l.items, f)
	return l
}
