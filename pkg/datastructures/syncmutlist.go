package datastructures

import "sync"

// SyncMutList is a MutList guarded by a mutex.
type SyncMutList[T any] struct {
	items *MutList[T]
	mutex sync.Mutex
}

func NewSyncMutList[T any]() *SyncMutList[T] {
	return &SyncMutList[T]{items: NewMutList[T]()}
}

func NewSyncMutListFromArray[T any](initial []T) *SyncMutList[T] {
	return &SyncMutList[T]{items: NewMutListFromArray(initial)}
}

// locked runs f while holding the list's lock
func (l *SyncMutList[T]) locked(f func(items *MutList[T])) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	f(l.items)
}

func (l *SyncMutList[T]) Add(item T) {
	l.locked(func(items *MutList[T]) { items.Add(item) })
}

func (l *SyncMutList[T]) AddAll(items []T) {
	l.locked(func(list *MutList[T]) { list.AddAll(items) })
}

func (l *SyncMutList[T]) Remove(item T) {
	l.locked(func(items *MutList[T]) { items.Remove(item) })
}

func (l *SyncMutList[T]) RemoveIf(f func(T) bool) {
	l.locked(func(items *MutList[T]) { items.RemoveIf(f) })
}

func (l *SyncMutList[T]) RemoveAfter(index int) {
	l.locked(func(items *MutList[T]) { items.RemoveAfter(index) })
}

func (l *SyncMutList[T]) Contains(item T) (found bool) {
	l.locked(func(items *MutList[T]) { found = items.Contains(item) })
	return found
}

func (l *SyncMutList[T]) Get(index int) (item T) {
	l.locked(func(items *MutList[T]) { item = items.Get(index) })
	return item
}

func (l *SyncMutList[T]) Find(f func(t T) bool) (item T, err error) {
	l.locked(func(items *MutList[T]) { item, err = items.Find(f) })
	return item, err
}

func (l *SyncMutList[T]) Len() (n int) {
	l.locked(func(items *MutList[T]) { n = items.Len() })
	return n
}

func (l *SyncMutList[T]) Clear() {
	l.locked(func(items *MutList[T]) { items.Clear() })
}

func (l *SyncMutList[T]) Items() (out []T) {
	l.locked(func(items *MutList[T]) { out = items.Items() })
	return out
}

func (l *SyncMutList[T]) SortFunc(f func(a, b T) int) {
	l.locked(func(items *MutList[T]) { items.SortFunc(f) })
}

func (l *SyncMutList[T]) Filter(f func(T) bool) (out *SyncMutList[T]) {
	l.locked(func(items *MutList[T]) { out = NewSyncMutListFromArray(items.Filter(f).Items()) })
	return out
}

func (l *SyncMutList[T]) Head(n int) (out *SyncMutList[T]) {
	l.locked(func(items *MutList[T]) { out = NewSyncMutListFromArray(items.Head(n).Items()) })
	return out
}

// Tap holds the lock while f runs, so f has the backing slice to itself.
// f must not call back into l.
func (l *SyncMutList[T]) Tap(f func(*[]T)) *SyncMutList[T] {
	l.locked(func(items *MutList[T]) { items.Tap(f) })
	return l
}
