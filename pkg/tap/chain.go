package tap

// Chain holds a value so that several taps can be written one after the other.
type Chain[T any] struct {
	value T
}

func Of[T any](value T) Chain[T] {
	return Chain[T]{value: value}
}

// Tap applies mutate to the held value and returns a chain with the result.
func (c Chain[T]) Tap(mutate func(*T)) Chain[T] {
	return Chain[T]{value: Tap(c.value, mutate)}
}

func (c Chain[T]) Value() T {
	return c.value
}
