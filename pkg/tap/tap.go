package tap

// Tap calls mutate exactly once with a pointer to value and returns value
// afterwards.
//
// value is passed by value, so the pointer handed to mutate is the only one
// to that binding and Tap keeps no other. Nothing is cloned: a slice, map or
// pointer comes back sharing the storage it went in with.
//
// A panic in mutate is not recovered: the panic propagates out of Tap
// unchanged and nothing is returned.
func Tap[T any](value T, mutate func(*T)) T {
	mutate(&value)
	return value
}
