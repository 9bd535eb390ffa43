// Package tap provides the tap operation: hand a value to a function that
// mutates it through a pointer, then get the mutated value back.
//
// It removes the need for a throw-away mutable local when a value only has to
// be adjusted once before it is used:
//
//	// without tap
//	values := getUnsortedValues()
//	slices.Sort(values)
//	useSortedValues(values)
//
//	// with tap
//	useSortedValues(tap.Tap(getUnsortedValues(), func(v *[]int) { slices.Sort(*v) }))
//
// Go has no way to add a method to every type, so the operation is a generic
// function. Chain offers the method form for call chains.
package tap
