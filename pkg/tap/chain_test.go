package tap

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func smallestFactor(x uint32) uint32 {
	for i := uint32(2); i < x; i++ {
		if x%i == 0 {
			return i
		}
	}
	return x
}

func TestChain_UniquePrimes(t *testing.T) {
	assert := assert.New(t)
	factors := lo.Map(lo.RangeFrom[uint32](2, 23), func(x uint32, _ int) uint32 {
		return smallestFactor(x)
	})

	primes := Of(factors).
		Tap(func(v *[]uint32) { slices.Sort(*v) }).
		Tap(func(v *[]uint32) { *v = slices.Compact(*v) }).
		Value()

	assert.Equal([]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23}, primes)
	assert.Equal(lo.Uniq(primes), primes)
}

func TestChain_ObservesEarlierTaps(t *testing.T) {
	assert := assert.New(t)
	var largest uint32
	data := [5]uint32{2, 8, 3, 4, 0}

	out := Of(data).
		Tap(func(x *[5]uint32) { slices.Sort(x[:]) }).
		Tap(func(x *[5]uint32) { largest += x[len(x)-1] }).
		Value()

	assert.Equal([5]uint32{0, 2, 3, 4, 8}, out)
	assert.Equal(uint32(8), largest)
	// arrays are values, the original is left alone
	assert.Equal([5]uint32{2, 8, 3, 4, 0}, data)
}

func TestChain_RunsInOrder(t *testing.T) {
	assert := assert.New(t)
	var order []string
	out := Of("a").
		Tap(func(s *string) { *s += "b"; order = append(order, "first") }).
		Tap(func(s *string) { *s += "c"; order = append(order, "second") }).
		Value()
	assert.Equal("abc", out)
	assert.Equal([]string{"first", "second"}, order)
}

func TestChain_EmptyIsZero(t *testing.T) {
	var c Chain[int]
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, 3, c.Tap(func(i *int) { *i = 3 }).Value())
}
