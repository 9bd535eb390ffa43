package main

import (
	"flag"
	"fmt"
	"math"
	"slices"

	"github.com/abstratium-informatique-sarl/tapir/pkg/env"
	"github.com/abstratium-informatique-sarl/tapir/pkg/logging"
	"github.com/abstratium-informatique-sarl/tapir/pkg/tap"
	"github.com/samber/lo"
)

func smallestFactor(x uint32) uint32 {
	for i := uint32(2); i < x; i++ {
		if x%i == 0 {
			return i
		}
	}
	return x
}

// checkUpto rejects bounds whose numbers would not fit in a uint32
func checkUpto(upto int) error {
	if int64(upto) > math.MaxUint32+1 {
		return fmt.Errorf("upto %d is out of range, it must be at most %d", upto, int64(math.MaxUint32)+1)
	}
	return nil
}

// uniquePrimes returns the distinct smallest factors of [2, upto), which are
// exactly the primes below upto.
func uniquePrimes(upto int) []uint32 {
	if upto < 3 {
		return []uint32{}
	}
	factors := lo.Map(lo.RangeFrom[uint32](2, upto-2), func(x uint32, _ int) uint32 {
		return smallestFactor(x)
	})
	return tap.Of(factors).
		Tap(func(v *[]uint32) { slices.Sort(*v) }).
		Tap(func(v *[]uint32) { *v = slices.Compact(*v) }).
		Value()
}

func main() {
	upto := flag.Int("upto", 25, "exclusive upper bound of the numbers to factor")
	flag.Parse()

	env.Setup()
	log := logging.GetLog("tapir/cmd/tapdemo")

	if err := checkUpto(*upto); err != nil {
		log.Fatal().Err(err).Msg("invalid -upto")
	}

	primes := uniquePrimes(*upto)
	log.Info().Int("upto", *upto).Int("count", len(primes)).Msg("computed unique primes")
	fmt.Println(primes)
}
