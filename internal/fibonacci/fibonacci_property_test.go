package fibonacci

import (
	"math/big"
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// textbook computes the unshifted F(n) with the fast doubling identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
//
// and serves as an independent oracle for the iterative loop.
func textbook(n uint64) *big.Int {
	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk
}

func TestFibonacci_MatchesTextbookFromPositionTwo(t *testing.T) {
	t.Parallel()
	for pos := uint32(2); pos <= MaxPosition; pos++ {
		want := textbook(uint64(pos))
		if got := Fibonacci(pos); uint64(got) != want.Uint64() {
			t.Errorf("Fibonacci(%d) = %d, textbook F(%d) = %s", pos, got, pos, want)
		}
	}
}

func TestMaxPosition_IsLastFittingValue(t *testing.T) {
	t.Parallel()
	limit := new(big.Int).SetUint64(1<<32 - 1)
	if textbook(uint64(MaxPosition)).Cmp(limit) > 0 {
		t.Errorf("F(%d) does not fit in uint32", MaxPosition)
	}
	if textbook(uint64(MaxPosition)+1).Cmp(limit) <= 0 {
		t.Errorf("F(%d) fits in uint32; MaxPosition is too small", MaxPosition+1)
	}
}

// TestFibonacci_PropertyBased verifies the recurrence and the wrap-around
// behavior on random positions.
func TestFibonacci_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Position 3 is excluded: fibonacci(1) is special-cased to 0, so the
	// recurrence only holds once both predecessors are past the shift.
	properties.Property("recurrence holds from position 4", prop.ForAll(
		func(pos uint32) bool {
			return Fibonacci(pos) == Fibonacci(pos-1)+Fibonacci(pos-2)
		},
		gen.UInt32Range(4, MaxPosition),
	))

	properties.Property("strictly increasing from position 3", prop.ForAll(
		func(pos uint32) bool {
			return Fibonacci(pos) > Fibonacci(pos-1)
		},
		gen.UInt32Range(3, MaxPosition),
	))

	properties.Property("wrapped values agree with the textbook modulo 2^32", prop.ForAll(
		func(pos uint32) bool {
			mod := new(big.Int).Lsh(big.NewInt(1), 32)
			want := new(big.Int).Mod(textbook(uint64(pos)), mod)
			return uint64(Fibonacci(pos)) == want.Uint64()
		},
		gen.UInt32Range(2, 2000),
	))

	properties.Property("Checked agrees with Fibonacci within range", prop.ForAll(
		func(pos uint32) bool {
			v, err := Checked(pos)
			return err == nil && v == Fibonacci(pos)
		},
		gen.UInt32Range(0, MaxPosition),
	))

	properties.TestingRun(t)
}
