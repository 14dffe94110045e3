package primality

import "testing"

// Test classification of known values
func TestClassifyKnown(t *testing.T) {
	tests := []struct {
		input uint64
		want  Class
	}{
		{1, Undetermined},
		{2, Undetermined}, // even, but no odd listed prime divides it
		{3, SmallPrime},
		{9, Composite},
		{15, Composite},
		{121, Composite},
		{127, SmallPrime},
		{131, Undetermined},
		{143, Composite}, // 11 * 13
		{16129, Composite}, // 127^2
		{17161, Undetermined}, // 131^2, beyond the list
		{18446744073709551615, Composite}, // divisible by 3
		{18446744073709551557, Undetermined},
	}
	for _, tc := range tests {
		got := Classify(tc.input)
		if got != tc.want {
			t.Errorf("Classify(%d) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

// Test that the list holds the 30 smallest odd primes in ascending order
func TestSmallPrimeList(t *testing.T) {
	if len(smallPrimes) != 30 {
		t.Fatalf("len(smallPrimes) = %d, want 30", len(smallPrimes))
	}
	if smallPrimes[0] != 3 || smallPrimes[29] != 127 {
		t.Errorf("list spans %d..%d, want 3..127", smallPrimes[0], smallPrimes[29])
	}
	for i, p := range smallPrimes {
		if i > 0 && p <= smallPrimes[i-1] {
			t.Errorf("list not ascending at %d: %d after %d", i, p, smallPrimes[i-1])
		}
		for d := uint64(3); d*d <= p; d += 2 {
			if p%d == 0 {
				t.Errorf("listed value %d is composite", p)
			}
		}
	}
}

// Test that the reciprocal strategy reports the same first factor as the
// modulo strategy everywhere
func TestDividersAgree(t *testing.T) {
	mod := ModDivider{}
	rec := NewReciprocalDivider()

	check := func(x uint64) {
		p1, ok1 := mod.FirstFactor(x)
		p2, ok2 := rec.FirstFactor(x)
		if p1 != p2 || ok1 != ok2 {
			t.Fatalf("FirstFactor(%d): mod (%d, %v), reciprocal (%d, %v)", x, p1, ok1, p2, ok2)
		}
	}

	for x := uint64(0); x < 200000; x++ {
		check(x)
	}
	v := uint64(31)
	for i := 0; i < 100000; i++ {
		v = v*6364136223846793005 + 1442695040888963407
		check(v)
	}
	for _, x := range []uint64{^uint64(0), ^uint64(0) - 1, 1 << 63, 1<<63 + 1} {
		check(x)
	}
}

// Test that a filter over either strategy classifies identically
func TestFilterStrategiesAgree(t *testing.T) {
	fm := NewFilter(ModDivider{})
	fr := NewFilter(NewReciprocalDivider())
	v := uint64(17)
	for i := 0; i < 100000; i++ {
		v = v*6364136223846793005 + 1442695040888963407
		if fm.Classify(v) != fr.Classify(v) {
			t.Fatalf("Classify(%d) differs between strategies", v)
		}
	}
}
