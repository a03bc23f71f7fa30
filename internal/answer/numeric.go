package answer

import (
	"math/big"
	"slices"
)

// Rat returns the exact rational value of f. A zero denominator yields nil.
func (f Fraction) Rat() *big.Rat {
	if f.Denominator == 0 {
		return nil
	}
	den := new(big.Int).SetUint64(uint64(f.Denominator))
	num := new(big.Int).SetUint64(uint64(f.WholeNumber))
	num.Mul(num, den)
	num.Add(num, new(big.Int).SetUint64(uint64(f.Numerator)))
	if f.IsNegative {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, den)
}

// Float64 returns f as a float; zero-denominator fractions return 0.
func (f Fraction) Float64() float64 {
	r := f.Rat()
	if r == nil {
		return 0
	}
	v, _ := r.Float64()
	return v
}

// SimplestForm divides numerator and denominator by their greatest common
// divisor. The whole number part and sign are left as they are.
func (f Fraction) SimplestForm() Fraction {
	if f.Denominator == 0 {
		return f
	}
	g := gcd(uint64(f.Numerator), uint64(f.Denominator))
	if g == 0 {
		return f
	}
	f.Numerator = uint32(uint64(f.Numerator) / g)
	f.Denominator = uint32(uint64(f.Denominator) / g)
	return f
}

// Float64 returns the magnitude of n regardless of its kind.
func (n NumberWithUnits) Float64() float64 {
	if n.Kind == NumberKindFraction {
		return n.Fraction.Float64()
	}
	return n.Real
}

// UnitExponents folds the unit list into unit → total exponent, dropping
// units whose exponents cancel out.
func (n NumberWithUnits) UnitExponents() map[string]int32 {
	out := make(map[string]int32, len(n.Units))
	for _, u := range n.Units {
		out[u.Unit] += u.Exponent
	}
	for unit, exp := range out {
		if exp == 0 {
			delete(out, unit)
		}
	}
	return out
}

// Reduced divides every term by the greatest common divisor of all terms.
// An all-zero or empty ratio is returned unchanged.
func (r RatioExpression) Reduced() RatioExpression {
	var g uint64
	for _, term := range r {
		g = gcd(g, uint64(term))
	}
	if g <= 1 {
		return slices.Clone(r)
	}
	out := make(RatioExpression, len(r))
	for i, term := range r {
		out[i] = uint32(uint64(term) / g)
	}
	return out
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
