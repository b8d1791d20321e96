package fract

// Fixed point type used for font metrics and outline coordinates.
//
// 26 bits represent the integer part of the value and the remaining
// 6 bits represent the fractional part, in 64ths.
type Unit int32

// Handy constants and representation limits.
const (
	One Unit = 64 // fract.One.ToInt() == 1

	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	MaxInt  int  = +33554431
	MinInt  int  = -33554432
)

// Fast conversion from int to [Unit]. If the value is not representable
// with a Unit, the result is undefined. Check [MinInt] <= value <= [MaxInt]
// if you need to account for overflows.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest Unit, rounding up in case of ties.
// Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}
	if value - fp64Approx >= 1.0/128.0 { unitApprox += 1 }
	return unitApprox
}

// Returns whether the Unit is a whole number.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns only the fractional part of the Unit, sign included.
func (self Unit) Fract() Unit {
	return self % 64
}

// Returns the fractional part of the Unit shifted to the
// positive range [0, 63].
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

// Fixed point multiplication, rounding half away from zero.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

// Returns self*numerator/divisor computed without intermediate
// overflows, rounding half away from zero. Commonly used to scale
// metric units by a dpi/72 ratio.
func (self Unit) MulDiv(numerator, divisor int64) Unit {
	if divisor == 0 { panic("division by zero") }
	mx64 := int64(self)*numerator
	if mx64 >= 0 { return Unit((mx64 + divisor/2)/divisor) }
	return Unit((mx64 - divisor/2)/divisor)
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}
