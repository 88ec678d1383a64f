package sizeconv

import "fmt"

// Unit is a common length unit.
type Unit string

// Supported length units.
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Kilometer  Unit = "km"
	Inch       Unit = "in"
	Foot       Unit = "ft"
	Yard       Unit = "yd"
	Mile       Unit = "mi"
)

// centimetersPer is the pivot table: every unit converts through
// centimeters rather than carrying a formula for each unit pair.
var centimetersPer = map[Unit]float64{
	Millimeter: 0.1,
	Centimeter: 1,
	Meter:      100,
	Kilometer:  100000,
	Inch:       2.54,
	Foot:       30.48,
	Yard:       91.44,
	Mile:       160900,
}

// Scale is a length with a unit that can be converted in place to any
// other supported unit.
//
//	scale := sizeconv.NewScale(sizeconv.Centimeter, 100)
//	length, err := scale.ConvertTo(sizeconv.Meter) // 1, scale.Unit == Meter
type Scale struct {
	Unit   Unit
	Length float64
}

// NewScale creates a Scale with the given unit and length.
func NewScale(unit Unit, length float64) *Scale {
	return &Scale{Unit: unit, Length: length}
}

// ConvertTo converts the scale's unit and length, in place, to the given
// unit and returns the converted length.
func (s *Scale) ConvertTo(unit Unit) (float64, error) {
	from, ok := centimetersPer[s.Unit]
	if !ok {
		return 0, fmt.Errorf("sizeconv: unsupported unit %q", s.Unit)
	}
	to, ok := centimetersPer[unit]
	if !ok {
		return 0, fmt.Errorf("sizeconv: unsupported unit %q", unit)
	}

	s.Length = s.Length * from / to
	s.Unit = unit
	return s.Length, nil
}

func (s *Scale) String() string {
	return fmt.Sprintf("%g %s", s.Length, s.Unit)
}
