package models

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Unit is the declared unit of an EPD or assembly.
type Unit string

const (
	UnitM       Unit = "M"
	UnitM2      Unit = "M2"
	UnitM3      Unit = "M3"
	UnitKg      Unit = "KG"
	UnitTones   Unit = "TONES"
	UnitPcs     Unit = "PCS"
	UnitL       Unit = "L"
	UnitM2R1    Unit = "M2R1"
	UnitUnknown Unit = "UNKNOWN"
)

var AllUnit = []Unit{
	UnitM,
	UnitM2,
	UnitM3,
	UnitKg,
	UnitTones,
	UnitPcs,
	UnitL,
	UnitM2R1,
	UnitUnknown,
}

func (e Unit) IsValid() bool {
	switch e {
	case UnitM, UnitM2, UnitM3, UnitKg, UnitTones, UnitPcs, UnitL, UnitM2R1, UnitUnknown:
		return true
	}
	return false
}

func (e Unit) String() string {
	return string(e)
}

func (e *Unit) UnmarshalGQL(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}

	*e = Unit(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid Unit", str)
	}
	return nil
}

func (e Unit) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// UnitFromILCD maps the unit strings found in ILCD+EPD exchanges onto the
// enum, defaulting to UNKNOWN for anything unrecognised.
func UnitFromILCD(raw string) Unit {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m":
		return UnitM
	case "m2", "m^2", "qm", "square meter":
		return UnitM2
	case "m3", "m^3", "cubic meter":
		return UnitM3
	case "kg":
		return UnitKg
	case "t", "tones":
		return UnitTones
	case "pcs", "pcs.", "stk", "piece":
		return UnitPcs
	case "l":
		return UnitL
	case "m2r1":
		return UnitM2R1
	default:
		return UnitUnknown
	}
}

// SubType classifies the data behind an EPD declaration.
type SubType string

const (
	SubTypeGeneric        SubType = "GENERIC"
	SubTypeSpecific       SubType = "SPECIFIC"
	SubTypeIndustry       SubType = "INDUSTRY"
	SubTypeRepresentative SubType = "REPRESENTATIVE"
)

var AllSubType = []SubType{
	SubTypeGeneric,
	SubTypeSpecific,
	SubTypeIndustry,
	SubTypeRepresentative,
}

func (e SubType) IsValid() bool {
	switch e {
	case SubTypeGeneric, SubTypeSpecific, SubTypeIndustry, SubTypeRepresentative:
		return true
	}
	return false
}

func (e SubType) String() string {
	return string(e)
}

func (e *SubType) UnmarshalGQL(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}

	*e = SubType(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid SubType", str)
	}
	return nil
}

func (e SubType) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// SubTypeFromILCD resolves a registry subtype string, e.g. "generic dataset",
// to the enum. Unmatched values fall back to GENERIC, the conservative choice
// for aggregation.
func SubTypeFromILCD(raw string) SubType {
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(lowered, "representative"):
		return SubTypeRepresentative
	case strings.Contains(lowered, "industry"):
		return SubTypeIndustry
	case strings.Contains(lowered, "specific"):
		return SubTypeSpecific
	default:
		return SubTypeGeneric
	}
}
