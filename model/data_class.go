package model

import "strings"

// DataClass represents column data class
type DataClass int

const (
	Unknown DataClass = iota
	Bit
	Bool
	Char
	VarChar
	Binary
	VarBinary
	TinyBlob
	TinyText
	Text
	Blob
	MediumText
	MediumBlob
	LongText
	LongBlob
	TinyInt
	SmallInt
	MediumInt
	Int
	Integer
	BigInt
	Float
	Double
	DoublePrecision
	Decimal
	Dec
	Date
	Time
	DateTime
	Timestamp
	Year
	//String is a generic string class used by targets without narrower string types
	String
)

// Arity represents number of size arguments a data class accepts
type Arity int

const (
	//NoSize data class does not take size
	NoSize Arity = iota
	//OneSize data class requires exactly one size
	OneSize
	//TwoSizes data class requires precision and scale
	TwoSizes
	//OptionalSizes data class takes zero, one or two sizes
	OptionalSizes
)

var dataClassNames = []string{
	"Unknown", "Bit", "Bool", "Char", "VarChar", "Binary", "VarBinary", "TinyBlob", "TinyText", "Text", "Blob",
	"MediumText", "MediumBlob", "LongText", "LongBlob", "TinyInt", "SmallInt", "MediumInt", "Int", "Integer", "BigInt",
	"Float", "Double", "DoublePrecision", "Decimal", "Dec", "Date", "Time", "DateTime", "Timestamp", "Year", "String",
}

var dataClassIndex = map[string]DataClass{}

func init() {
	for i, name := range dataClassNames {
		dataClassIndex[strings.ToLower(name)] = DataClass(i)
	}
	delete(dataClassIndex, "unknown")
	delete(dataClassIndex, "string")
	dataClassIndex["boolean"] = Bool
	dataClassIndex["double precision"] = DoublePrecision
}

func (c DataClass) String() string {
	if c < 0 || int(c) >= len(dataClassNames) {
		return dataClassNames[Unknown]
	}
	return dataClassNames[c]
}

// LookupDataClass returns data class for case-insensitive type name
func LookupDataClass(name string) (DataClass, bool) {
	ret, ok := dataClassIndex[strings.ToLower(name)]
	return ret, ok
}

func (c DataClass) IsStringLike() bool {
	switch c {
	case Char, VarChar, Binary, VarBinary, TinyBlob, TinyText, Text, Blob, MediumText, MediumBlob, LongText, LongBlob, String:
		return true
	}
	return false
}

func (c DataClass) IsBooleanLike() bool {
	return c == Bit || c == Bool
}

func (c DataClass) IsFractionLike() bool {
	switch c {
	case Float, Double, DoublePrecision, Decimal, Dec:
		return true
	}
	return false
}

func (c DataClass) IsNumericLike() bool {
	switch c {
	case TinyInt, SmallInt, MediumInt, Int, Integer, BigInt:
		return true
	}
	return c.IsFractionLike()
}

func (c DataClass) IsDateLike() bool {
	switch c {
	case Date, Time, DateTime, Timestamp, Year:
		return true
	}
	return false
}

// Arity returns accepted size arguments
func (c DataClass) Arity() Arity {
	switch c {
	case Bit, Char, VarChar, Binary, VarBinary, Text, Blob, TinyInt, SmallInt, MediumInt, Int, Integer, BigInt:
		return OneSize
	case Double, DoublePrecision, Decimal, Dec:
		return TwoSizes
	case Float:
		return OptionalSizes
	}
	return NoSize
}

// Accepts returns true if data class takes count size arguments
func (a Arity) Accepts(count int) bool {
	switch a {
	case OneSize:
		return count == 1
	case TwoSizes:
		return count == 2
	case OptionalSizes:
		return count <= 2
	}
	return count == 0
}
