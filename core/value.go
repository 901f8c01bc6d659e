package core

import (
	"math"
	"strconv"
)

// Value is either a String or a Number.
type Value interface {
	// Kind returns the type tag of the value.
	Kind() Kind
	// Text returns the value as Print renders it.
	Text() string

	value()
}

// Kind is the type tag of a value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// String returns the name of the kind.
func (k Kind) String() string {
	if k == KindNumber {
		return "Number"
	}

	return "String"
}

// String is a text value.
type String string

// Number is a double precision value.
type Number float64

func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }

func (s String) Text() string { return string(s) }

// Text renders the number in plain decimal notation without an exponent.
func (n Number) Text() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (String) value() {}
func (Number) value() {}
