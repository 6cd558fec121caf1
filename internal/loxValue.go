package internal

import (
	"fmt"
	"math"
	"strconv"
)

// value is any runtime value: nil, loxBool, loxNumber, loxString,
// loxCallable or *loxInstance
type value = interface{}

type loxBool bool

type loxNumber float64

type loxString string

func (b loxBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (n loxNumber) String() string {
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

func (s loxString) String() string {
	return string(s)
}

// truthy only false and nil are falsy
func truthy(v value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(loxBool); ok {
		return bool(b)
	}
	return true
}

// equal compares primitives by value and everything else by identity.
// Values of different kinds are never equal.
func equal(left, right value) bool {
	return left == right
}

func stringify(v value) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
