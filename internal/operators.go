package internal

type operatorApply func(left, right value) (value, error)

var binaryOperations = map[tokenType]operatorApply{
	tkPlus:         add,
	tkMinus:        numberOperation(func(a, b loxNumber) value { return a - b }),
	tkStar:         numberOperation(func(a, b loxNumber) value { return a * b }),
	tkSlash:        numberOperation(func(a, b loxNumber) value { return a / b }),
	tkGreater:      numberOperation(func(a, b loxNumber) value { return loxBool(a > b) }),
	tkGreaterEqual: numberOperation(func(a, b loxNumber) value { return loxBool(a >= b) }),
	tkLess:         numberOperation(func(a, b loxNumber) value { return loxBool(a < b) }),
	tkLessEqual:    numberOperation(func(a, b loxNumber) value { return loxBool(a <= b) }),
	tkEqualEqual: func(left, right value) (value, error) {
		return loxBool(equal(left, right)), nil
	},
	tkBangEqual: func(left, right value) (value, error) {
		return loxBool(!equal(left, right)), nil
	},
}

func numberOperation(apply func(a, b loxNumber) value) operatorApply {
	return func(left, right value) (value, error) {
		a, ok := left.(loxNumber)
		if !ok {
			return nil, errOnlyNumbers
		}
		b, ok := right.(loxNumber)
		if !ok {
			return nil, errOnlyNumbers
		}
		return apply(a, b), nil
	}
}

// add sums two numbers. When either side is a string both sides are turned
// into text and concatenated.
func add(left, right value) (value, error) {
	a, leftNum := left.(loxNumber)
	b, rightNum := right.(loxNumber)
	if leftNum && rightNum {
		return a + b, nil
	}
	_, leftStr := left.(loxString)
	_, rightStr := right.(loxString)
	if !leftStr && !rightStr {
		return nil, errOnlyNumbersOrStrings
	}
	if !(leftStr || leftNum) || !(rightStr || rightNum) {
		return nil, errOnlyNumbersOrStrings
	}
	return loxString(stringify(left) + stringify(right)), nil
}

func negate(right value) (value, error) {
	n, ok := right.(loxNumber)
	if !ok {
		return nil, errOnlyNumber
	}
	return -n, nil
}
