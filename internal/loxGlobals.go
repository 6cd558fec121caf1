package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

// clock returns the seconds elapsed since the Unix epoch
func defineClock(e *env) {
	e.define("clock", &nativeFn{
		arityValue: 0,
		callFn: func(exec *exec, arguments []value) value {
			return loxNumber(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
}
