package dac

import "github.com/pkg/errors"

// Threading errors up through the recursive solve and merge steps would add a
// ton of complexity for conditions that can only mean a geometry bug, never
// bad data. Instead, we panic, and the public API recovers to convert to an
// error. Input problems (empty point sets, and parse failures upstream) are
// ordinary returned errors and never go through this path.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
