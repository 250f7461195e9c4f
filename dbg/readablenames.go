package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for otherwise anonymous pointers. Intermediate hulls in the
// recursion are only distinguishable by address, which makes merge traces
// painful to read; this memoizes a random petname per pointer instead. The
// memo is never freed, which is fine for debugging sessions.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we keep them
	// nondeterministic as a reminder that the same name doesn't mean the
	// same object between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
