package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name converts arbitrary values into random readable names. Vertex and
// polygon pointers all print alike in failure messages; a name like
// "WigglyMarmot" is much easier to track across a debug dump. Names are
// memoized forever (this leaks, but they are generated lazily and only
// debug paths ask for them) and are nondeterministic between runs, as a
// reminder that the same name never refers to the same value across two
// processes.

var memo = map[interface{}]string{}

func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
