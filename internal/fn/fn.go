package fn

import (
	"reflect"
	"runtime"
	"strings"
)

// Name returns the bare name of the given function, without its package path.
// Method values lose their receiver, closures keep the compiler-assigned
// funcN suffix.
func Name(f any) string {
	name := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, "-fm")
}
