package logging

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
)

// CallSite identifies the code location a record originated from. Sites
// captured through Capture carry a zero Column: the runtime exposes file,
// function and line only. Explicitly constructed sites may fill it.
type CallSite struct {
	File     string
	Function string
	Line     int
	Column   int
}

// Capture returns the call site skip frames above the caller of Capture.
// A skip of 0 is the caller itself.
func Capture(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "unknown", Function: "unknown"}
	}
	site := CallSite{File: file, Line: line, Function: "unknown"}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = trimFuncName(fn.Name())
	}
	return site
}

// trimFuncName strips the import path, keeping package.Function.
func trimFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// baseName returns the last component of a path. Both separator styles are
// accepted: call sites may carry path spellings from a foreign platform.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// goroutinePrefix is the fixed header runtime.Stack writes before the id.
var goroutinePrefix = []byte("goroutine ")

// goroutineID reports the id of the calling goroutine, parsed from the
// runtime.Stack header. It distinguishes concurrent producers in records.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
