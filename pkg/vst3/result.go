package vst3

import "fmt"

// Result is the 32-bit status code every fallible boundary call returns.
// The numeric values differ per platform; see result_windows.go and
// result_other.go.
type Result int32

// String returns the SDK name of the result code.
func (r Result) String() string {
	switch r {
	case ResultOk:
		return "kResultOk"
	case ResultFalse:
		return "kResultFalse"
	case ResultNoInterface:
		return "kNoInterface"
	case ResultInvalidArgument:
		return "kInvalidArgument"
	case ResultNotImplemented:
		return "kNotImplemented"
	}
	return fmt.Sprintf("tresult(%d)", int32(r))
}

// OK reports whether r signals success.
func (r Result) OK() bool {
	return r == ResultOk
}
