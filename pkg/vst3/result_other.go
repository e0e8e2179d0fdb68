//go:build !windows

package vst3

const (
	ResultOk              Result = 0
	ResultTrue            Result = ResultOk
	ResultFalse           Result = 1
	ResultNoInterface     Result = -1
	ResultInvalidArgument Result = 2
	ResultNotImplemented  Result = 3
)
