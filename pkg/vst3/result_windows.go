//go:build windows

package vst3

// COM HRESULT values, as the SDK defines them under COM_COMPATIBLE.
const (
	ResultOk              Result = 0
	ResultTrue            Result = ResultOk
	ResultFalse           Result = 1
	ResultNoInterface     Result = -0x7FFFBFFE // 0x80004002
	ResultInvalidArgument Result = -0x7FF8FFA9 // 0x80070057
	ResultNotImplemented  Result = -0x7FFFBFFF // 0x80004001
)
