//go:build windows

package vst3

// On Windows the SDK builds with COM_COMPATIBLE, so identifiers share the
// in-memory layout of a GUID: Data1 and Data2/Data3 are little-endian.
const comCompatible = true

// comSwap converts between INLINE_UID word order and GUID field order. It is
// its own inverse.
func comSwap(id *TUID) {
	id[0], id[1], id[2], id[3] = id[3], id[2], id[1], id[0]
	id[4], id[5] = id[5], id[4]
	id[6], id[7] = id[7], id[6]
}
