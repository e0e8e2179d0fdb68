package vst3

// Buffer sizes fixed by the SDK's pluginfactory.h.
const (
	NameSize          = 64
	URLSize           = 256
	EmailSize         = 128
	CategorySize      = 32
	SubCategoriesSize = 128
	VendorSize        = 64
	VersionSize       = 64
)

// PFactoryInfo mirrors Steinberg::PFactoryInfo.
type PFactoryInfo struct {
	Vendor [NameSize]byte
	URL    [URLSize]byte
	Email  [EmailSize]byte
	Flags  int32
}

// PClassInfo mirrors Steinberg::PClassInfo, the minimal class description.
type PClassInfo struct {
	CID         TUID
	Cardinality Cardinality
	Category    [CategorySize]byte
	Name        [NameSize]byte
}

// PClassInfo2 mirrors Steinberg::PClassInfo2. Every string is narrow.
type PClassInfo2 struct {
	CID           TUID
	Cardinality   Cardinality
	Category      [CategorySize]byte
	Name          [NameSize]byte
	ClassFlags    uint32
	SubCategories [SubCategoriesSize]byte
	Vendor        [VendorSize]byte
	Version       [VersionSize]byte
	SDKVersion    [VersionSize]byte
}

// PClassInfoW mirrors Steinberg::PClassInfoW. Category and SubCategories stay
// narrow; the display strings are UTF-16.
type PClassInfoW struct {
	CID           TUID
	Cardinality   Cardinality
	Category      [CategorySize]byte
	Name          [NameSize]uint16
	ClassFlags    uint32
	SubCategories [SubCategoriesSize]byte
	Vendor        [VendorSize]uint16
	Version       [VersionSize]uint16
	SDKVersion    [VersionSize]uint16
}

// Record sizes as the C compiler lays them out. pkg/bridge asserts the same
// numbers on the C side.
const (
	SizeofPFactoryInfo = NameSize + URLSize + EmailSize + 4
	SizeofPClassInfo   = 16 + 4 + CategorySize + NameSize
	SizeofPClassInfo2  = 16 + 4 + CategorySize + NameSize + 4 + SubCategoriesSize + VendorSize + 2*VersionSize
	SizeofPClassInfoW  = 16 + 4 + CategorySize + 2*NameSize + 4 + SubCategoriesSize + 2*VendorSize + 4*VersionSize
)
