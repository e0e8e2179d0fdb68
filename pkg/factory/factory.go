// Package factory implements the plugin factory a host talks to: interface
// identity checks, class enumeration in all three query generations, factory
// metadata and the instance-creation entry point.
//
// Everything here is plain Go operating on the records in pkg/vst3. The cgo
// adapter in pkg/bridge forwards each vtable slot to the matching method.
//
// A Factory is immutable once built and safe for concurrent use. Every method
// either fills the caller's record completely and returns vst3.ResultOk, or
// returns an error code and leaves the record untouched.
package factory

import (
	"unsafe"

	"github.com/justyntemme/vst3shim/pkg/framework/debug"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// RefCount is what AddRef and Release report. The factory is a static object
// that lives as long as the module, so there is nothing to count. Objects
// created by CreateInstance will need real reference counting.
const RefCount uint32 = 1

// Generation selects one of the three class info query forms.
type Generation int

const (
	// Minimal is IPluginFactory::getClassInfo.
	Minimal Generation = iota
	// Extended is IPluginFactory2::getClassInfo2.
	Extended
	// ExtendedWide is IPluginFactory3::getClassInfoUnicode.
	ExtendedWide
)

// Generations lists every query generation, oldest first.
var Generations = []Generation{Minimal, Extended, ExtendedWide}

// String returns the name of the host call for the generation.
func (g Generation) String() string {
	switch g {
	case Minimal:
		return "getClassInfo"
	case Extended:
		return "getClassInfo2"
	case ExtendedWide:
		return "getClassInfoUnicode"
	}
	return "unknown"
}

// Info is the factory-wide vendor information.
type Info struct {
	Vendor string
	URL    string
	Email  string
	// Flags are extra PFactoryInfo flags. FactoryUnicode is always added.
	Flags int32
}

// supportedInterfaces are the shapes the factory vtable can stand in for:
// each is a prefix of the next, so one object pointer serves all of them.
var supportedInterfaces = [...]vst3.TUID{
	vst3.IIDFUnknown,
	vst3.IIDIPluginFactory,
	vst3.IIDIPluginFactory2,
	vst3.IIDIPluginFactory3,
}

// Factory answers the host's factory calls from a frozen class registry.
type Factory struct {
	info    Info
	classes *Registry
}

// New creates a factory over classes and freezes the registry.
func New(info Info, classes *Registry) *Factory {
	if classes == nil {
		classes = NewRegistry()
	}
	info.Flags |= vst3.FactoryUnicode
	classes.Freeze()
	return &Factory{info: info, classes: classes}
}

// Empty returns a factory with no classes, used until a plugin registers one.
func Empty() *Factory {
	return New(Info{}, nil)
}

// Info returns the factory metadata.
func (f *Factory) Info() Info {
	return f.info
}

// Classes returns the class registry.
func (f *Factory) Classes() *Registry {
	return f.classes
}

// QueryInterface reports whether the factory implements iid.
func (f *Factory) QueryInterface(iid vst3.TUID) bool {
	for _, supported := range supportedInterfaces {
		if iid == supported {
			return true
		}
	}
	debug.Debug().Stringer("iid", iid).Msg("queryInterface: no such interface")
	return false
}

// AddRef returns RefCount.
func (f *Factory) AddRef() uint32 { return RefCount }

// Release returns RefCount. The factory is never freed.
func (f *Factory) Release() uint32 { return RefCount }

// GetFactoryInfo fills out with the vendor information.
func (f *Factory) GetFactoryInfo(out *vst3.PFactoryInfo) vst3.Result {
	var rec vst3.PFactoryInfo
	vst3.WriteNarrow(rec.Vendor[:], f.info.Vendor)
	vst3.WriteNarrow(rec.URL[:], f.info.URL)
	vst3.WriteNarrow(rec.Email[:], f.info.Email)
	rec.Flags = f.info.Flags
	*out = rec
	return vst3.ResultOk
}

// CountClasses returns the number of classes.
func (f *Factory) CountClasses() int32 {
	return f.classes.Count()
}

func (f *Factory) class(index int32, g Generation) (ClassDescriptor, bool) {
	c, ok := f.classes.GetByIndex(index)
	if !ok {
		debug.Debug().Int32("index", index).Stringer("query", g).Msg("class index out of range")
	}
	return c, ok
}

// GetClassInfo fills out with the minimal description of the class at index.
func (f *Factory) GetClassInfo(index int32, out *vst3.PClassInfo) vst3.Result {
	c, ok := f.class(index, Minimal)
	if !ok {
		return vst3.ResultInvalidArgument
	}
	var rec vst3.PClassInfo
	rec.CID = c.CID
	rec.Cardinality = c.Cardinality
	vst3.WriteNarrow(rec.Category[:], c.Category)
	vst3.WriteNarrow(rec.Name[:], c.Name)
	*out = rec
	return vst3.ResultOk
}

// GetClassInfo2 fills out with the extended description of the class at
// index, all strings narrow.
func (f *Factory) GetClassInfo2(index int32, out *vst3.PClassInfo2) vst3.Result {
	c, ok := f.class(index, Extended)
	if !ok {
		return vst3.ResultInvalidArgument
	}
	var rec vst3.PClassInfo2
	rec.CID = c.CID
	rec.Cardinality = c.Cardinality
	vst3.WriteNarrow(rec.Category[:], c.Category)
	vst3.WriteNarrow(rec.Name[:], c.Name)
	rec.ClassFlags = c.ClassFlags
	vst3.WriteNarrow(rec.SubCategories[:], c.SubCategories)
	vst3.WriteNarrow(rec.Vendor[:], c.Vendor)
	vst3.WriteNarrow(rec.Version[:], c.Version)
	vst3.WriteNarrow(rec.SDKVersion[:], c.SDKVersion)
	*out = rec
	return vst3.ResultOk
}

// GetClassInfoUnicode fills out with the extended description of the class at
// index, display strings in UTF-16.
func (f *Factory) GetClassInfoUnicode(index int32, out *vst3.PClassInfoW) vst3.Result {
	c, ok := f.class(index, ExtendedWide)
	if !ok {
		return vst3.ResultInvalidArgument
	}
	var rec vst3.PClassInfoW
	rec.CID = c.CID
	rec.Cardinality = c.Cardinality
	vst3.WriteNarrow(rec.Category[:], c.Category)
	vst3.WriteWide(rec.Name[:], c.Name)
	rec.ClassFlags = c.ClassFlags
	vst3.WriteNarrow(rec.SubCategories[:], c.SubCategories)
	vst3.WriteWide(rec.Vendor[:], c.Vendor)
	vst3.WriteWide(rec.Version[:], c.Version)
	vst3.WriteWide(rec.SDKVersion[:], c.SDKVersion)
	*out = rec
	return vst3.ResultOk
}

// ClassInfoAt runs the given query generation for index and decodes the
// record it produced. Fields the generation does not carry are left zero.
func (f *Factory) ClassInfoAt(index int32, g Generation) (ClassDescriptor, vst3.Result) {
	switch g {
	case Minimal:
		var rec vst3.PClassInfo
		if res := f.GetClassInfo(index, &rec); !res.OK() {
			return ClassDescriptor{}, res
		}
		return DecodeClassInfo(&rec), vst3.ResultOk
	case Extended:
		var rec vst3.PClassInfo2
		if res := f.GetClassInfo2(index, &rec); !res.OK() {
			return ClassDescriptor{}, res
		}
		return DecodeClassInfo2(&rec), vst3.ResultOk
	case ExtendedWide:
		var rec vst3.PClassInfoW
		if res := f.GetClassInfoUnicode(index, &rec); !res.OK() {
			return ClassDescriptor{}, res
		}
		return DecodeClassInfoW(&rec), vst3.ResultOk
	}
	return ClassDescriptor{}, vst3.ResultInvalidArgument
}

// CreateInstance is the entry point for instantiating a class. No class in
// this module has a body yet, so a known class reports ResultNotImplemented
// and an unknown one ResultNoInterface. The caller's object pointer is never
// written.
func (f *Factory) CreateInstance(cid, iid vst3.TUID) vst3.Result {
	c, _, ok := f.classes.Lookup(cid)
	if !ok {
		debug.Debug().Stringer("cid", cid).Msg("createInstance: unknown class")
		return vst3.ResultNoInterface
	}
	debug.Info().
		Str("class", c.Name).
		Stringer("iid", iid).
		Str("interface", vst3.InterfaceName(iid)).
		Msg("createInstance: class has no implementation")
	return vst3.ResultNotImplemented
}

// SetHostContext receives the host's context object. The factory has no use
// for it and does not keep it.
func (f *Factory) SetHostContext(context unsafe.Pointer) vst3.Result {
	debug.Debug().Bool("context", context != nil).Msg("setHostContext")
	return vst3.ResultNotImplemented
}

// DecodeClassInfo converts a minimal record back into a descriptor.
func DecodeClassInfo(rec *vst3.PClassInfo) ClassDescriptor {
	return ClassDescriptor{
		CID:         rec.CID,
		Cardinality: rec.Cardinality,
		Category:    vst3.ReadNarrow(rec.Category[:]),
		Name:        vst3.ReadNarrow(rec.Name[:]),
	}
}

// DecodeClassInfo2 converts an extended record back into a descriptor.
func DecodeClassInfo2(rec *vst3.PClassInfo2) ClassDescriptor {
	return ClassDescriptor{
		CID:           rec.CID,
		Cardinality:   rec.Cardinality,
		Category:      vst3.ReadNarrow(rec.Category[:]),
		Name:          vst3.ReadNarrow(rec.Name[:]),
		ClassFlags:    rec.ClassFlags,
		SubCategories: vst3.ReadNarrow(rec.SubCategories[:]),
		Vendor:        vst3.ReadNarrow(rec.Vendor[:]),
		Version:       vst3.ReadNarrow(rec.Version[:]),
		SDKVersion:    vst3.ReadNarrow(rec.SDKVersion[:]),
	}
}

// DecodeClassInfoW converts a wide record back into a descriptor.
func DecodeClassInfoW(rec *vst3.PClassInfoW) ClassDescriptor {
	return ClassDescriptor{
		CID:           rec.CID,
		Cardinality:   rec.Cardinality,
		Category:      vst3.ReadNarrow(rec.Category[:]),
		Name:          vst3.ReadWide(rec.Name[:]),
		ClassFlags:    rec.ClassFlags,
		SubCategories: vst3.ReadNarrow(rec.SubCategories[:]),
		Vendor:        vst3.ReadWide(rec.Vendor[:]),
		Version:       vst3.ReadWide(rec.Version[:]),
		SDKVersion:    vst3.ReadWide(rec.SDKVersion[:]),
	}
}

// DecodeFactoryInfo converts a factory record back into Info.
func DecodeFactoryInfo(rec *vst3.PFactoryInfo) Info {
	return Info{
		Vendor: vst3.ReadNarrow(rec.Vendor[:]),
		URL:    vst3.ReadNarrow(rec.URL[:]),
		Email:  vst3.ReadNarrow(rec.Email[:]),
		Flags:  rec.Flags,
	}
}
