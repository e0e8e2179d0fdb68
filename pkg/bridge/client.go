package bridge

// #include "factory.h"
import "C"

import (
	"unsafe"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// Client drives the factory from the host's side of the boundary: it resolves
// GetPluginFactory and calls every method through the C vtable, so it
// exercises the same path a host does. It is used by tests and by the
// probe command.
type Client struct {
	obj unsafe.Pointer
}

// Open resolves the module export the way a host loader would.
func Open() *Client {
	return &Client{obj: C.GetPluginFactory()}
}

// Pointer returns the address GetPluginFactory returned.
func (c *Client) Pointer() unsafe.Pointer {
	return c.obj
}

func cid(id *vst3.TUID) *C.char {
	return (*C.char)(unsafe.Pointer(&id[0]))
}

// QueryInterface asks for iid. The out slot is seeded with initial; the
// returned pointer is whatever the slot holds afterwards.
func (c *Client) QueryInterface(iid vst3.TUID, initial unsafe.Pointer) (unsafe.Pointer, vst3.Result) {
	r := C.shimCallQueryInterface(c.obj, cid(&iid), initial)
	return r.obj, vst3.Result(r.result)
}

// AddRef calls FUnknown::addRef.
func (c *Client) AddRef() uint32 {
	return uint32(C.shimCallAddRef(c.obj))
}

// Release calls FUnknown::release.
func (c *Client) Release() uint32 {
	return uint32(C.shimCallRelease(c.obj))
}

// GetFactoryInfo calls IPluginFactory::getFactoryInfo.
func (c *Client) GetFactoryInfo(info *vst3.PFactoryInfo) vst3.Result {
	return vst3.Result(C.shimCallGetFactoryInfo(c.obj, unsafe.Pointer(info)))
}

// CountClasses calls IPluginFactory::countClasses.
func (c *Client) CountClasses() int32 {
	return int32(C.shimCallCountClasses(c.obj))
}

// GetClassInfo calls IPluginFactory::getClassInfo.
func (c *Client) GetClassInfo(index int32, info *vst3.PClassInfo) vst3.Result {
	return vst3.Result(C.shimCallGetClassInfo(c.obj, C.int32_t(index), unsafe.Pointer(info)))
}

// GetClassInfo2 calls IPluginFactory2::getClassInfo2.
func (c *Client) GetClassInfo2(index int32, info *vst3.PClassInfo2) vst3.Result {
	return vst3.Result(C.shimCallGetClassInfo2(c.obj, C.int32_t(index), unsafe.Pointer(info)))
}

// GetClassInfoUnicode calls IPluginFactory3::getClassInfoUnicode.
func (c *Client) GetClassInfoUnicode(index int32, info *vst3.PClassInfoW) vst3.Result {
	return vst3.Result(C.shimCallGetClassInfoUnicode(c.obj, C.int32_t(index), unsafe.Pointer(info)))
}

// CreateInstance calls IPluginFactory::createInstance with the out slot
// seeded with initial.
func (c *Client) CreateInstance(classID, iid vst3.TUID, initial unsafe.Pointer) (unsafe.Pointer, vst3.Result) {
	r := C.shimCallCreateInstance(c.obj, cid(&classID), cid(&iid), initial)
	return r.obj, vst3.Result(r.result)
}

// SetHostContext calls IPluginFactory3::setHostContext.
func (c *Client) SetHostContext(context unsafe.Pointer) vst3.Result {
	return vst3.Result(C.shimCallSetHostContext(c.obj, context))
}
