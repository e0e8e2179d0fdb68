// Package bridge exposes a factory.Factory to a VST3 host.
//
// The C side (factory.c) owns the static factory object, its nested vtable
// and the GetPluginFactory export. Each vtable slot calls one of the Go
// callbacks below. This file is the only place raw host pointers are
// converted to Go values: every callback turns its arguments into a TUID
// copy or a typed record pointer and hands them to the active factory.
//
// Plugin modules import this package and call Register from an init
// function; a c-shared build then produces a loadable module.
package bridge

// #include "factory.h"
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

var active atomic.Pointer[factory.Factory]

func init() {
	active.Store(factory.Empty())
}

// Register makes f the factory the host sees. Call it during package
// initialisation, before the host can resolve GetPluginFactory. A nil f
// installs an empty factory.
func Register(f *factory.Factory) {
	if f == nil {
		f = factory.Empty()
	}
	active.Store(f)
}

// Active returns the registered factory.
func Active() *factory.Factory {
	return active.Load()
}

// recoverPanic keeps a Go panic from unwinding into the host. The callback
// reports fallback instead.
func recoverPanic(operation string, res *C.int32_t, fallback vst3.Result) {
	if r := recover(); r != nil {
		debug.Error().Str("op", operation).Interface("panic", r).Msg("recovered panic in host callback")
		*res = C.int32_t(fallback)
	}
}

// tuid copies a 16-byte identifier out of host memory.
func tuid(p *C.char) vst3.TUID {
	return *(*vst3.TUID)(unsafe.Pointer(p))
}

//export GoQueryInterface
func GoQueryInterface(self unsafe.Pointer, iid *C.char, obj *unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("queryInterface", &res, vst3.ResultNoInterface)

	if !Active().QueryInterface(tuid(iid)) {
		return C.int32_t(vst3.ResultNoInterface)
	}
	*obj = self
	return C.int32_t(vst3.ResultOk)
}

//export GoAddRef
func GoAddRef(self unsafe.Pointer) C.uint32_t {
	return C.uint32_t(Active().AddRef())
}

//export GoRelease
func GoRelease(self unsafe.Pointer) C.uint32_t {
	return C.uint32_t(Active().Release())
}

//export GoGetFactoryInfo
func GoGetFactoryInfo(self unsafe.Pointer, info unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("getFactoryInfo", &res, vst3.ResultInvalidArgument)

	return C.int32_t(Active().GetFactoryInfo((*vst3.PFactoryInfo)(info)))
}

//export GoCountClasses
func GoCountClasses(self unsafe.Pointer) C.int32_t {
	return C.int32_t(Active().CountClasses())
}

//export GoGetClassInfo
func GoGetClassInfo(self unsafe.Pointer, index C.int32_t, info unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("getClassInfo", &res, vst3.ResultInvalidArgument)

	return C.int32_t(Active().GetClassInfo(int32(index), (*vst3.PClassInfo)(info)))
}

//export GoGetClassInfo2
func GoGetClassInfo2(self unsafe.Pointer, index C.int32_t, info unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("getClassInfo2", &res, vst3.ResultInvalidArgument)

	return C.int32_t(Active().GetClassInfo2(int32(index), (*vst3.PClassInfo2)(info)))
}

//export GoGetClassInfoUnicode
func GoGetClassInfoUnicode(self unsafe.Pointer, index C.int32_t, info unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("getClassInfoUnicode", &res, vst3.ResultInvalidArgument)

	return C.int32_t(Active().GetClassInfoUnicode(int32(index), (*vst3.PClassInfoW)(info)))
}

//export GoCreateInstance
func GoCreateInstance(self unsafe.Pointer, cid, iid *C.char, obj *unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("createInstance", &res, vst3.ResultNotImplemented)

	// obj stays untouched until a class can actually be instantiated.
	return C.int32_t(Active().CreateInstance(tuid(cid), tuid(iid)))
}

//export GoSetHostContext
func GoSetHostContext(self unsafe.Pointer, context unsafe.Pointer) (res C.int32_t) {
	defer recoverPanic("setHostContext", &res, vst3.ResultNotImplemented)

	return C.int32_t(Active().SetHostContext(context))
}
