package cli

import (
	"unsafe"

	"github.com/justyntemme/vst3shim/pkg/bridge"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// outSlot seeds out pointers so abiHost can tell whether a call wrote them.
var outSlot byte

// abiHost probes the factory through GetPluginFactory and the C vtable.
type abiHost struct {
	c *bridge.Client
}

func (h abiHost) seed() unsafe.Pointer {
	return unsafe.Pointer(&outSlot)
}

func (h abiHost) QueryInterface(iid vst3.TUID) (vst3.Result, bool) {
	obj, res := h.c.QueryInterface(iid, h.seed())
	if res == vst3.ResultOk {
		return res, obj == h.c.Pointer()
	}
	return res, obj == h.seed()
}

func (h abiHost) AddRef() uint32 { return h.c.AddRef() }

func (h abiHost) Release() uint32 { return h.c.Release() }

func (h abiHost) CountClasses() int32 { return h.c.CountClasses() }

func (h abiHost) GetFactoryInfo(out *vst3.PFactoryInfo) vst3.Result {
	return h.c.GetFactoryInfo(out)
}

func (h abiHost) GetClassInfo(index int32, out *vst3.PClassInfo) vst3.Result {
	return h.c.GetClassInfo(index, out)
}

func (h abiHost) GetClassInfo2(index int32, out *vst3.PClassInfo2) vst3.Result {
	return h.c.GetClassInfo2(index, out)
}

func (h abiHost) GetClassInfoUnicode(index int32, out *vst3.PClassInfoW) vst3.Result {
	return h.c.GetClassInfoUnicode(index, out)
}

func (h abiHost) CreateInstance(cid, iid vst3.TUID) (vst3.Result, bool) {
	obj, res := h.c.CreateInstance(cid, iid, h.seed())
	return res, obj == h.seed()
}
