package bridge

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/plugin"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// outSlot is the value out pointers are seeded with, so tests can tell
// whether a callback wrote through them.
var outSlot byte

func sentinel() unsafe.Pointer {
	return unsafe.Pointer(&outSlot)
}

var gainInfo = plugin.Info{
	ID:            "com.vst3shim.bridge.gain",
	Name:          "Gain",
	Version:       "1.0.0",
	Vendor:        "Bridge Test",
	Category:      vst3.SubCategoryFx,
	CID:           vst3.InlineUID(0x12345678, 0x9ABCDEF0, 0x11223344, 0x55667788),
	ControllerCID: vst3.InlineUID(0x87654321, 0xFEDCBA98, 0x88776655, 0x44332211),
}

func registerGain(t *testing.T) {
	t.Helper()
	r := factory.NewRegistry()
	require.NoError(t, r.Add(factory.ProcessorClass(gainInfo), factory.ControllerClass(gainInfo)))
	prev := Active()
	Register(factory.New(factory.Info{
		Vendor: "Bridge Test",
		URL:    "https://example.com/bridge",
		Email:  "bridge@example.com",
	}, r))
	t.Cleanup(func() { Register(prev) })
}

func TestQueryInterfaceThroughVtable(t *testing.T) {
	registerGain(t)
	c := Open()
	require.NotNil(t, c.Pointer())

	for _, iid := range []vst3.TUID{
		vst3.IIDFUnknown,
		vst3.IIDIPluginFactory,
		vst3.IIDIPluginFactory2,
		vst3.IIDIPluginFactory3,
	} {
		obj, res := c.QueryInterface(iid, sentinel())
		assert.Equal(t, vst3.ResultOk, res, vst3.InterfaceName(iid))
		assert.Equal(t, c.Pointer(), obj, "every shape is served by the exported object")
	}

	for _, iid := range []vst3.TUID{vst3.IIDIComponent, vst3.IIDIEditController, vst3.NilUID} {
		obj, res := c.QueryInterface(iid, sentinel())
		assert.Equal(t, vst3.ResultNoInterface, res)
		assert.Equal(t, sentinel(), obj, "out slot must not be written")
	}
}

func TestRefCountThroughVtable(t *testing.T) {
	c := Open()
	for i := 0; i < 5; i++ {
		assert.Equal(t, factory.RefCount, c.AddRef())
		assert.Equal(t, factory.RefCount, c.Release())
		assert.Equal(t, factory.RefCount, c.Release())
	}
}

func TestFactoryInfoThroughVtable(t *testing.T) {
	registerGain(t)
	c := Open()

	var rec vst3.PFactoryInfo
	require.Equal(t, vst3.ResultOk, c.GetFactoryInfo(&rec))

	info := factory.DecodeFactoryInfo(&rec)
	assert.Equal(t, "Bridge Test", info.Vendor)
	assert.Equal(t, "https://example.com/bridge", info.URL)
	assert.Equal(t, "bridge@example.com", info.Email)
	assert.NotZero(t, info.Flags&vst3.FactoryUnicode)
}

func TestEnumerationThroughVtable(t *testing.T) {
	registerGain(t)
	c := Open()

	require.Equal(t, int32(2), c.CountClasses())

	var minimal vst3.PClassInfo
	require.Equal(t, vst3.ResultOk, c.GetClassInfo(0, &minimal))
	assert.Equal(t, gainInfo.CID, minimal.CID)
	assert.Equal(t, "Audio Module Class", vst3.ReadNarrow(minimal.Category[:]))
	assert.Equal(t, "Gain", vst3.ReadNarrow(minimal.Name[:]))

	require.Equal(t, vst3.ResultOk, c.GetClassInfo(1, &minimal))
	assert.Equal(t, "Component Controller Class", vst3.ReadNarrow(minimal.Category[:]))
	assert.Equal(t, "Gain Controller", vst3.ReadNarrow(minimal.Name[:]))

	var extended vst3.PClassInfo2
	require.Equal(t, vst3.ResultOk, c.GetClassInfo2(0, &extended))
	assert.Equal(t, "Bridge Test", vst3.ReadNarrow(extended.Vendor[:]))
	assert.Equal(t, vst3.ComponentDistributable, extended.ClassFlags)

	var wide vst3.PClassInfoW
	require.Equal(t, vst3.ResultOk, c.GetClassInfoUnicode(1, &wide))
	assert.Equal(t, "Gain Controller", vst3.ReadWide(wide.Name[:]))
	assert.Equal(t, gainInfo.ControllerCID, wide.CID)
}

func TestInvalidIndexThroughVtable(t *testing.T) {
	registerGain(t)
	c := Open()

	for _, index := range []int32{-1, 2} {
		rec := vst3.PClassInfo{Cardinality: 5}
		assert.Equal(t, vst3.ResultInvalidArgument, c.GetClassInfo(index, &rec))
		assert.Equal(t, vst3.Cardinality(5), rec.Cardinality)

		rec2 := vst3.PClassInfo2{Cardinality: 5}
		assert.Equal(t, vst3.ResultInvalidArgument, c.GetClassInfo2(index, &rec2))
		assert.Equal(t, vst3.Cardinality(5), rec2.Cardinality)

		recW := vst3.PClassInfoW{Cardinality: 5}
		assert.Equal(t, vst3.ResultInvalidArgument, c.GetClassInfoUnicode(index, &recW))
		assert.Equal(t, vst3.Cardinality(5), recW.Cardinality)
	}
}

func TestCreateInstanceThroughVtable(t *testing.T) {
	registerGain(t)
	c := Open()

	obj, res := c.CreateInstance(gainInfo.CID, vst3.IIDIComponent, sentinel())
	assert.Equal(t, vst3.ResultNotImplemented, res)
	assert.Equal(t, sentinel(), obj)

	obj, res = c.CreateInstance(vst3.InlineUID(1, 2, 3, 4), vst3.IIDIComponent, sentinel())
	assert.Equal(t, vst3.ResultNoInterface, res)
	assert.Equal(t, sentinel(), obj)
}

func TestSetHostContextThroughVtable(t *testing.T) {
	c := Open()
	assert.Equal(t, vst3.ResultNotImplemented, c.SetHostContext(nil))
}

func TestEmptyFactoryByDefault(t *testing.T) {
	prev := Active()
	t.Cleanup(func() { Register(prev) })

	Register(nil)
	c := Open()
	assert.Zero(t, c.CountClasses())

	var rec vst3.PClassInfo
	assert.Equal(t, vst3.ResultInvalidArgument, c.GetClassInfo(0, &rec))
}

func TestExportIsStable(t *testing.T) {
	assert.Equal(t, Open().Pointer(), Open().Pointer(), "one factory object per module")
}

func TestModuleHooksAcknowledge(t *testing.T) {
	t.Setenv("VST3SHIM_LOG_LEVEL", "off")

	assert.True(t, bool(GoModuleEntry(nil)))
	assert.True(t, bool(GoModuleEntry(nil)), "entry may be called more than once")
	assert.True(t, bool(GoModuleExit(nil)))
}
