// Package vst3 holds the binary-level vocabulary shared with VST3 hosts:
// identifiers, result codes, the plain-data records the factory fills in and
// the string marshalling rules for their fixed-size character buffers.
//
// Nothing in this package uses cgo. The record types are laid out so that a
// pointer received from the host can be reinterpreted as a pointer to them;
// see pkg/bridge for the only place where that happens.
package vst3

// Interface IDs
var (
	IIDFUnknown        = InlineUID(0x00000000, 0x00000000, 0xC0000000, 0x00000046)
	IIDIPluginFactory  = InlineUID(0x7A4D811C, 0x52114A1F, 0xAED9D2EE, 0x0B43BF9F)
	IIDIPluginFactory2 = InlineUID(0x0007B650, 0xF24B4C0B, 0xA464EDB9, 0xF00B2ABB)
	IIDIPluginFactory3 = InlineUID(0x4555A2AB, 0xC1234E57, 0x9B122910, 0x36878931)

	// Component-side interfaces a host asks createInstance for. The factory
	// never implements them itself; they are only used to name requests.
	IIDIPluginBase      = InlineUID(0x22888DDB, 0x156E45AE, 0x8358B348, 0x08190625)
	IIDIComponent       = InlineUID(0xE831FF31, 0xF2D54301, 0x928EBBEE, 0x25697802)
	IIDIAudioProcessor  = InlineUID(0x42043F99, 0xB7DA453C, 0xA569E79D, 0x9AAEC33D)
	IIDIEditController  = InlineUID(0xDCD7BBE3, 0x7742448D, 0xA874AACC, 0x979C759E)
)

// InterfaceName returns a readable name for a known interface ID, or "" if
// the ID is not one this package knows about.
func InterfaceName(iid TUID) string {
	switch iid {
	case IIDFUnknown:
		return "FUnknown"
	case IIDIPluginFactory:
		return "IPluginFactory"
	case IIDIPluginFactory2:
		return "IPluginFactory2"
	case IIDIPluginFactory3:
		return "IPluginFactory3"
	case IIDIPluginBase:
		return "IPluginBase"
	case IIDIComponent:
		return "IComponent"
	case IIDIAudioProcessor:
		return "IAudioProcessor"
	case IIDIEditController:
		return "IEditController"
	}
	return ""
}

// Class categories
const (
	CategoryAudioEffect         = "Audio Module Class"
	CategoryComponentController = "Component Controller Class"
)

// Sub-categories used in PClassInfo2.SubCategories. Multiple entries are
// joined with "|".
const (
	SubCategoryFx         = "Fx"
	SubCategoryDynamics   = "Fx|Dynamics"
	SubCategoryInstrument = "Instrument"
)

// SDKVersionString is reported as the SDK version of every class.
const SDKVersionString = "VST 3.7.9"

// Cardinality is the number of instances a host may create for one class.
type Cardinality int32

// ManyInstances is the only cardinality the SDK defines.
const ManyInstances Cardinality = 0x7FFFFFFF

// Factory flags reported in PFactoryInfo.Flags.
const (
	FactoryNoFlags                 int32 = 0
	FactoryClassesDiscardable      int32 = 1 << 0
	FactoryLicenseCheck            int32 = 1 << 1
	FactoryComponentNonDiscardable int32 = 1 << 3
	FactoryUnicode                 int32 = 1 << 4
)

// Component flags reported in PClassInfo2.ClassFlags.
const (
	ComponentDistributable       uint32 = 1 << 0
	ComponentSimpleModeSupported uint32 = 1 << 1
)
