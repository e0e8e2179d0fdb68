// Package gain defines the classes of the example Gain module: an audio
// processor and its edit controller.
package gain

import (
	"fmt"

	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/plugin"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// Info describes the Gain plugin. Both class IDs are pinned: hosts store
// them in projects, so they must not change between releases.
var Info = plugin.Info{
	ID:            "com.vst3shim.examples.gain",
	Name:          "Gain",
	Version:       "1.0.0",
	Vendor:        "vst3shim Examples",
	Category:      vst3.SubCategoryFx,
	CID:           vst3.InlineUID(0x12345678, 0x9ABCDEF0, 0x11223344, 0x55667788),
	ControllerCID: vst3.InlineUID(0x87654321, 0xFEDCBA98, 0x88776655, 0x44332211),
}

// FactoryInfo is the vendor information reported by getFactoryInfo.
var FactoryInfo = factory.Info{
	Vendor: "vst3shim Examples",
	URL:    "https://github.com/justyntemme/vst3shim",
	Email:  "examples@vst3shim.dev",
}

// ModuleName and ModuleVersion identify the built module in moduleinfo output.
const (
	ModuleName    = "Gain"
	ModuleVersion = "1.0.0"
)

// Classes returns a registry holding the processor at index 0 and the
// controller at index 1.
func Classes() (*factory.Registry, error) {
	if err := Info.ValidateUID(); err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}
	r := factory.NewRegistry()
	if err := r.Add(factory.ProcessorClass(Info), factory.ControllerClass(Info)); err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}
	return r, nil
}

// NewFactory builds the module factory.
func NewFactory() (*factory.Factory, error) {
	classes, err := Classes()
	if err != nil {
		return nil, err
	}
	return factory.New(FactoryInfo, classes), nil
}
