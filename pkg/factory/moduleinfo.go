package factory

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// ModuleInfo is the description of a module that VST3 bundles ship as
// Contents/Resources/moduleinfo.json, letting hosts scan a plugin without
// loading it.
type ModuleInfo struct {
	Name        string            `json:"Name" yaml:"Name"`
	Version     string            `json:"Version" yaml:"Version"`
	FactoryInfo ModuleFactoryInfo `json:"Factory Info" yaml:"Factory Info"`
	Classes     []ModuleClass     `json:"Classes" yaml:"Classes"`
}

// ModuleFactoryInfo is the "Factory Info" object of moduleinfo.json.
type ModuleFactoryInfo struct {
	Vendor string             `json:"Vendor" yaml:"Vendor"`
	URL    string             `json:"URL" yaml:"URL"`
	Email  string             `json:"E-Mail" yaml:"E-Mail"`
	Flags  ModuleFactoryFlags `json:"Flags" yaml:"Flags"`
}

// ModuleFactoryFlags spells out the PFactoryInfo flag bits.
type ModuleFactoryFlags struct {
	Unicode                 bool `json:"Unicode" yaml:"Unicode"`
	ClassesDiscardable      bool `json:"Classes Discardable" yaml:"Classes Discardable"`
	LicenseCheck            bool `json:"License Check" yaml:"License Check"`
	ComponentNonDiscardable bool `json:"Component Non Discardable" yaml:"Component Non Discardable"`
}

// ModuleClass is one entry of the "Classes" array.
type ModuleClass struct {
	CID           string   `json:"CID" yaml:"CID"`
	Category      string   `json:"Category" yaml:"Category"`
	Name          string   `json:"Name" yaml:"Name"`
	Vendor        string   `json:"Vendor" yaml:"Vendor"`
	Version       string   `json:"Version" yaml:"Version"`
	SDKVersion    string   `json:"SDKVersion" yaml:"SDKVersion"`
	SubCategories []string `json:"Sub Categories" yaml:"Sub Categories"`
	ClassFlags    uint32   `json:"Class Flags" yaml:"Class Flags"`
	Cardinality   int32    `json:"Cardinality" yaml:"Cardinality"`
}

// ModuleInfo describes f. Every value is read back through the same
// records a host receives, so the file cannot disagree with the binary.
func (f *Factory) ModuleInfo(name, version string) (ModuleInfo, error) {
	var rec vst3.PFactoryInfo
	if res := f.GetFactoryInfo(&rec); !res.OK() {
		return ModuleInfo{}, fmt.Errorf("getFactoryInfo: %s", res)
	}
	info := DecodeFactoryInfo(&rec)

	mi := ModuleInfo{
		Name:    name,
		Version: version,
		FactoryInfo: ModuleFactoryInfo{
			Vendor: info.Vendor,
			URL:    info.URL,
			Email:  info.Email,
			Flags: ModuleFactoryFlags{
				Unicode:                 info.Flags&vst3.FactoryUnicode != 0,
				ClassesDiscardable:      info.Flags&vst3.FactoryClassesDiscardable != 0,
				LicenseCheck:            info.Flags&vst3.FactoryLicenseCheck != 0,
				ComponentNonDiscardable: info.Flags&vst3.FactoryComponentNonDiscardable != 0,
			},
		},
		Classes: make([]ModuleClass, 0, f.CountClasses()),
	}

	g := Extended
	if mi.FactoryInfo.Flags.Unicode {
		g = ExtendedWide
	}
	for i := int32(0); i < f.CountClasses(); i++ {
		c, res := f.ClassInfoAt(i, g)
		if !res.OK() {
			return ModuleInfo{}, fmt.Errorf("%s(%d): %s", g, i, res)
		}
		mi.Classes = append(mi.Classes, ModuleClass{
			CID:           c.CID.Hex(),
			Category:      c.Category,
			Name:          c.Name,
			Vendor:        c.Vendor,
			Version:       c.Version,
			SDKVersion:    c.SDKVersion,
			SubCategories: splitSubCategories(c.SubCategories),
			ClassFlags:    c.ClassFlags,
			Cardinality:   int32(c.Cardinality),
		})
	}
	return mi, nil
}

func splitSubCategories(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "|")
}

// WriteJSON writes mi as indented JSON.
func (mi ModuleInfo) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mi)
}

// WriteYAML writes mi as YAML.
func (mi ModuleInfo) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(mi); err != nil {
		return err
	}
	return enc.Close()
}
