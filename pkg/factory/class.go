package factory

import (
	"golang.org/x/text/unicode/norm"

	"github.com/justyntemme/vst3shim/pkg/framework/plugin"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// ClassDescriptor describes one class the module can instantiate. The
// minimal query generation reports CID, Cardinality, Category and Name; the
// extended generations add the rest.
type ClassDescriptor struct {
	CID           vst3.TUID
	Cardinality   vst3.Cardinality
	Category      string
	Name          string
	ClassFlags    uint32
	SubCategories string
	Vendor        string
	Version       string
	SDKVersion    string
}

// ProcessorClass describes the audio processor class of a plugin.
func ProcessorClass(info plugin.Info) ClassDescriptor {
	return ClassDescriptor{
		CID:           info.UID(),
		Cardinality:   vst3.ManyInstances,
		Category:      vst3.CategoryAudioEffect,
		Name:          info.Name,
		ClassFlags:    vst3.ComponentDistributable,
		SubCategories: info.Category,
		Vendor:        info.Vendor,
		Version:       info.Version,
		SDKVersion:    vst3.SDKVersionString,
	}
}

// ControllerClass describes the edit controller class of a plugin. Its
// display name is the plugin name with " Controller" appended.
func ControllerClass(info plugin.Info) ClassDescriptor {
	return ClassDescriptor{
		CID:           info.ControllerUID(),
		Cardinality:   vst3.ManyInstances,
		Category:      vst3.CategoryComponentController,
		Name:          info.Name + " Controller",
		SubCategories: info.Category,
		Vendor:        info.Vendor,
		Version:       info.Version,
		SDKVersion:    vst3.SDKVersionString,
	}
}

// normalized fills defaults and puts every display string into NFC, so the
// bytes a host receives do not depend on how the source file was encoded.
func (d ClassDescriptor) normalized() ClassDescriptor {
	if d.Cardinality == 0 {
		d.Cardinality = vst3.ManyInstances
	}
	if d.SDKVersion == "" {
		d.SDKVersion = vst3.SDKVersionString
	}
	d.Category = norm.NFC.String(d.Category)
	d.Name = norm.NFC.String(d.Name)
	d.SubCategories = norm.NFC.String(d.SubCategories)
	d.Vendor = norm.NFC.String(d.Vendor)
	d.Version = norm.NFC.String(d.Version)
	d.SDKVersion = norm.NFC.String(d.SDKVersion)
	return d
}

// minimal returns the part of d the minimal query generation reports.
func (d ClassDescriptor) minimal() ClassDescriptor {
	return ClassDescriptor{
		CID:         d.CID,
		Cardinality: d.Cardinality,
		Category:    d.Category,
		Name:        d.Name,
	}
}
