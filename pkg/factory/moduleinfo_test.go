package factory

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

func TestModuleInfo(t *testing.T) {
	f := newTestFactory(t)

	mi, err := f.ModuleInfo("Gain", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "Gain", mi.Name)
	assert.Equal(t, "Test Vendor", mi.FactoryInfo.Vendor)
	assert.True(t, mi.FactoryInfo.Flags.Unicode)
	assert.False(t, mi.FactoryInfo.Flags.ClassesDiscardable)

	require.Len(t, mi.Classes, 2)
	assert.Equal(t, "123456789ABCDEF01122334455667788", mi.Classes[0].CID)
	assert.Equal(t, vst3.CategoryAudioEffect, mi.Classes[0].Category)
	assert.Equal(t, []string{"Fx"}, mi.Classes[0].SubCategories)
	assert.Equal(t, int32(vst3.ManyInstances), mi.Classes[0].Cardinality)
	assert.Equal(t, "Gain Controller", mi.Classes[1].Name)
}

func TestModuleInfoSubCategories(t *testing.T) {
	assert.Equal(t, []string{}, splitSubCategories(""))
	assert.Equal(t, []string{"Fx", "Dynamics"}, splitSubCategories(vst3.SubCategoryDynamics))
}

func TestModuleInfoJSON(t *testing.T) {
	mi, err := newTestFactory(t).ModuleInfo("Gain", "1.0.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mi.WriteJSON(&buf))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Contains(t, raw, "Factory Info")
	assert.Contains(t, buf.String(), `"E-Mail": "info@example.com"`)
	assert.Contains(t, buf.String(), `"Sub Categories"`)
}

func TestModuleInfoYAML(t *testing.T) {
	mi, err := newTestFactory(t).ModuleInfo("Gain", "1.0.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mi.WriteYAML(&buf))

	var back ModuleInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, mi, back)
}
