package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ProcessorClass(testInfo)))
	require.NoError(t, r.Add(ControllerClass(testInfo)))

	assert.Equal(t, int32(2), r.Count())

	first, ok := r.GetByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "Gain", first.Name)

	second, ok := r.GetByIndex(1)
	require.True(t, ok)
	assert.Equal(t, "Gain Controller", second.Name)

	_, ok = r.GetByIndex(2)
	assert.False(t, ok)
	_, ok = r.GetByIndex(-1)
	assert.False(t, ok)

	c, index, ok := r.Lookup(testInfo.ControllerCID)
	require.True(t, ok)
	assert.Equal(t, int32(1), index)
	assert.Equal(t, vst3.CategoryComponentController, c.Category)

	_, index, ok = r.Lookup(vst3.InlineUID(9, 9, 9, 9))
	assert.False(t, ok)
	assert.Equal(t, int32(-1), index)
}

func TestRegistryValidation(t *testing.T) {
	valid := ProcessorClass(testInfo)

	tests := []struct {
		name    string
		mutate  func(*ClassDescriptor)
		wantErr error
	}{
		{"NilCID", func(c *ClassDescriptor) { c.CID = vst3.NilUID }, ErrNilClassID},
		{"EmptyName", func(c *ClassDescriptor) { c.Name = "" }, ErrEmptyName},
		{"EmptyCategory", func(c *ClassDescriptor) { c.Category = "" }, ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := NewRegistry().Add(c)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ProcessorClass(testInfo)))

	dup := ControllerClass(testInfo)
	dup.CID = testInfo.CID
	err := r.Add(dup)
	assert.True(t, errors.Is(err, ErrDuplicateClass), "got %v", err)
	assert.Equal(t, int32(1), r.Count())

	// Duplicates inside a single call are caught too.
	err = NewRegistry().Add(ProcessorClass(testInfo), ProcessorClass(testInfo))
	assert.True(t, errors.Is(err, ErrDuplicateClass))
}

func TestRegistryFreeze(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ProcessorClass(testInfo)))
	assert.False(t, r.Frozen())

	r.Freeze()
	r.Freeze()
	assert.True(t, r.Frozen())

	err := r.Add(ControllerClass(testInfo))
	assert.True(t, errors.Is(err, ErrRegistryFrozen))
	assert.Equal(t, int32(1), r.Count())

	// New freezes the registry it is given.
	r2 := NewRegistry()
	New(Info{}, r2)
	assert.True(t, r2.Frozen())
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ClassDescriptor{
		CID:      vst3.InlineUID(1, 2, 3, 4),
		Category: vst3.CategoryAudioEffect,
		Name:     "Bare",
	}))

	c, ok := r.GetByIndex(0)
	require.True(t, ok)
	assert.Equal(t, vst3.ManyInstances, c.Cardinality)
	assert.Equal(t, vst3.SDKVersionString, c.SDKVersion)
}

func TestRegistryNormalizesToNFC(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ClassDescriptor{
		CID:      vst3.InlineUID(1, 2, 3, 4),
		Category: vst3.CategoryAudioEffect,
		Name:     "Re\u0301verb",
		Vendor:   "Cafe\u0301",
	}))

	c, ok := r.GetByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "R\u00e9verb", c.Name)
	assert.Equal(t, "Caf\u00e9", c.Vendor)
}

func TestRegistryAllIsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(ProcessorClass(testInfo)))
	r.Freeze()

	all := r.All()
	all[0].Name = "changed"

	c, _ := r.GetByIndex(0)
	assert.Equal(t, "Gain", c.Name)
}
