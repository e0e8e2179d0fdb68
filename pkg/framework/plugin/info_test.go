package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

func TestUIDGeneration(t *testing.T) {
	tests := []struct {
		name     string
		pluginID string
	}{
		{name: "Gain plugin", pluginID: "com.vst3shim.examples.gain"},
		{name: "New plugin", pluginID: "com.mycompany.newplugin"},
		{name: "Another new plugin", pluginID: "com.mycompany.anotherplugin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{ID: tt.pluginID}

			// Generate UID twice
			uid1 := info.UID()
			uid2 := info.UID()

			assert.Equal(t, uid1, uid2, "UID generation is not deterministic")
			assert.NotEqual(t, info.UID(), info.ControllerUID())
			assert.NoError(t, info.ValidateUID())
		})
	}
}

func TestUIDUniqueness(t *testing.T) {
	// Test that different plugin IDs generate different UIDs
	plugins := []string{
		"com.company1.plugin1",
		"com.company1.plugin2",
		"com.company2.plugin1",
		"com.different.name",
	}

	uids := make(map[vst3.TUID]string)

	for _, pluginID := range plugins {
		info := Info{ID: pluginID}
		for _, uid := range []vst3.TUID{info.UID(), info.ControllerUID()} {
			if existingID, exists := uids[uid]; exists {
				t.Errorf("UID collision between %s and %s", pluginID, existingID)
			}
			uids[uid] = pluginID
		}
	}
}

func TestUIDValidation(t *testing.T) {
	pinned := vst3.InlineUID(1, 2, 3, 4)

	tests := []struct {
		name    string
		info    Info
		wantErr error
	}{
		{
			name: "Valid plugin ID",
			info: Info{ID: "com.example.plugin"},
		},
		{
			name:    "Empty plugin ID",
			info:    Info{ID: ""},
			wantErr: ErrEmptyID,
		},
		{
			name: "Pinned CID without ID",
			info: Info{CID: pinned, ControllerCID: vst3.InlineUID(5, 6, 7, 8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.ValidateUID()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("Shared processor and controller UID", func(t *testing.T) {
		err := Info{ID: "x", CID: pinned, ControllerCID: pinned}.ValidateUID()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "share UID")
	})
}

func TestPinnedUIDsWin(t *testing.T) {
	// Published identifiers must survive any change to derivation.
	cid := vst3.InlineUID(0x12345678, 0x9ABCDEF0, 0x11223344, 0x55667788)
	ctrl := vst3.InlineUID(0x87654321, 0xFEDCBA98, 0x88776655, 0x44332211)

	info := Info{ID: "com.vst3shim.examples.gain", CID: cid, ControllerCID: ctrl}
	assert.Equal(t, cid, info.UID())
	assert.Equal(t, ctrl, info.ControllerUID())
}

func TestDerivedUIDStable(t *testing.T) {
	// Derived identifiers are part of the compatibility contract too: this
	// value must not change between releases.
	info := Info{ID: "com.vst3shim.examples.gain"}
	first := info.UID().Hex()
	assert.Len(t, first, 32)
	assert.Equal(t, first, Info{ID: "com.vst3shim.examples.gain"}.UID().Hex())
}
