// Package plugin describes a plugin to the factory: its identity, display
// metadata and the class identifiers of its processor and controller.
package plugin

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// Errors returned by ValidateUID.
var (
	ErrEmptyID = errors.New("plugin ID is empty")
	ErrNilUID  = errors.New("plugin UID is all zeros")
)

// uidNamespace scopes derived class IDs so they cannot collide with UUIDs
// generated for unrelated purposes from the same name.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/justyntemme/vst3shim/classes"))

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Sub-category string (e.g., "Fx", "Fx|Dynamics")

	// CID pins the processor class identifier. Once a class has shipped its
	// identifier must never change, so published plugins should set this
	// explicitly rather than rely on derivation.
	CID vst3.TUID
	// ControllerCID pins the controller class identifier.
	ControllerCID vst3.TUID
}

// UID returns the processor class identifier: the pinned CID if set,
// otherwise a name-based (SHA-1) UUID derived from ID. The result is
// deterministic for a given ID.
func (i Info) UID() vst3.TUID {
	if !i.CID.IsNil() {
		return i.CID
	}
	return deriveUID(i.ID)
}

// ControllerUID returns the controller class identifier, pinned or derived
// from ID the same way as UID but in a separate name space.
func (i Info) ControllerUID() vst3.TUID {
	if !i.ControllerCID.IsNil() {
		return i.ControllerCID
	}
	return deriveUID(i.ID + "#controller")
}

// ValidateUID checks that the plugin can produce usable class identifiers.
func (i Info) ValidateUID() error {
	if i.ID == "" && i.CID.IsNil() {
		return ErrEmptyID
	}
	if i.UID().IsNil() {
		return fmt.Errorf("%s: %w", i.ID, ErrNilUID)
	}
	if i.UID() == i.ControllerUID() {
		return fmt.Errorf("%s: processor and controller share UID %s", i.ID, i.UID())
	}
	return nil
}

func deriveUID(id string) vst3.TUID {
	u := uuid.NewSHA1(uidNamespace, []byte(id))
	uid, err := vst3.ParseUID(u.String())
	if err != nil {
		// uuid.UUID.String always yields a parseable form.
		panic(err)
	}
	return uid
}
