package vst3

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TUID is the 16-byte identifier used for both interface IDs and class IDs.
// Two TUIDs name the same thing only if every byte matches.
type TUID [16]byte

// NilUID is the all-zero identifier. It never names a valid class.
var NilUID TUID

// InlineUID builds an identifier from the four 32-bit words of the SDK's
// INLINE_UID literal. Each word is laid out big-endian; on COM-compatible
// platforms the first two words are additionally reordered into GUID field
// order (see uid_windows.go).
func InlineUID(l1, l2, l3, l4 uint32) TUID {
	var id TUID
	binary.BigEndian.PutUint32(id[0:4], l1)
	binary.BigEndian.PutUint32(id[4:8], l2)
	binary.BigEndian.PutUint32(id[8:12], l3)
	binary.BigEndian.PutUint32(id[12:16], l4)
	if comCompatible {
		comSwap(&id)
	}
	return id
}

// Words returns the four INLINE_UID words of the identifier, undoing any
// platform byte reordering applied by InlineUID.
func (id TUID) Words() (l1, l2, l3, l4 uint32) {
	if comCompatible {
		comSwap(&id)
	}
	return binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint32(id[4:8]),
		binary.BigEndian.Uint32(id[8:12]),
		binary.BigEndian.Uint32(id[12:16])
}

// IsNil reports whether the identifier is all zeros.
func (id TUID) IsNil() bool {
	return id == NilUID
}

// Hex returns the 32 upper-case hex digits of the INLINE_UID words, the form
// used by moduleinfo.json and most host plugin caches.
func (id TUID) Hex() string {
	l1, l2, l3, l4 := id.Words()
	return fmt.Sprintf("%08X%08X%08X%08X", l1, l2, l3, l4)
}

// String returns the canonical dashed form of the INLINE_UID words.
func (id TUID) String() string {
	l1, l2, l3, l4 := id.Words()
	var raw [16]byte
	binary.BigEndian.PutUint32(raw[0:4], l1)
	binary.BigEndian.PutUint32(raw[4:8], l2)
	binary.BigEndian.PutUint32(raw[8:12], l3)
	binary.BigEndian.PutUint32(raw[12:16], l4)
	return strings.ToUpper(uuid.UUID(raw).String())
}

// ParseUID parses either the 32-digit hex form or the dashed UUID form and
// returns the identifier in platform byte order.
func ParseUID(s string) (TUID, error) {
	s = strings.TrimSpace(s)
	var raw [16]byte
	if len(s) == 32 {
		if _, err := hex.Decode(raw[:], []byte(s)); err != nil {
			return NilUID, fmt.Errorf("parse uid %q: %w", s, err)
		}
	} else {
		u, err := uuid.Parse(s)
		if err != nil {
			return NilUID, fmt.Errorf("parse uid %q: %w", s, err)
		}
		raw = u
	}
	return InlineUID(
		binary.BigEndian.Uint32(raw[0:4]),
		binary.BigEndian.Uint32(raw[4:8]),
		binary.BigEndian.Uint32(raw[8:12]),
		binary.BigEndian.Uint32(raw[12:16]),
	), nil
}

// MustParseUID is like ParseUID but panics on malformed input. Intended for
// package-level class ID literals.
func MustParseUID(s string) TUID {
	id, err := ParseUID(s)
	if err != nil {
		panic(err)
	}
	return id
}
