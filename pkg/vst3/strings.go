package vst3

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// WriteNarrow copies s into dst as UTF-8 and null-terminates it. At most
// len(dst)-1 bytes of text are written, so the terminator always fits and
// nothing past dst is touched. Text that cannot be carried by a
// null-terminated UTF-8 buffer (invalid UTF-8 or an embedded NUL) is written
// as the empty string. A zero-length dst is left alone.
func WriteNarrow(dst []byte, s string) {
	if len(dst) == 0 {
		return
	}
	if !representable(s) {
		s = ""
	}
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
}

// WriteWide copies s into dst as UTF-16 code units and null-terminates it,
// with the same truncation and substitution rules as WriteNarrow. Truncation
// counts code units, so a surrogate pair may be cut in half at the limit.
func WriteWide(dst []uint16, s string) {
	if len(dst) == 0 {
		return
	}
	if !representable(s) {
		s = ""
	}
	limit := len(dst) - 1
	n := 0
	for _, r := range s {
		if n == limit {
			break
		}
		if utf16.RuneLen(r) == 2 {
			hi, lo := utf16.EncodeRune(r)
			dst[n] = uint16(hi)
			n++
			if n == limit {
				break
			}
			dst[n] = uint16(lo)
		} else {
			dst[n] = uint16(r)
		}
		n++
	}
	dst[n] = 0
}

// ReadNarrow returns the text in src up to the first NUL, or all of src if it
// is not terminated.
func ReadNarrow(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return string(src)
}

// ReadWide decodes the UTF-16 text in src up to the first NUL.
func ReadWide(src []uint16) string {
	for i, u := range src {
		if u == 0 {
			src = src[:i]
			break
		}
	}
	return string(utf16.Decode(src))
}

func representable(s string) bool {
	return utf8.ValidString(s) && strings.IndexByte(s, 0) < 0
}
