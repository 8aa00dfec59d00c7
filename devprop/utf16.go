package devprop

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

// BytesToUTF16 reinterprets a little-endian byte buffer as UTF-16 code
// units. A trailing odd byte is dropped.
func BytesToUTF16(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}

// decodeString decodes a NUL terminated UTF-16 buffer. Exactly one trailing
// NUL is removed; the buffer is not scanned for an earlier one.
func decodeString(b []byte) string {
	u := BytesToUTF16(b)
	if n := len(u); n > 0 && u[n-1] == 0 {
		u = u[:n-1]
	}
	return string(utf16.Decode(u))
}

// SplitMultiString splits a REG_MULTI_SZ style buffer: strings separated by
// single NULs and terminated by a double NUL. The terminator region is
// discarded, so no trailing empty entries are returned.
func SplitMultiString(u []uint16) []string {
	n := len(u)
	for n > 0 && u[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []string{}
	}
	return strings.Split(string(utf16.Decode(u[:n])), "\x00")
}

// UTF16ToString decodes a fixed-size UTF-16 buffer up to its first NUL.
func UTF16ToString(u []uint16) string {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}
