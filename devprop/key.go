package devprop

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
)

// keySize is the size of a DEVPROPKEY in memory.
const keySize = 20

// Key identifies a device or class property. Its layout matches DEVPROPKEY
// so a []Key can be handed to the configuration manager as a key buffer.
type Key struct {
	FmtID guid.GUID
	PID   uint32
}

// ParseKey parses a key in the form "{fmtid} pid" or "fmtid pid", as
// produced by Key.String for keys without a known name.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Key{}, errors.Errorf("invalid property key %q", s)
	}
	id, err := ParseGUID(fields[0])
	if err != nil {
		return Key{}, errors.Wrapf(err, "invalid property key %q", s)
	}
	pid, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Key{}, errors.Wrapf(err, "invalid property key %q", s)
	}
	return Key{FmtID: id, PID: uint32(pid)}, nil
}

// MustParseKey is like ParseKey but panics on error. It is meant for static
// key tables.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseGUID parses a GUID with or without surrounding braces.
func ParseGUID(s string) (guid.GUID, error) {
	return guid.FromString(strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}"))
}

// FormatGUID formats g the way the configuration manager prints class
// identifiers: upper case, in braces.
func FormatGUID(g guid.GUID) string {
	return "{" + strings.ToUpper(g.String()) + "}"
}

// Name returns the canonical name of k if it is a well known key.
func (k Key) Name() string {
	return knownKeys[k]
}

// String returns the canonical name of k, or "{fmtid} pid".
func (k Key) String() string {
	if name := k.Name(); name != "" {
		return name
	}
	return FormatGUID(k.FmtID) + " " + strconv.FormatUint(uint64(k.PID), 10)
}

func decodeKey(b []byte) Key {
	var a [16]byte
	copy(a[:], b[:16])
	return Key{
		FmtID: guid.FromWindowsArray(a),
		PID:   binary.LittleEndian.Uint32(b[16:keySize]),
	}
}
