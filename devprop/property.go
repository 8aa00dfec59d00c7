package devprop

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
)

// ErrShortData is returned by Value when the buffer of a fixed-size type
// holds fewer bytes than the type requires.
var ErrShortData = errors.New("devprop: property data too short for its type")

// Property is a property value as returned by the configuration manager. The
// raw bytes are kept so the value can be decoded again or inspected.
type Property struct {
	Key  Key
	Type Type
	Data []byte
}

// Text returns the value of a string property without its terminating NUL.
// ok is false for every other type.
func (p Property) Text() (s string, ok bool) {
	switch p.Type {
	case String, StringIndirect, SecurityDescriptorString:
		return decodeString(p.Data), true
	}
	return "", false
}

// Strings returns the values of a string list property.
func (p Property) Strings() ([]string, bool) {
	if p.Type != StringList {
		return nil, false
	}
	return SplitMultiString(BytesToUTF16(p.Data)), true
}

// Value decodes the property according to its type. Values of unknown or
// opaque types (decimal, security descriptors, anything unrecognized) are
// returned as a copy of the raw bytes.
//
// Scalar types decode to the matching Go type: integers to their sized
// int/uint, FLOAT and DOUBLE to float32/float64, BOOLEAN to bool, GUID to
// guid.GUID, FILETIME and DATE to time.Time, CURRENCY to float64, ERROR and
// NTSTATUS to uint32, DEVPROPKEY to Key and DEVPROPTYPE to Type. Arrays of
// scalars decode to []any, except BINARY which stays []byte.
func (p Property) Value() (any, error) {
	switch p.Type {
	case Empty, Null:
		return nil, nil
	case String, StringIndirect, SecurityDescriptorString:
		s, _ := p.Text()
		return s, nil
	case StringList:
		l, _ := p.Strings()
		return l, nil
	case Binary, SecurityDescriptor:
		return p.raw(), nil
	}

	base := p.Type.Base()
	size := fixedSize(base)
	if size == 0 || base == Decimal {
		return p.raw(), nil
	}

	switch p.Type.Modifier() {
	case 0:
		if len(p.Data) < size {
			return nil, errors.Wrapf(ErrShortData, "%s: %d bytes", p.Type, len(p.Data))
		}
		return decodeScalar(base, p.Data[:size]), nil
	case Array:
		if len(p.Data)%size != 0 {
			return nil, errors.Wrapf(ErrShortData, "%s: %d bytes", p.Type, len(p.Data))
		}
		values := make([]any, 0, len(p.Data)/size)
		for off := 0; off < len(p.Data); off += size {
			values = append(values, decodeScalar(base, p.Data[off:off+size]))
		}
		return values, nil
	}
	return p.raw(), nil
}

func (p Property) raw() []byte {
	b := make([]byte, len(p.Data))
	copy(b, p.Data)
	return b
}

// fileTimeEpoch is the number of 100ns intervals between 1601-01-01 and
// 1970-01-01.
const fileTimeEpoch = 116444736000000000

var oleEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// decodeScalar decodes a single value of base type t. b holds exactly
// fixedSize(t) bytes.
func decodeScalar(t Type, b []byte) any {
	le := binary.LittleEndian
	switch t {
	case SByte:
		return int8(b[0])
	case Byte:
		return b[0]
	case Bool:
		return b[0] != 0
	case Int16:
		return int16(le.Uint16(b))
	case Uint16:
		return le.Uint16(b)
	case Int32:
		return int32(le.Uint32(b))
	case Uint32:
		return le.Uint32(b)
	case Int64:
		return int64(le.Uint64(b))
	case Uint64:
		return le.Uint64(b)
	case Float:
		return math.Float32frombits(le.Uint32(b))
	case Double:
		return math.Float64frombits(le.Uint64(b))
	case Currency:
		return float64(int64(le.Uint64(b))) / 10000
	case Date:
		days := math.Float64frombits(le.Uint64(b))
		whole := math.Trunc(days)
		return oleEpoch.AddDate(0, 0, int(whole)).Add(time.Duration((days - whole) * float64(24*time.Hour)))
	case FileTime:
		// Split into seconds so dates outside 1678-2262 do not overflow.
		d := int64(le.Uint64(b)) - fileTimeEpoch
		return time.Unix(d/1e7, (d%1e7)*100).UTC()
	case GUID:
		var a [16]byte
		copy(a[:], b)
		return guid.FromWindowsArray(a)
	case Error, NTStatus:
		return le.Uint32(b)
	case PropertyType:
		return Type(le.Uint32(b))
	case PropertyKey:
		return decodeKey(b)
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
