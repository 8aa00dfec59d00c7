package devprop

import "fmt"

// Property type masks.
const (
	BaseTypeMask     = 0x00000FFF // DEVPROP_MASK_TYPE
	TypeModifierMask = 0x0000F000 // DEVPROP_MASK_TYPEMOD
)

// Property type modifiers.
const (
	Array Type = 0x00001000 // DEVPROP_TYPEMOD_ARRAY
	List  Type = 0x00002000 // DEVPROP_TYPEMOD_LIST
)

// Property base types.
const (
	Empty                    Type = 0x00000000 // DEVPROP_TYPE_EMPTY
	Null                     Type = 0x00000001 // DEVPROP_TYPE_NULL
	SByte                    Type = 0x00000002 // DEVPROP_TYPE_SBYTE
	Byte                     Type = 0x00000003 // DEVPROP_TYPE_BYTE
	Int16                    Type = 0x00000004 // DEVPROP_TYPE_INT16
	Uint16                   Type = 0x00000005 // DEVPROP_TYPE_UINT16
	Int32                    Type = 0x00000006 // DEVPROP_TYPE_INT32
	Uint32                   Type = 0x00000007 // DEVPROP_TYPE_UINT32
	Int64                    Type = 0x00000008 // DEVPROP_TYPE_INT64
	Uint64                   Type = 0x00000009 // DEVPROP_TYPE_UINT64
	Float                    Type = 0x0000000A // DEVPROP_TYPE_FLOAT
	Double                   Type = 0x0000000B // DEVPROP_TYPE_DOUBLE
	Decimal                  Type = 0x0000000C // DEVPROP_TYPE_DECIMAL
	GUID                     Type = 0x0000000D // DEVPROP_TYPE_GUID
	Currency                 Type = 0x0000000E // DEVPROP_TYPE_CURRENCY
	Date                     Type = 0x0000000F // DEVPROP_TYPE_DATE
	FileTime                 Type = 0x00000010 // DEVPROP_TYPE_FILETIME
	Bool                     Type = 0x00000011 // DEVPROP_TYPE_BOOLEAN
	String                   Type = 0x00000012 // DEVPROP_TYPE_STRING
	SecurityDescriptor       Type = 0x00000013 // DEVPROP_TYPE_SECURITY_DESCRIPTOR
	SecurityDescriptorString Type = 0x00000014 // DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING
	PropertyKey              Type = 0x00000015 // DEVPROP_TYPE_DEVPROPKEY
	PropertyType             Type = 0x00000016 // DEVPROP_TYPE_DEVPROPTYPE
	Error                    Type = 0x00000017 // DEVPROP_TYPE_ERROR
	NTStatus                 Type = 0x00000018 // DEVPROP_TYPE_NTSTATUS
	StringIndirect           Type = 0x00000019 // DEVPROP_TYPE_STRING_INDIRECT
)

// Common composite types.
const (
	Binary     Type = Byte | Array  // DEVPROP_TYPE_BINARY
	StringList Type = String | List // DEVPROP_TYPE_STRING_LIST
)

// Type is a DEVPROPTYPE tag describing how a property buffer is laid out.
type Type uint32

// Base returns the base type of t.
func (t Type) Base() Type {
	return t & BaseTypeMask
}

// Modifier returns the type modifier of t.
func (t Type) Modifier() Type {
	return t & TypeModifierMask
}

var typeNames = map[Type]string{
	Empty:                    "EMPTY",
	Null:                     "NULL",
	SByte:                    "SBYTE",
	Byte:                     "BYTE",
	Int16:                    "INT16",
	Uint16:                   "UINT16",
	Int32:                    "INT32",
	Uint32:                   "UINT32",
	Int64:                    "INT64",
	Uint64:                   "UINT64",
	Float:                    "FLOAT",
	Double:                   "DOUBLE",
	Decimal:                  "DECIMAL",
	GUID:                     "GUID",
	Currency:                 "CURRENCY",
	Date:                     "DATE",
	FileTime:                 "FILETIME",
	Bool:                     "BOOLEAN",
	String:                   "STRING",
	SecurityDescriptor:       "SECURITY_DESCRIPTOR",
	SecurityDescriptorString: "SECURITY_DESCRIPTOR_STRING",
	PropertyKey:              "DEVPROPKEY",
	PropertyType:             "DEVPROPTYPE",
	Error:                    "ERROR",
	NTStatus:                 "NTSTATUS",
	StringIndirect:           "STRING_INDIRECT",
}

// String returns the DEVPROP_TYPE_ name of t without its prefix, e.g.
// "STRING_LIST" or "UINT32". Unknown tags are printed in hex.
func (t Type) String() string {
	switch t {
	case Binary:
		return "BINARY"
	case StringList:
		return "STRING_LIST"
	}
	name, ok := typeNames[t.Base()]
	if !ok {
		return fmt.Sprintf("0x%08X", uint32(t))
	}
	switch t.Modifier() {
	case 0:
		return name
	case Array:
		return name + "[]"
	case List:
		return name + "_LIST"
	}
	return fmt.Sprintf("0x%08X", uint32(t))
}

// fixedSize returns the encoded size in bytes of a single value of base type
// t, or 0 if the type has no fixed size.
func fixedSize(t Type) int {
	switch t {
	case SByte, Byte, Bool:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float, Error, NTStatus, PropertyType:
		return 4
	case Int64, Uint64, Double, FileTime, Currency, Date:
		return 8
	case GUID, Decimal:
		return 16
	case PropertyKey:
		return keySize
	}
	return 0
}
