// Package setupapi lists the device interfaces registered for an interface
// class, such as the printer or battery interface classes.
package setupapi

import (
	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
)

// Flags controlling what is included in the device information set built by SetupDiGetClassDevs
const (
	DIGCF_DEFAULT         = 0x00000001 // only valid with DIGCF_DEVICEINTERFACE
	DIGCF_PRESENT         = 0x00000002
	DIGCF_ALLCLASSES      = 0x00000004
	DIGCF_PROFILE         = 0x00000008
	DIGCF_DEVICEINTERFACE = 0x00000010
)

// Well known device interface classes.
var (
	GUID_DEVINTERFACE_PRINTER = guid.GUID{Data1: 0x28d78fad, Data2: 0x5a12, Data3: 0x11d1, Data4: [8]byte{0xae, 0x5b, 0x00, 0x00, 0xf8, 0x03, 0xa8, 0xc2}}
	GUID_DEVICE_BATTERY       = guid.GUID{Data1: 0x72631e54, Data2: 0x78a4, Data3: 0x11d0, Data4: [8]byte{0xbc, 0xf7, 0x00, 0xaa, 0x00, 0xb7, 0xb3, 0x2a}}
)

// DeviceInterface is one device interface of an interface class. Path can be
// passed to CreateFile to open the device; DevInst is the device node that
// exposes the interface.
type DeviceInterface struct {
	Path    string
	Class   guid.GUID
	DevInst cfgmgr.DevInst
}

func classDevsFlags(presentOnly bool) uint32 {
	flags := uint32(DIGCF_DEVICEINTERFACE)
	if presentOnly {
		flags |= DIGCF_PRESENT
	}
	return flags
}

// detailHeaderSize is the cbSize SP_DEVICE_INTERFACE_DETAIL_DATA_W expects:
// a DWORD and one WCHAR, padded on 64-bit.
func detailHeaderSize(ptrSize uintptr) uint32 {
	if ptrSize == 8 {
		return 8
	}
	return 6
}

// detailPath decodes DevicePath from a SP_DEVICE_INTERFACE_DETAIL_DATA_W
// buffer; the first two code units hold cbSize.
func detailPath(buf []uint16) string {
	if len(buf) <= 2 {
		return ""
	}
	return devprop.UTF16ToString(buf[2:])
}
