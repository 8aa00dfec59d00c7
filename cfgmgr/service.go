package cfgmgr

import (
	"fmt"
	"strings"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
)

const MAX_DEVICE_ID_LEN = 200

// Flags for CM_Enumerate_Classes and the class property functions.
const (
	CM_ENUMERATE_CLASSES_INSTALLER = 0x00000000
	CM_ENUMERATE_CLASSES_INTERFACE = 0x00000001

	CM_CLASS_PROPERTY_INSTALLER = 0x00000000
	CM_CLASS_PROPERTY_INTERFACE = 0x00000001
)

// Flags for CM_Get_Device_ID_List_Size and CM_Get_Device_ID_List.
const (
	CM_GETIDLIST_FILTER_NONE       = 0x00000000
	CM_GETIDLIST_FILTER_ENUMERATOR = 0x00000001
	CM_GETIDLIST_FILTER_PRESENT    = 0x00000100
	CM_GETIDLIST_FILTER_CLASS      = 0x00000200
)

// DevInst is a device instance handle. It is only valid for the current
// generation of the device tree.
type DevInst uint32

// LocateFlag controls how CM_Locate_DevNode resolves a device id.
type LocateFlag uint32

const (
	LocateNormal       LocateFlag = 0x00000000 // CM_LOCATE_DEVNODE_NORMAL
	LocatePhantom      LocateFlag = 0x00000001 // CM_LOCATE_DEVNODE_PHANTOM
	LocateCancelRemove LocateFlag = 0x00000002 // CM_LOCATE_DEVNODE_CANCELREMOVE
	LocateNoValidation LocateFlag = 0x00000004 // CM_LOCATE_DEVNODE_NOVALIDATION
)

func (f LocateFlag) String() string {
	if f == LocateNormal {
		return "NORMAL"
	}
	var names []string
	for _, b := range []struct {
		flag LocateFlag
		name string
	}{
		{LocatePhantom, "PHANTOM"},
		{LocateCancelRemove, "CANCELREMOVE"},
		{LocateNoValidation, "NOVALIDATION"},
	} {
		if f&b.flag != 0 {
			names = append(names, b.name)
			f &^= b.flag
		}
	}
	if f != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(f)))
	}
	return strings.Join(names, "|")
}

// Service is the set of configuration manager primitives the package is
// built on. Each method mirrors one cfgmgr32 function.
//
// Buffers follow the C conventions: a nil or empty slice is passed as a NULL
// pointer, and a size or count pointer holds the capacity of the buffer on
// input and the required or written size on output. Sizes are in bytes for
// property buffers, in keys for key buffers and in UTF-16 code units for
// device id buffers.
type Service interface {
	// CM_Enumerate_EnumeratorsW
	EnumerateEnumerators(index uint32, buf []uint16, length *uint32) Result
	// CM_Enumerate_Classes
	EnumerateClasses(index uint32, class *guid.GUID, flags uint32) Result
	// CM_Get_Class_Property_Keys
	GetClassPropertyKeys(class *guid.GUID, keys []devprop.Key, count *uint32, flags uint32) Result
	// CM_Get_Class_PropertyW
	GetClassProperty(class *guid.GUID, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result
	// CM_Get_Device_ID_List_SizeW
	GetDeviceIDListSize(length *uint32, filter string, flags uint32) Result
	// CM_Get_Device_ID_ListW
	GetDeviceIDList(filter string, buf []uint16, flags uint32) Result
	// CM_Locate_DevNodeW
	LocateDevNode(inst *DevInst, id string, flags LocateFlag) Result
	// CM_Get_DevNode_Property_Keys
	GetDevNodePropertyKeys(inst DevInst, keys []devprop.Key, count *uint32, flags uint32) Result
	// CM_Get_DevNode_PropertyW
	GetDevNodeProperty(inst DevInst, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result
}
