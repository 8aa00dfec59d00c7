// adapt cfgmgr32 Functions
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

//go:build windows

package cfgmgr

// reference: https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/

import (
	"unsafe"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
	"golang.org/x/sys/windows"
)

var (
	cfgmgr32                 = windows.NewLazySystemDLL("cfgmgr32.dll")
	cmEnumerateEnumeratorsW  = cfgmgr32.NewProc("CM_Enumerate_EnumeratorsW")
	cmEnumerateClasses       = cfgmgr32.NewProc("CM_Enumerate_Classes")
	cmGetClassPropertyKeys   = cfgmgr32.NewProc("CM_Get_Class_Property_Keys")
	cmGetClassPropertyW      = cfgmgr32.NewProc("CM_Get_Class_PropertyW")
	cmGetDeviceIDListSizeW   = cfgmgr32.NewProc("CM_Get_Device_ID_List_SizeW")
	cmGetDeviceIDListW       = cfgmgr32.NewProc("CM_Get_Device_ID_ListW")
	cmLocateDevNodeW         = cfgmgr32.NewProc("CM_Locate_DevNodeW")
	cmGetDevNodePropertyKeys = cfgmgr32.NewProc("CM_Get_DevNode_Property_Keys")
	cmGetDevNodePropertyW    = cfgmgr32.NewProc("CM_Get_DevNode_PropertyW")
)

type systemService struct{}

// System returns the Service backed by cfgmgr32.dll.
func System() Service {
	return systemService{}
}

// first returns a pointer to the first element of b, or nil for an empty
// buffer so the call sees a NULL pointer.
func first[T any](b []T) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// optString converts s for a PCWSTR argument; "" becomes NULL.
func optString(s string) (*uint16, bool) {
	if s == "" {
		return nil, true
	}
	p, err := windows.UTF16PtrFromString(s)
	return p, err == nil
}

func (systemService) EnumerateEnumerators(index uint32, buf []uint16, length *uint32) Result {
	r1, _, _ := cmEnumerateEnumeratorsW.Call(uintptr(index), uintptr(first(buf)), uintptr(unsafe.Pointer(length)), 0)
	return Result(r1)
}

func (systemService) EnumerateClasses(index uint32, class *guid.GUID, flags uint32) Result {
	r1, _, _ := cmEnumerateClasses.Call(uintptr(index), uintptr(unsafe.Pointer(class)), uintptr(flags))
	return Result(r1)
}

func (systemService) GetClassPropertyKeys(class *guid.GUID, keys []devprop.Key, count *uint32, flags uint32) Result {
	r1, _, _ := cmGetClassPropertyKeys.Call(uintptr(unsafe.Pointer(class)), uintptr(first(keys)), uintptr(unsafe.Pointer(count)), uintptr(flags))
	return Result(r1)
}

func (systemService) GetClassProperty(class *guid.GUID, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result {
	r1, _, _ := cmGetClassPropertyW.Call(
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(typ)),
		uintptr(first(buf)),
		uintptr(unsafe.Pointer(size)),
		uintptr(flags))
	return Result(r1)
}

func (systemService) GetDeviceIDListSize(length *uint32, filter string, flags uint32) Result {
	f, ok := optString(filter)
	if !ok {
		return CR_INVALID_DATA
	}
	r1, _, _ := cmGetDeviceIDListSizeW.Call(uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(f)), uintptr(flags))
	return Result(r1)
}

func (systemService) GetDeviceIDList(filter string, buf []uint16, flags uint32) Result {
	f, ok := optString(filter)
	if !ok {
		return CR_INVALID_DATA
	}
	r1, _, _ := cmGetDeviceIDListW.Call(uintptr(unsafe.Pointer(f)), uintptr(first(buf)), uintptr(len(buf)), uintptr(flags))
	return Result(r1)
}

func (systemService) LocateDevNode(inst *DevInst, id string, flags LocateFlag) Result {
	p, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return CR_INVALID_DEVICE_ID
	}
	r1, _, _ := cmLocateDevNodeW.Call(uintptr(unsafe.Pointer(inst)), uintptr(unsafe.Pointer(p)), uintptr(flags))
	return Result(r1)
}

func (systemService) GetDevNodePropertyKeys(inst DevInst, keys []devprop.Key, count *uint32, flags uint32) Result {
	r1, _, _ := cmGetDevNodePropertyKeys.Call(uintptr(inst), uintptr(first(keys)), uintptr(unsafe.Pointer(count)), uintptr(flags))
	return Result(r1)
}

func (systemService) GetDevNodeProperty(inst DevInst, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result {
	r1, _, _ := cmGetDevNodePropertyW.Call(
		uintptr(inst),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(typ)),
		uintptr(first(buf)),
		uintptr(unsafe.Pointer(size)),
		uintptr(flags))
	return Result(r1)
}
