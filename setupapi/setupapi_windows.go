// adapt setupapi Functions
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

package setupapi

// reference: https://github.com/distatus/battery battery_windows.go

import (
	"iter"
	"unsafe"

	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	setupapi                         = windows.NewLazySystemDLL("setupapi.dll")
	setupDiGetClassDevsW             = setupapi.NewProc("SetupDiGetClassDevsW")
	setupDiEnumDeviceInterfaces      = setupapi.NewProc("SetupDiEnumDeviceInterfaces")
	setupDiGetDeviceInterfaceDetailW = setupapi.NewProc("SetupDiGetDeviceInterfaceDetailW")
	setupDiDestroyDeviceInfoList     = setupapi.NewProc("SetupDiDestroyDeviceInfoList")
)

type spDeviceInterfaceData struct {
	cbSize             uint32
	InterfaceClassGuid guid.GUID
	Flags              uint32
	Reserved           uintptr
}

type spDevInfoData struct {
	cbSize    uint32
	ClassGuid guid.GUID
	DevInst   uint32
	Reserved  uintptr
}

// devInfoSet is an HDEVINFO holding the interfaces of one class.
type devInfoSet struct {
	h     uintptr
	class guid.GUID
}

func getClassDevs(class guid.GUID, flags uint32) (*devInfoSet, error) {
	s := &devInfoSet{class: class}
	r1, _, err := setupDiGetClassDevsW.Call(uintptr(unsafe.Pointer(&s.class)), 0, 0, uintptr(flags))
	if r1 == ^uintptr(0) { // INVALID_HANDLE_VALUE
		return nil, errors.Wrap(err, "SetupDiGetClassDevsW")
	}
	s.h = r1
	return s, nil
}

func (s *devInfoSet) destroy() error {
	r1, _, err := setupDiDestroyDeviceInfoList.Call(s.h)
	if r1 == 0 { // BOOL
		return errors.Wrap(err, "SetupDiDestroyDeviceInfoList")
	}
	s.h = 0
	return nil
}

// enum returns the interface at idx; ok is false past the last one.
func (s *devInfoSet) enum(idx uint32) (di DeviceInterface, ok bool, err error) {
	var did spDeviceInterfaceData
	did.cbSize = uint32(unsafe.Sizeof(did))
	r1, _, err := setupDiEnumDeviceInterfaces.Call(s.h, 0, uintptr(unsafe.Pointer(&s.class)), uintptr(idx), uintptr(unsafe.Pointer(&did)))
	if r1 == 0 {
		if err == windows.ERROR_NO_MORE_ITEMS {
			return di, false, nil
		}
		return di, false, errors.Wrapf(err, "SetupDiEnumDeviceInterfaces(%d)", idx)
	}

	var cbRequired uint32
	_, _, err = setupDiGetDeviceInterfaceDetailW.Call(s.h, uintptr(unsafe.Pointer(&did)), 0, 0, uintptr(unsafe.Pointer(&cbRequired)), 0)
	if err != windows.ERROR_INSUFFICIENT_BUFFER {
		return di, false, errors.Wrap(err, "SetupDiGetDeviceInterfaceDetailW")
	}

	detail := make([]uint16, (cbRequired+1)/2)
	*(*uint32)(unsafe.Pointer(&detail[0])) = detailHeaderSize(unsafe.Sizeof(uintptr(0)))
	var devInfo spDevInfoData
	devInfo.cbSize = uint32(unsafe.Sizeof(devInfo))
	r1, _, err = setupDiGetDeviceInterfaceDetailW.Call(s.h, uintptr(unsafe.Pointer(&did)), uintptr(unsafe.Pointer(&detail[0])), uintptr(cbRequired), uintptr(unsafe.Pointer(&cbRequired)), uintptr(unsafe.Pointer(&devInfo)))
	if r1 == 0 {
		return di, false, errors.Wrap(err, "SetupDiGetDeviceInterfaceDetailW")
	}
	return DeviceInterface{
		Path:    detailPath(detail),
		Class:   did.InterfaceClassGuid,
		DevInst: cfgmgr.DevInst(devInfo.DevInst),
	}, true, nil
}

// Interfaces lists the device interfaces of class. With presentOnly,
// interfaces of devices that are not present are left out.
func Interfaces(class guid.GUID, presentOnly bool) iter.Seq2[DeviceInterface, error] {
	return func(yield func(DeviceInterface, error) bool) {
		s, err := getClassDevs(class, classDevsFlags(presentOnly))
		if err != nil {
			yield(DeviceInterface{}, err)
			return
		}
		defer s.destroy()

		for idx := uint32(0); ; idx++ {
			di, ok, err := s.enum(idx)
			if err != nil {
				yield(DeviceInterface{}, err)
				return
			}
			if !ok || !yield(di, nil) {
				return
			}
		}
	}
}
