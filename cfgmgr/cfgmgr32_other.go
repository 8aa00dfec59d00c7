//go:build !windows

package cfgmgr

import (
	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
)

// unsupportedService answers every call with CR_CALL_NOT_IMPLEMENTED.
type unsupportedService struct{}

// System returns a Service that fails every call: the configuration manager
// only exists on Windows.
func System() Service {
	return unsupportedService{}
}

func (unsupportedService) EnumerateEnumerators(uint32, []uint16, *uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) EnumerateClasses(uint32, *guid.GUID, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetClassPropertyKeys(*guid.GUID, []devprop.Key, *uint32, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetClassProperty(*guid.GUID, *devprop.Key, *devprop.Type, []byte, *uint32, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetDeviceIDListSize(*uint32, string, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetDeviceIDList(string, []uint16, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) LocateDevNode(*DevInst, string, LocateFlag) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetDevNodePropertyKeys(DevInst, []devprop.Key, *uint32, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}

func (unsupportedService) GetDevNodeProperty(DevInst, *devprop.Key, *devprop.Type, []byte, *uint32, uint32) Result {
	return CR_CALL_NOT_IMPLEMENTED
}
