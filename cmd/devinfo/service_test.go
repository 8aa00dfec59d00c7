package main

import (
	"encoding/binary"
	"fmt"
	"testing"
	"unicode/utf16"

	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/stretchr/testify/require"
)

// stubProp is a property held by stubService. A non-zero fail is returned
// once a buffer is passed, after the size query succeeded.
type stubProp struct {
	key  devprop.Key
	typ  devprop.Type
	data []byte
	fail cfgmgr.Result
}

func textProp(key devprop.Key, s string) stubProp {
	return stubProp{key: key, typ: devprop.String, data: utf16LE(s + "\x00")}
}

func utf16LE(s string) []byte {
	u := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	return b
}

// stubService is a scripted cfgmgr.Service. Anything it was not given is
// reported as absent.
type stubService struct {
	enumerators []string
	classes     map[cfgmgr.Flavor][]guid.GUID
	classProps  map[guid.GUID][]stubProp
	idLists     map[string][]string
	devices     map[string]cfgmgr.DevInst
	devProps    map[cfgmgr.DevInst][]stubProp
}

func idList(filter string, flags uint32) string {
	return fmt.Sprintf("%s|%#x", filter, flags)
}

const (
	batteryID = `ACPI\PNP0C0A\1`
	hubID     = `USB\ROOT_HUB30\4&1A2B3C4D&0&0`
)

// newMachine scripts two setup classes, one interface class and two
// devices: a battery and a USB root hub.
func newMachine(t *testing.T) *stubService {
	t.Helper()
	battery, err := guid.FromString("72631e54-78a4-11d0-bcf7-00aa00b7b32a")
	require.NoError(t, err)
	usb, err := guid.FromString("36fc9e60-c465-11cf-8056-444553540000")
	require.NoError(t, err)
	hid, err := guid.FromString("4d1e55b2-f16f-11cf-88cb-001111000030")
	require.NoError(t, err)

	s := &stubService{
		enumerators: []string{"ACPI", "ROOT", "USB"},
		classes: map[cfgmgr.Flavor][]guid.GUID{
			cfgmgr.SetupClass:     {usb, battery},
			cfgmgr.InterfaceClass: {hid},
		},
		classProps: map[guid.GUID][]stubProp{
			battery: {
				textProp(devprop.KeyName, "Batteries"),
				{key: devprop.KeyClassIcon, typ: devprop.String, data: utf16LE("-1\x00"), fail: cfgmgr.CR_NO_SUCH_VALUE},
				textProp(devprop.KeyClassName, "Battery"),
			},
			usb: {
				textProp(devprop.KeyName, "Universal Serial Bus controllers"),
				textProp(devprop.KeyClassName, "USB"),
			},
		},
		devices: map[string]cfgmgr.DevInst{
			batteryID: 5,
			hubID:     8,
		},
		devProps: map[cfgmgr.DevInst][]stubProp{
			5: {
				textProp(devprop.KeyName, "Microsoft ACPI-Compliant Control Method Battery"),
				textProp(devprop.KeyDeviceDesc, "Battery"),
				textProp(devprop.KeyInstanceID, batteryID),
				{key: devprop.KeyProblemCode, typ: devprop.Uint32, data: []byte{0, 0, 0, 0}},
			},
			8: {
				textProp(devprop.KeyName, "USB Root Hub (USB 3.0)"),
				textProp(devprop.KeyDeviceDesc, "USB Root Hub (USB 3.0)"),
			},
		},
	}

	batteryClass := "{72631E54-78A4-11D0-BCF7-00AA00B7B32A}"
	s.idLists = map[string][]string{}
	s.idLists[idList("", cfgmgr.CM_GETIDLIST_FILTER_NONE)] = []string{batteryID, hubID}
	s.idLists[idList("USB", cfgmgr.CM_GETIDLIST_FILTER_ENUMERATOR)] = []string{hubID}
	s.idLists[idList(batteryClass, cfgmgr.CM_GETIDLIST_FILTER_CLASS)] = []string{batteryID}
	s.idLists[idList(batteryClass, cfgmgr.CM_GETIDLIST_FILTER_CLASS|cfgmgr.CM_GETIDLIST_FILTER_PRESENT)] = []string{batteryID}
	return s
}

func (s *stubService) EnumerateEnumerators(index uint32, buf []uint16, length *uint32) cfgmgr.Result {
	if int(index) >= len(s.enumerators) {
		return cfgmgr.CR_NO_SUCH_VALUE
	}
	u := append(utf16.Encode([]rune(s.enumerators[index])), 0)
	copy(buf, u)
	*length = uint32(len(u))
	return cfgmgr.CR_SUCCESS
}

func (s *stubService) EnumerateClasses(index uint32, class *guid.GUID, flags uint32) cfgmgr.Result {
	flavor := cfgmgr.SetupClass
	if flags == cfgmgr.CM_ENUMERATE_CLASSES_INTERFACE {
		flavor = cfgmgr.InterfaceClass
	}
	list := s.classes[flavor]
	if int(index) >= len(list) {
		return cfgmgr.CR_NO_SUCH_VALUE
	}
	*class = list[index]
	return cfgmgr.CR_SUCCESS
}

func stubKeys(props []stubProp, keys []devprop.Key, count *uint32) cfgmgr.Result {
	need := uint32(len(props))
	if need == 0 {
		*count = 0
		return cfgmgr.CR_SUCCESS
	}
	if uint32(len(keys)) < need {
		*count = need
		return cfgmgr.CR_BUFFER_SMALL
	}
	for i, p := range props {
		keys[i] = p.key
	}
	*count = need
	return cfgmgr.CR_SUCCESS
}

func stubGet(props []stubProp, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32) cfgmgr.Result {
	for _, p := range props {
		if p.key != *key {
			continue
		}
		*typ = p.typ
		*size = uint32(len(p.data))
		if buf == nil || len(buf) < len(p.data) {
			return cfgmgr.CR_BUFFER_SMALL
		}
		if p.fail != 0 {
			return p.fail
		}
		copy(buf, p.data)
		return cfgmgr.CR_SUCCESS
	}
	return cfgmgr.CR_NO_SUCH_VALUE
}

func (s *stubService) GetClassPropertyKeys(class *guid.GUID, keys []devprop.Key, count *uint32, flags uint32) cfgmgr.Result {
	return stubKeys(s.classProps[*class], keys, count)
}

func (s *stubService) GetClassProperty(class *guid.GUID, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) cfgmgr.Result {
	return stubGet(s.classProps[*class], key, typ, buf, size)
}

func (s *stubService) GetDeviceIDListSize(length *uint32, filter string, flags uint32) cfgmgr.Result {
	ids, ok := s.idLists[idList(filter, flags)]
	if !ok {
		*length = 0
		return cfgmgr.CR_SUCCESS
	}
	*length = uint32(len(multiString16(ids)))
	return cfgmgr.CR_SUCCESS
}

func (s *stubService) GetDeviceIDList(filter string, buf []uint16, flags uint32) cfgmgr.Result {
	u := multiString16(s.idLists[idList(filter, flags)])
	if len(buf) < len(u) {
		return cfgmgr.CR_BUFFER_SMALL
	}
	copy(buf, u)
	return cfgmgr.CR_SUCCESS
}

func multiString16(ids []string) []uint16 {
	var u []uint16
	for _, id := range ids {
		u = append(u, utf16.Encode([]rune(id))...)
		u = append(u, 0)
	}
	return append(u, 0)
}

func (s *stubService) LocateDevNode(inst *cfgmgr.DevInst, id string, flags cfgmgr.LocateFlag) cfgmgr.Result {
	d, ok := s.devices[id]
	if !ok {
		return cfgmgr.CR_NO_SUCH_DEVNODE
	}
	*inst = d
	return cfgmgr.CR_SUCCESS
}

func (s *stubService) GetDevNodePropertyKeys(inst cfgmgr.DevInst, keys []devprop.Key, count *uint32, flags uint32) cfgmgr.Result {
	return stubKeys(s.devProps[inst], keys, count)
}

func (s *stubService) GetDevNodeProperty(inst cfgmgr.DevInst, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) cfgmgr.Result {
	return stubGet(s.devProps[inst], key, typ, buf, size)
}
