package cfgmgr

import (
	"encoding/binary"
	"fmt"
	"testing"
	"unicode/utf16"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// fakeProp is a property held by the fake service. A non-zero fail is
// returned by the second (filling) call instead of CR_SUCCESS; shrink is
// subtracted from the size that call reports.
type fakeProp struct {
	key    devprop.Key
	typ    devprop.Type
	data   []byte
	fail   Result
	shrink int
}

// fakeService is a scripted configuration manager.
type fakeService struct {
	enumerators []string
	enumFail    map[uint32]Result
	neverEnds   bool

	classes       map[Flavor][]guid.GUID
	classProps    map[guid.GUID][]fakeProp
	classKeysFail Result

	idLists    map[string][]string // by idListKey
	idSizeFail Result

	devices      map[string]DevInst
	devProps     map[DevInst][]fakeProp
	devKeysFail  Result
	locateFlags  []LocateFlag
	calls        map[string]int
	propBufSizes []int
}

func newFake() *fakeService {
	return &fakeService{
		enumFail:   map[uint32]Result{},
		classes:    map[Flavor][]guid.GUID{},
		classProps: map[guid.GUID][]fakeProp{},
		idLists:    map[string][]string{},
		devices:    map[string]DevInst{},
		devProps:   map[DevInst][]fakeProp{},
		calls:      map[string]int{},
	}
}

func idListKey(filter string, flags uint32) string {
	return fmt.Sprintf("%s|%#x", filter, flags)
}

// newTestManager returns a Manager over f whose log output is captured.
func newTestManager(f *fakeService) (*Manager, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewManager(f, WithLogger(logrus.NewEntry(logger))), hook
}

func mustGUID(t *testing.T, s string) guid.GUID {
	t.Helper()
	g, err := guid.FromString(s)
	require.NoError(t, err)
	return g
}

func strProp(key devprop.Key, s string) fakeProp {
	return fakeProp{key: key, typ: devprop.String, data: encodeUTF16(s + "\x00")}
}

func encodeUTF16(s string) []byte {
	u := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	return b
}

func encodeMultiString(ids []string) []uint16 {
	var u []uint16
	for _, id := range ids {
		u = append(u, utf16.Encode([]rune(id))...)
		u = append(u, 0)
	}
	return append(u, 0)
}

func (f *fakeService) EnumerateEnumerators(index uint32, buf []uint16, length *uint32) Result {
	f.calls["enumerators"]++
	if cr, ok := f.enumFail[index]; ok {
		return cr
	}
	name := "ROOT"
	if !f.neverEnds {
		if int(index) >= len(f.enumerators) {
			return CR_NO_SUCH_VALUE
		}
		name = f.enumerators[index]
	}
	u := append(utf16.Encode([]rune(name)), 0)
	if int(*length) < len(u) {
		*length = uint32(len(u))
		return CR_BUFFER_SMALL
	}
	copy(buf, u)
	*length = uint32(len(u))
	return CR_SUCCESS
}

func (f *fakeService) EnumerateClasses(index uint32, class *guid.GUID, flags uint32) Result {
	f.calls["classes"]++
	flavor := SetupClass
	if flags == CM_ENUMERATE_CLASSES_INTERFACE {
		flavor = InterfaceClass
	}
	list := f.classes[flavor]
	if int(index) >= len(list) {
		return CR_NO_SUCH_VALUE
	}
	*class = list[index]
	return CR_SUCCESS
}

func listKeys(props []fakeProp, keys []devprop.Key, count *uint32) Result {
	need := uint32(len(props))
	if need == 0 {
		*count = 0
		return CR_SUCCESS
	}
	if uint32(len(keys)) < need || *count < need {
		*count = need
		return CR_BUFFER_SMALL
	}
	for i, p := range props {
		keys[i] = p.key
	}
	*count = need
	return CR_SUCCESS
}

func (f *fakeService) getProp(props []fakeProp, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32) Result {
	for _, p := range props {
		if p.key != *key {
			continue
		}
		*typ = p.typ
		if buf == nil {
			*size = uint32(len(p.data))
			return CR_BUFFER_SMALL
		}
		f.propBufSizes = append(f.propBufSizes, len(buf))
		if p.fail != 0 {
			return p.fail
		}
		if len(buf) < len(p.data) {
			*size = uint32(len(p.data))
			return CR_BUFFER_SMALL
		}
		n := copy(buf, p.data[:len(p.data)-p.shrink])
		*size = uint32(n)
		return CR_SUCCESS
	}
	return CR_NO_SUCH_VALUE
}

func (f *fakeService) GetClassPropertyKeys(class *guid.GUID, keys []devprop.Key, count *uint32, flags uint32) Result {
	f.calls["classkeys"]++
	if f.classKeysFail != 0 {
		return f.classKeysFail
	}
	return listKeys(f.classProps[*class], keys, count)
}

func (f *fakeService) GetClassProperty(class *guid.GUID, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result {
	f.calls["classprop"]++
	return f.getProp(f.classProps[*class], key, typ, buf, size)
}

func (f *fakeService) GetDeviceIDListSize(length *uint32, filter string, flags uint32) Result {
	f.calls["idlistsize"]++
	if f.idSizeFail != 0 {
		return f.idSizeFail
	}
	ids, ok := f.idLists[idListKey(filter, flags)]
	if !ok {
		*length = 0
		return CR_SUCCESS
	}
	*length = uint32(len(encodeMultiString(ids)))
	return CR_SUCCESS
}

func (f *fakeService) GetDeviceIDList(filter string, buf []uint16, flags uint32) Result {
	f.calls["idlist"]++
	u := encodeMultiString(f.idLists[idListKey(filter, flags)])
	if len(buf) < len(u) {
		return CR_BUFFER_SMALL
	}
	copy(buf, u)
	return CR_SUCCESS
}

func (f *fakeService) LocateDevNode(inst *DevInst, id string, flags LocateFlag) Result {
	f.calls["locate"]++
	f.locateFlags = append(f.locateFlags, flags)
	d, ok := f.devices[id]
	if !ok {
		return CR_NO_SUCH_DEVNODE
	}
	*inst = d
	return CR_SUCCESS
}

func (f *fakeService) GetDevNodePropertyKeys(inst DevInst, keys []devprop.Key, count *uint32, flags uint32) Result {
	f.calls["devkeys"]++
	if f.devKeysFail != 0 {
		return f.devKeysFail
	}
	return listKeys(f.devProps[inst], keys, count)
}

func (f *fakeService) GetDevNodeProperty(inst DevInst, key *devprop.Key, typ *devprop.Type, buf []byte, size *uint32, flags uint32) Result {
	f.calls["devprop"]++
	return f.getProp(f.devProps[inst], key, typ, buf, size)
}
