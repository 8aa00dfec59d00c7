package cfgmgr

import (
	"testing"

	"github.com/FxStar/devinfo/devprop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kbdID   = `HID\VID_046D&PID_C31C\7&1A2B3C4D&0&0000`
	emptyID = `ROOT\LEGACY_BEEP\0000`
)

func deviceFixture() *fakeService {
	f := newFake()
	f.devices[kbdID] = 7
	f.devices[emptyID] = 9
	f.devProps[7] = []fakeProp{
		strProp(devprop.KeyName, "HID Keyboard Device"),
		strProp(devprop.KeyDeviceDesc, "HID Keyboard Device"),
		strProp(devprop.KeyInstanceID, kbdID),
		{key: keyA, typ: devprop.Uint32, data: []byte{0x0A, 0x60, 0x80, 0x01}},
	}
	return f
}

func TestLocate(t *testing.T) {
	f := deviceFixture()
	m, _ := newTestManager(f)

	d, err := m.Locate(kbdID, LocatePhantom)
	require.NoError(t, err)
	assert.Equal(t, DevInst(7), d.DevInst())
	assert.Equal(t, kbdID, d.ID())
	assert.Equal(t, []LocateFlag{LocatePhantom}, f.locateFlags)

	_, err = m.Locate(`USB\NOPE\1`, LocateNormal)
	require.Error(t, err)
	cr, ok := ResultOf(err)
	require.True(t, ok)
	assert.Equal(t, CR_NO_SUCH_DEVNODE, cr)
	assert.Contains(t, err.Error(), `locate "USB\\NOPE\\1" (NORMAL)`)
}

func TestRelocate(t *testing.T) {
	f := deviceFixture()
	m, _ := newTestManager(f)

	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	// The tree changed and the device got a new handle.
	f.devices[kbdID] = 11
	f.devProps[11] = f.devProps[7]

	d2, err := d.Relocate(LocateNormal)
	require.NoError(t, err)
	assert.Equal(t, DevInst(7), d.DevInst())
	assert.Equal(t, DevInst(11), d2.DevInst())
	assert.Equal(t, d.ID(), d2.ID())
}

func TestDeviceKeys(t *testing.T) {
	m, _ := newTestManager(deviceFixture())
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	n, err := d.PropertyKeyCount()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	keys, err := d.PropertyKeys()
	require.NoError(t, err)
	assert.Equal(t, []devprop.Key{devprop.KeyName, devprop.KeyDeviceDesc, devprop.KeyInstanceID, keyA}, keys)
}

func TestDeviceWithoutKeys(t *testing.T) {
	m, _ := newTestManager(deviceFixture())
	d, err := m.Locate(emptyID, LocateNormal)
	require.NoError(t, err)

	// A sizing call that succeeds outright is not an answer for devices.
	_, err = d.PropertyKeyCount()
	cr, _ := ResultOf(err)
	assert.Equal(t, CR_SUCCESS, cr)

	_, err = d.PropertyKeys()
	cr, _ = ResultOf(err)
	assert.Equal(t, CR_SUCCESS, cr)
}

func TestDeviceKeysFailure(t *testing.T) {
	f := deviceFixture()
	f.devKeysFail = CR_INVALID_DEVNODE
	m, _ := newTestManager(f)
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	_, err = d.PropertyKeyCount()
	cr, _ := ResultOf(err)
	assert.Equal(t, CR_INVALID_DEVNODE, cr)

	props, err := d.Properties()
	assert.Nil(t, props)
	cr, _ = ResultOf(err)
	assert.Equal(t, CR_INVALID_DEVNODE, cr)
}

func TestDeviceProperty(t *testing.T) {
	f := deviceFixture()
	m, _ := newTestManager(f)
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	p, err := d.Property(keyA)
	require.NoError(t, err)
	assert.Equal(t, devprop.Uint32, p.Type)
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0180600A), v)
	assert.Equal(t, []int{4}, f.propBufSizes)

	_, err = d.Property(devprop.KeyManufacturer)
	cr, _ := ResultOf(err)
	assert.Equal(t, CR_NO_SUCH_VALUE, cr)
	assert.Contains(t, err.Error(), kbdID)
	assert.Contains(t, err.Error(), "DEVPKEY_Device_Manufacturer")

	_, ok := d.PropertyOrNone(devprop.KeyManufacturer)
	assert.False(t, ok)
	p, ok = d.PropertyOrNone(devprop.KeyName)
	require.True(t, ok)
	assert.Equal(t, devprop.KeyName, p.Key)
}

func TestDeviceText(t *testing.T) {
	m, _ := newTestManager(deviceFixture())
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	name, ok, err := d.Name()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "HID Keyboard Device", name)

	desc, ok, err := d.Description()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "HID Keyboard Device", desc)

	id, ok, err := d.InstanceID()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, kbdID, id)
}

func TestDeviceTextWrongType(t *testing.T) {
	f := deviceFixture()
	f.devProps[7][0] = fakeProp{key: devprop.KeyName, typ: devprop.Uint32, data: []byte{1, 0, 0, 0}}
	m, _ := newTestManager(f)
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	_, ok, err := d.Name()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeviceTextMissing(t *testing.T) {
	m, _ := newTestManager(deviceFixture())
	d, err := m.Locate(emptyID, LocateNormal)
	require.NoError(t, err)

	_, _, err = d.Description()
	cr, _ := ResultOf(err)
	assert.Equal(t, CR_NO_SUCH_VALUE, cr)
}

func TestDeviceProperties(t *testing.T) {
	m, _ := newTestManager(deviceFixture())
	d, err := m.Locate(kbdID, LocateNormal)
	require.NoError(t, err)

	props, err := d.Properties()
	require.NoError(t, err)
	require.Len(t, props, 4)
	assert.Equal(t, keyA, props[3].Key)

	pm, err := d.PropertyMap()
	require.NoError(t, err)
	assert.Equal(t, 4, pm.Len())
	assert.Equal(t, []devprop.Key{devprop.KeyName, devprop.KeyDeviceDesc, devprop.KeyInstanceID, keyA}, pm.Keys())
	p, ok := pm.Get(devprop.KeyInstanceID)
	require.True(t, ok)
	s, _ := p.Text()
	assert.Equal(t, kbdID, s)
}

func TestDevicePropertiesFailOnVanished(t *testing.T) {
	f := newFake()
	f.devices["X"] = 1
	f.devProps[1] = []fakeProp{
		{key: keyA, typ: devprop.Uint32, data: []byte{1, 0, 0, 0}},
		{key: keyB, typ: devprop.Uint32, data: []byte{2, 0, 0, 0}, fail: CR_FAILURE},
		{key: keyC, typ: devprop.Uint32, data: []byte{3, 0, 0, 0}},
	}
	m, _ := newTestManager(f)
	d, err := m.Locate("X", LocateNormal)
	require.NoError(t, err)

	props, err := d.Properties()
	assert.Nil(t, props)
	cr, ok := ResultOf(err)
	require.True(t, ok)
	assert.Equal(t, CR_FAILURE, cr)

	// The sequence form hands out what it read before the failure.
	var got []devprop.Key
	var seqErr error
	for p, err := range d.PropertySeq() {
		if err != nil {
			seqErr = err
			break
		}
		got = append(got, p.Key)
	}
	assert.Equal(t, []devprop.Key{keyA}, got)
	require.Error(t, seqErr)
}

func TestDevicePropertyTrimmed(t *testing.T) {
	f := newFake()
	f.devices["X"] = 1
	f.devProps[1] = []fakeProp{
		{key: keyA, typ: devprop.String, data: encodeUTF16("abc\x00\x00"), shrink: 2},
	}
	m, _ := newTestManager(f)
	d, err := m.Locate("X", LocateNormal)
	require.NoError(t, err)

	p, err := d.Property(keyA)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, f.propBufSizes)
	assert.Len(t, p.Data, 8)
	s, ok := p.Text()
	require.True(t, ok)
	assert.Equal(t, "abc", s)
}

func TestDevicePropertyZeroSize(t *testing.T) {
	f := newFake()
	f.devices["X"] = 1
	f.devProps[1] = []fakeProp{
		{key: keyA, typ: devprop.Empty, data: []byte{}},
	}
	m, _ := newTestManager(f)
	d, err := m.Locate("X", LocateNormal)
	require.NoError(t, err)

	p, err := d.Property(keyA)
	require.NoError(t, err)
	// The sizing call reports zero bytes; the second call still returns the type.
	assert.Equal(t, 2, f.calls["devprop"])
	assert.Equal(t, []int{0}, f.propBufSizes)
	assert.Equal(t, keyA, p.Key)
	assert.Equal(t, devprop.Empty, p.Type)
	assert.Empty(t, p.Data)
}
