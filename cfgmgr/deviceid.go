package cfgmgr

import (
	"iter"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
)

// deviceIDList fetches the device ids matching filter. The size is queried
// first; an empty list skips the second call.
func (m *Manager) deviceIDList(filter string, flags uint32, presentOnly bool) ([]string, error) {
	if presentOnly {
		flags |= CM_GETIDLIST_FILTER_PRESENT
	}

	var n uint32
	if cr := m.svc.GetDeviceIDListSize(&n, filter, flags); cr != CR_SUCCESS {
		return nil, m.fail("CM_Get_Device_ID_List_SizeW", cr)
	}
	if n == 0 {
		return []string{}, nil
	}

	buf := make([]uint16, n)
	if cr := m.svc.GetDeviceIDList(filter, buf, flags); cr != CR_SUCCESS {
		return nil, m.fail("CM_Get_Device_ID_ListW", cr)
	}
	return devprop.SplitMultiString(buf), nil
}

// deviceIDs defers deviceIDList until the sequence is ranged over.
func (m *Manager) deviceIDs(filter string, flags uint32, presentOnly bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ids, err := m.deviceIDList(filter, flags, presentOnly)
		if err != nil {
			yield("", err)
			return
		}
		for _, id := range ids {
			if !yield(id, nil) {
				return
			}
		}
	}
}

// AllDeviceIDs lists every device instance id. With presentOnly, devices
// that are not currently present are left out.
func (m *Manager) AllDeviceIDs(presentOnly bool) iter.Seq2[string, error] {
	return m.deviceIDs("", CM_GETIDLIST_FILTER_NONE, presentOnly)
}

// DeviceIDsByEnumerator lists the device instance ids created by the named
// enumerator, e.g. "USB".
func (m *Manager) DeviceIDsByEnumerator(enumerator string, presentOnly bool) iter.Seq2[string, error] {
	return m.deviceIDs(enumerator, CM_GETIDLIST_FILTER_ENUMERATOR, presentOnly)
}

// DeviceIDsByClass lists the device instance ids of a setup class given in
// its string form, "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}".
func (m *Manager) DeviceIDsByClass(classID string, presentOnly bool) iter.Seq2[string, error] {
	return m.deviceIDs(classID, CM_GETIDLIST_FILTER_CLASS, presentOnly)
}

// devices locates each id as it is produced. A failure ends the sequence.
func (m *Manager) devices(ids iter.Seq2[string, error]) iter.Seq2[*Device, error] {
	return func(yield func(*Device, error) bool) {
		for id, err := range ids {
			if err != nil {
				yield(nil, err)
				return
			}
			d, err := m.Locate(id, LocateNormal)
			if !yield(d, err) || err != nil {
				return
			}
		}
	}
}

// AllDevices is AllDeviceIDs with every id located.
func (m *Manager) AllDevices(presentOnly bool) iter.Seq2[*Device, error] {
	return m.devices(m.AllDeviceIDs(presentOnly))
}

// DevicesByEnumerator is DeviceIDsByEnumerator with every id located.
func (m *Manager) DevicesByEnumerator(enumerator string, presentOnly bool) iter.Seq2[*Device, error] {
	return m.devices(m.DeviceIDsByEnumerator(enumerator, presentOnly))
}

// DevicesByClassID is DeviceIDsByClass with every id located.
func (m *Manager) DevicesByClassID(classID string, presentOnly bool) iter.Seq2[*Device, error] {
	return m.devices(m.DeviceIDsByClass(classID, presentOnly))
}

// DevicesByClassGUID lists the devices of the setup class identified by g.
func (m *Manager) DevicesByClassGUID(g guid.GUID, presentOnly bool) iter.Seq2[*Device, error] {
	return m.DevicesByClassID(devprop.FormatGUID(g), presentOnly)
}

// DevicesByClass lists the devices of a setup class.
func (m *Manager) DevicesByClass(c Class, presentOnly bool) iter.Seq2[*Device, error] {
	return m.DevicesByClassGUID(c.GUID(), presentOnly)
}

// DevicesByClassName lists the devices of the setup class with the given
// class name. The class is looked up when the sequence is ranged over; if
// there is none, the sequence yields an error wrapping ErrClassNotFound.
func (m *Manager) DevicesByClassName(name string, presentOnly, ignoreCase bool) iter.Seq2[*Device, error] {
	return func(yield func(*Device, error) bool) {
		c, ok, err := m.FindSetupClass(name, ignoreCase)
		if err != nil {
			yield(nil, err)
			return
		}
		if !ok {
			yield(nil, errors.Wrapf(ErrClassNotFound, "class %q", name))
			return
		}
		for d, err := range m.DevicesByClass(c, presentOnly) {
			if !yield(d, err) {
				return
			}
		}
	}
}
