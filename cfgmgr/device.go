package cfgmgr

import (
	"iter"

	"github.com/FxStar/devinfo/devprop"
	"github.com/pkg/errors"
)

// Device is a located device node. The handle belongs to the device tree
// generation it was located in; use Relocate to resolve the id again after
// the tree changed.
type Device struct {
	m    *Manager
	id   string
	inst DevInst
}

// Locate resolves a device instance id to its device node.
func (m *Manager) Locate(id string, flags LocateFlag) (*Device, error) {
	var inst DevInst
	if cr := m.svc.LocateDevNode(&inst, id, flags); cr != CR_SUCCESS {
		return nil, errors.Wrapf(m.fail("CM_Locate_DevNodeW", cr), "locate %q (%s)", id, flags)
	}
	return &Device{m: m, id: id, inst: inst}, nil
}

// Relocate resolves the device's id again.
func (d *Device) Relocate(flags LocateFlag) (*Device, error) {
	return d.m.Locate(d.id, flags)
}

// DevInst returns the device instance handle.
func (d *Device) DevInst() DevInst { return d.inst }

// ID returns the device instance id the device was located by.
func (d *Device) ID() string { return d.id }

// PropertyKeyCount returns the number of properties the device has.
func (d *Device) PropertyKeyCount() (int, error) {
	var n uint32
	if cr := d.m.svc.GetDevNodePropertyKeys(d.inst, nil, &n, 0); cr != CR_BUFFER_SMALL {
		return 0, d.m.fail("CM_Get_DevNode_Property_Keys", cr)
	}
	return int(n), nil
}

// PropertyKeys returns the keys of the properties the device has.
func (d *Device) PropertyKeys() ([]devprop.Key, error) {
	keys, cr, ok := sized(func(buf []devprop.Key, n *uint32) Result {
		return d.m.svc.GetDevNodePropertyKeys(d.inst, buf, n, 0)
	}, false)
	if !ok {
		return nil, d.m.fail("CM_Get_DevNode_Property_Keys", cr)
	}
	return keys, nil
}

func (d *Device) fetch(key devprop.Key) (devprop.Property, Result, bool) {
	k := key
	var typ devprop.Type
	data, cr, ok := sized(func(buf []byte, n *uint32) Result {
		return d.m.svc.GetDevNodeProperty(d.inst, &k, &typ, buf, n, 0)
	}, false)
	return devprop.Property{Key: key, Type: typ, Data: data}, cr, ok
}

// Property returns the device property stored under key.
func (d *Device) Property(key devprop.Key) (devprop.Property, error) {
	p, cr, ok := d.fetch(key)
	if !ok {
		return devprop.Property{}, errors.Wrapf(d.m.fail("CM_Get_DevNode_PropertyW", cr), "%s: %s", d.id, key)
	}
	return p, nil
}

// PropertyOrNone is like Property but reports any failure as absence.
func (d *Device) PropertyOrNone(key devprop.Key) (devprop.Property, bool) {
	p, _, ok := d.fetch(key)
	return p, ok
}

func (d *Device) text(key devprop.Key) (string, bool, error) {
	p, err := d.Property(key)
	if err != nil {
		return "", false, err
	}
	s, ok := p.Text()
	return s, ok, nil
}

// Name returns DEVPKEY_NAME. ok is false if the property is not a string;
// failing to read it is an error.
func (d *Device) Name() (name string, ok bool, err error) {
	return d.text(devprop.KeyName)
}

// InstanceID returns DEVPKEY_Device_InstanceId.
func (d *Device) InstanceID() (id string, ok bool, err error) {
	return d.text(devprop.KeyInstanceID)
}

// Description returns DEVPKEY_Device_DeviceDesc.
func (d *Device) Description() (desc string, ok bool, err error) {
	return d.text(devprop.KeyDeviceDesc)
}

// PropertySeq lists the property keys and then reads each property as the
// sequence is consumed. Any failure is yielded and ends the sequence.
func (d *Device) PropertySeq() iter.Seq2[devprop.Property, error] {
	return func(yield func(devprop.Property, error) bool) {
		keys, err := d.PropertyKeys()
		if err != nil {
			yield(devprop.Property{}, err)
			return
		}
		for _, k := range keys {
			p, err := d.Property(k)
			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}

// Properties returns every property of the device in key order. Unlike
// Class.Properties, a property that cannot be read fails the whole call.
func (d *Device) Properties() ([]devprop.Property, error) {
	var props []devprop.Property
	for p, err := range d.PropertySeq() {
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// PropertyMap is Properties as a keyed view that keeps the key order.
func (d *Device) PropertyMap() (*devprop.Map, error) {
	props, err := d.Properties()
	if err != nil {
		return nil, err
	}
	return devprop.NewMap(props), nil
}
