package cfgmgr

import (
	"iter"
	"strings"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
)

// Flavor selects which class namespace is enumerated and queried.
type Flavor int

const (
	SetupClass     Flavor = iota // device setup (installer) classes
	InterfaceClass               // device interface classes
)

var flavors = [...]struct {
	name      string
	enumFlags uint32
	propFlags uint32
}{
	SetupClass:     {"setup", CM_ENUMERATE_CLASSES_INSTALLER, CM_CLASS_PROPERTY_INSTALLER},
	InterfaceClass: {"interface", CM_ENUMERATE_CLASSES_INTERFACE, CM_CLASS_PROPERTY_INTERFACE},
}

func (f Flavor) String() string { return flavors[f].name }

// EnumFlags returns the CM_Enumerate_Classes flags for f.
func (f Flavor) EnumFlags() uint32 { return flavors[f].enumFlags }

// PropFlags returns the class property flags for f.
func (f Flavor) PropFlags() uint32 { return flavors[f].propFlags }

// Class is a setup or interface class. It is a value: queries always go back
// to the service and nothing is cached.
type Class struct {
	m      *Manager
	id     guid.GUID
	flavor Flavor
}

// Classes enumerates the classes of the given flavor.
func (m *Manager) Classes(flavor Flavor) iter.Seq2[Class, error] {
	flags := flavor.EnumFlags()
	return enumerate(m, "CM_Enumerate_Classes", indexLimit, func(i uint32) (Class, Result) {
		// A fresh GUID per call; the service writes into it.
		var id guid.GUID
		cr := m.svc.EnumerateClasses(i, &id, flags)
		return Class{m: m, id: id, flavor: flavor}, cr
	})
}

// SetupClasses enumerates the device setup classes.
func (m *Manager) SetupClasses() iter.Seq2[Class, error] {
	return m.Classes(SetupClass)
}

// InterfaceClasses enumerates the device interface classes.
func (m *Manager) InterfaceClasses() iter.Seq2[Class, error] {
	return m.Classes(InterfaceClass)
}

// FindSetupClass returns the first setup class whose class name equals
// name. With ignoreCase both names are lower-cased before comparing. Every
// call enumerates the classes again.
func (m *Manager) FindSetupClass(name string, ignoreCase bool) (Class, bool, error) {
	if ignoreCase {
		name = strings.ToLower(name)
	}
	for c, err := range m.SetupClasses() {
		if err != nil {
			return Class{}, false, err
		}
		cn, ok := c.ClassName()
		if !ok {
			continue
		}
		if ignoreCase {
			cn = strings.ToLower(cn)
		}
		if cn == name {
			return c, true, nil
		}
	}
	return Class{}, false, nil
}

// GUID returns a copy of the class identifier.
func (c Class) GUID() guid.GUID { return c.id }

// Flavor returns whether c is a setup or an interface class.
func (c Class) Flavor() Flavor { return c.flavor }

func (c Class) String() string { return devprop.FormatGUID(c.id) }

// PropertyKeyCount returns the number of properties the class has.
func (c Class) PropertyKeyCount() (int, error) {
	id := c.id
	var n uint32
	cr := c.m.svc.GetClassPropertyKeys(&id, nil, &n, c.flavor.PropFlags())
	switch cr.Disposition() {
	case Success, BufferTooSmall:
		return int(n), nil
	}
	return 0, c.m.fail("CM_Get_Class_Property_Keys", cr)
}

// PropertyKeys returns the keys of the properties the class has.
func (c Class) PropertyKeys() ([]devprop.Key, error) {
	id := c.id
	flags := c.flavor.PropFlags()
	keys, cr, ok := sized(func(buf []devprop.Key, n *uint32) Result {
		return c.m.svc.GetClassPropertyKeys(&id, buf, n, flags)
	}, true)
	if !ok {
		return nil, c.m.fail("CM_Get_Class_Property_Keys", cr)
	}
	return keys, nil
}

func (c Class) fetch(key devprop.Key) (devprop.Property, Result, bool) {
	id, k := c.id, key
	flags := c.flavor.PropFlags()
	var typ devprop.Type
	data, cr, ok := sized(func(buf []byte, n *uint32) Result {
		return c.m.svc.GetClassProperty(&id, &k, &typ, buf, n, flags)
	}, false)
	return devprop.Property{Key: key, Type: typ, Data: data}, cr, ok
}

// Property returns the class property stored under key.
func (c Class) Property(key devprop.Key) (devprop.Property, error) {
	p, cr, ok := c.fetch(key)
	if !ok {
		return devprop.Property{}, c.m.fail("CM_Get_Class_PropertyW", cr)
	}
	return p, nil
}

// PropertyOrNone is like Property but reports any failure as absence.
func (c Class) PropertyOrNone(key devprop.Key) (devprop.Property, bool) {
	p, _, ok := c.fetch(key)
	return p, ok
}

// Properties returns every property of the class, in key order. A property
// that cannot be read after its key was listed is left out; failing to list
// the keys is an error.
func (c Class) Properties() ([]devprop.Property, error) {
	keys, err := c.PropertyKeys()
	if err != nil {
		return nil, err
	}
	props := make([]devprop.Property, 0, len(keys))
	for _, k := range keys {
		if p, ok := c.PropertyOrNone(k); ok {
			props = append(props, p)
		}
	}
	return props, nil
}

func (c Class) text(key devprop.Key) (string, bool) {
	p, ok := c.PropertyOrNone(key)
	if !ok {
		return "", false
	}
	return p.Text()
}

// Name returns the display name of the class (DEVPKEY_NAME).
func (c Class) Name() (string, bool) { return c.text(devprop.KeyName) }

// InstanceID returns DEVPKEY_Device_InstanceId of the class, if it has one.
func (c Class) InstanceID() (string, bool) { return c.text(devprop.KeyInstanceID) }

// ClassName returns the class name of a setup class
// (DEVPKEY_DeviceClass_ClassName), e.g. "Battery" or "USB".
func (c Class) ClassName() (string, bool) { return c.text(devprop.KeyClassName) }
