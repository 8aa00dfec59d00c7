// Package cfgmgr lists device enumerators, device classes and device nodes
// and reads their properties through the Windows configuration manager
// (cfgmgr32.dll).
//
// Variable-length values are read in two calls: one to learn the required
// buffer size and one to fill a buffer of that size. Enumerators and classes
// are read by index until the configuration manager reports CR_NO_SUCH_VALUE;
// those listings are returned as lazy sequences that go back to the system
// every time they are ranged over:
//
//	m := cfgmgr.Local()
//	for c, err := range m.SetupClasses() {
//		if err != nil {
//			log.Fatal(err)
//		}
//		name, _ := c.ClassName()
//		fmt.Println(c, name)
//	}
//
// Failed calls are returned as *Error carrying the CONFIGRET code.
package cfgmgr
