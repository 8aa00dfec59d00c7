package main

import (
	"log"

	"github.com/FxStar/devinfo/cfgmgr"
)

func orNone(s string, ok bool, err error) string {
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		return "<none>"
	}
	return s
}

func main() {
	m := cfgmgr.Local()
	for d, err := range m.AllDevices(true) {
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("  [%d] %s: %s", d.DevInst(), orNone(d.Name()), orNone(d.Description()))
	}
}
