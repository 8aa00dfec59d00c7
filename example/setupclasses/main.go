package main

import (
	"log"
	"sort"

	"github.com/FxStar/devinfo/cfgmgr"
)

type entry struct {
	class     cfgmgr.Class
	className string
	name      string
}

func main() {
	m := cfgmgr.Local()

	var entries []entry
	for c, err := range m.SetupClasses() {
		if err != nil {
			log.Fatal(err)
		}
		e := entry{class: c}
		e.className, _ = c.ClassName()
		e.name, _ = c.Name()
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].className < entries[j].className
	})
	for _, e := range entries {
		log.Printf("  %s %-24s %s", e.class, e.className, e.name)
	}
}
