package storage

import (
	"sort"
	"sync"
)

var drivers sync.Map

// Register makes a storage driver available by the provided name.
// If Register is called twice with the same name or if driver is nil,
// it panics.
func Register(name string, driver Driver) {
	if driver == nil {
		panic("storage: Register driver is nil")
	}
	if _, dup := drivers.LoadOrStore(name, driver); dup {
		panic("storage: Register called twice for driver " + name)
	}
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	var list []string
	drivers.Range(func(key, value interface{}) bool {
		name, _ := key.(string)
		list = append(list, name)
		return true
	})
	sort.Strings(list)
	return list
}
