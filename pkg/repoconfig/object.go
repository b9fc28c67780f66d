package repoconfig

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON-like object.
type Object = orderedmap.OrderedMap[string, any]

// Entry is a key/value pair used to build an Object.
type Entry struct {
	Key   string
	Value any
}

// NewObject builds an Object holding entries in the given order.
func NewObject(entries ...Entry) *Object {
	obj := orderedmap.New[string, any]()
	for _, e := range entries {
		obj.Set(e.Key, e.Value)
	}
	return obj
}

// Section builds the common single-section shape {name: {"": settings}}.
func Section(name string, settings ...Entry) *Object {
	return NewObject(Entry{Key: name, Value: NewObject(Entry{Key: "", Value: NewObject(settings...)})})
}
