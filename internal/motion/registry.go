package motion

import (
	"fmt"
	"sort"
)

type Factory func() Generator

// Registry maps step types to generator factories, mirroring how the
// interpreter's callers select motions by name.
type Registry struct {
	generators map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Factory)}
	r.register()
	return r
}

func (r *Registry) register() {
	r.generators["static"] = func() Generator { return NewStatic() }
	r.generators["zoom"] = func() Generator { return NewZoom() }
	r.generators["orbit"] = func() Generator { return NewOrbit() }
	r.generators["pan"] = func() Generator { return NewPan() }
	r.generators["tilt"] = func() Generator { return NewTilt() }
	r.generators["dolly"] = func() Generator { return NewDolly() }
	r.generators["truck"] = func() Generator { return NewTruck() }
	r.generators["pedestal"] = func() Generator { return NewPedestal() }
	r.generators["rotate"] = func() Generator { return NewRotate() }
	r.generators["move_to"] = func() Generator { return NewMoveTo() }
	r.generators["focus_on"] = func() Generator { return NewFocusOn() }
	r.generators["fly_by"] = func() Generator { return NewFlyBy() }
	r.generators["fly_away"] = func() Generator { return NewFlyAway() }
}

func (r *Registry) Get(kind string) (Generator, error) {
	if fn, ok := r.generators[kind]; ok {
		return fn(), nil
	}
	return nil, fmt.Errorf("unknown motion type: %s", kind)
}

func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
