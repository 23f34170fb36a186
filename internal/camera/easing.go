package camera

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Registered easing curve names. The interpreter only names curves in its
// output; the curve functions themselves are evaluated by playback tools.
const (
	EasingLinear    = "linear"
	EasingInQuad    = "ease_in_quad"
	EasingOutQuad   = "ease_out_quad"
	EasingInOutQuad = "ease_in_out_quad"
)

var curves = map[string]ease.TweenFunc{
	EasingLinear:    ease.Linear,
	EasingInQuad:    ease.InQuad,
	EasingOutQuad:   ease.OutQuad,
	EasingInOutQuad: ease.InOutQuad,
}

// KnownEasing reports whether name is a registered curve.
func KnownEasing(name string) bool {
	_, ok := curves[name]
	return ok
}

// Curve returns the easing function registered under name.
func Curve(name string) (ease.TweenFunc, bool) {
	fn, ok := curves[name]
	return fn, ok
}

// NormalizeEasing returns name when it is registered, otherwise fallback.
// The second return reports whether the name was known.
func NormalizeEasing(name, fallback string) (string, bool) {
	if KnownEasing(name) {
		return name, true
	}
	return fallback, false
}

// EasingNames lists the registered curves in stable order.
func EasingNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
