package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/spatial"
)

// SceneAnalysis is the read-only description of the subject the camera is
// shooting: its bounding volume and any named features on it.
type SceneAnalysis struct {
	Spatial  *Spatial  `yaml:"spatial" json:"spatial"`
	Features []Feature `yaml:"features" json:"features"`
}

type Spatial struct {
	Bounds *Bounds `yaml:"bounds" json:"bounds"`
}

// Bounds mirrors the upstream analysis format: min/max corners plus the
// precomputed center and dimensions.
type Bounds struct {
	Min        mgl64.Vec3 `yaml:"min" json:"min"`
	Max        mgl64.Vec3 `yaml:"max" json:"max"`
	Center     mgl64.Vec3 `yaml:"center" json:"center"`
	Dimensions mgl64.Vec3 `yaml:"dimensions" json:"dimensions"`
}

func (b *Bounds) AABB() spatial.AABB {
	return spatial.NewAABB(b.Min, b.Max)
}

// Feature is a named point of interest on the subject.
type Feature struct {
	ID          string     `yaml:"id" json:"id"`
	Description string     `yaml:"description" json:"description"`
	Position    mgl64.Vec3 `yaml:"position" json:"position"`
}

// Bounds returns the subject bounds, if the analysis carries any.
func (s *SceneAnalysis) Bounds() (*Bounds, bool) {
	if s == nil || s.Spatial == nil || s.Spatial.Bounds == nil {
		return nil, false
	}
	return s.Spatial.Bounds, true
}

// SubjectBox returns the subject AABB, if the analysis carries bounds.
func (s *SceneAnalysis) SubjectBox() (spatial.AABB, bool) {
	b, ok := s.Bounds()
	if !ok {
		return spatial.AABB{}, false
	}
	return b.AABB(), true
}

// Diagonal returns the length of the subject's bounding box diagonal, or 0
// when the analysis has no bounds.
func (s *SceneAnalysis) Diagonal() float64 {
	box, ok := s.SubjectBox()
	if !ok {
		return 0
	}
	return box.Diagonal()
}

// CameraConstraints is the allowed height/distance envelope. Every field is
// optional; a nil field means unconstrained.
type CameraConstraints struct {
	MinDistance *float64 `yaml:"minDistance" json:"minDistance,omitempty"`
	MaxDistance *float64 `yaml:"maxDistance" json:"maxDistance,omitempty"`
	MinHeight   *float64 `yaml:"minHeight" json:"minHeight,omitempty"`
	MaxHeight   *float64 `yaml:"maxHeight" json:"maxHeight,omitempty"`
}

// EnvironmentalAnalysis carries the camera envelope and the user's vertical
// offset of the subject.
type EnvironmentalAnalysis struct {
	Constraints            *CameraConstraints `yaml:"cameraConstraints" json:"cameraConstraints"`
	UserVerticalAdjustment float64            `yaml:"userVerticalAdjustment" json:"userVerticalAdjustment"`
}

// VerticalAdjustment is the nil-safe accessor for the user offset.
func (e *EnvironmentalAnalysis) VerticalAdjustment() float64 {
	if e == nil {
		return 0
	}
	return e.UserVerticalAdjustment
}

// CameraConstraintsOrNil is the nil-safe accessor for the envelope.
func (e *EnvironmentalAnalysis) CameraConstraintsOrNil() *CameraConstraints {
	if e == nil {
		return nil
	}
	return e.Constraints
}
