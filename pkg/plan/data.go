package plan

// Default part parameters. These match the composer's menu defaults: a new
// part added without explicit parameters gets these values, and parts laid
// out in a row are spaced DefaultSpacing apart on x.
const (
	DefaultBoxSize = 1.0

	DefaultSphereRadius   = 1.0
	DefaultSphereSegments = 32

	DefaultCylinderRadius   = 0.5
	DefaultCylinderHeight   = 2.0
	DefaultCylinderSegments = 32

	DefaultTorusInner    = 0.2
	DefaultTorusOuter    = 0.8
	DefaultTorusSegments = 32
	DefaultTorusSides    = 16

	DefaultSpacing = 2.0
)

// BoxData parametrizes a cube part.
type BoxData struct {
	Size float64 `json:"size"` // half-extent
}

func (BoxData) shapeData() {}

// SphereData parametrizes a UV-sphere part.
type SphereData struct {
	Radius   float64 `json:"radius"`
	Segments int     `json:"segments"`
}

func (SphereData) shapeData() {}

// CylinderData parametrizes an open tube part.
type CylinderData struct {
	Radius   float64 `json:"radius"`
	Height   float64 `json:"height"`
	Segments int     `json:"segments"`
}

func (CylinderData) shapeData() {}

// TorusData parametrizes a torus part.
type TorusData struct {
	InnerRadius float64 `json:"inner_radius"` // tube radius
	OuterRadius float64 `json:"outer_radius"` // ring radius
	Segments    int     `json:"segments"`
	Sides       int     `json:"sides"`
}

func (TorusData) shapeData() {}
