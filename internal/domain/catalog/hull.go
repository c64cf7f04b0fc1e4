package catalog

// HullSize is the size class of a hull
type HullSize string

const (
	HullSizeSmall  HullSize = "SMALL"
	HullSizeMedium HullSize = "MEDIUM"
	HullSizeLarge  HullSize = "LARGE"
	HullSizeHuge   HullSize = "HUGE"
)

// HullType is the role a hull is built for
type HullType string

const (
	HullTypeNormal    HullType = "NORMAL"
	HullTypeFreighter HullType = "FREIGHTER"
	HullTypeProbe     HullType = "PROBE"
	HullTypeStarbase  HullType = "STARBASE"
	HullTypePrivateer HullType = "PRIVATEER"
)

// Hull is an immutable chassis archetype.
//
// Invariants:
// - MaxSlot and SlotHull are positive
// - Race is the race affinity the hull was built for
//
// Hulls are shared by pointer between every ship built on them and must
// never be mutated after the catalog hands them out.
type Hull struct {
	Name       string   `yaml:"name" validate:"required"`
	Size       HullSize `yaml:"size" validate:"required,oneof=SMALL MEDIUM LARGE HUGE"`
	Type       HullType `yaml:"type" validate:"required,oneof=NORMAL FREIGHTER PROBE STARBASE PRIVATEER"`
	MaxSlot    int      `yaml:"max_slot" validate:"min=1"`
	SlotHull   int      `yaml:"slot_hull" validate:"min=1"`
	SpyCapable bool     `yaml:"spy_capable"`
	Race       Race     `yaml:"-" validate:"-"`
}

// withRace returns a copy of the hull template bound to a race
func (h *Hull) withRace(race Race) *Hull {
	bound := *h
	bound.Race = race
	return &bound
}

// MaxHullPoints is the structural integrity of a fully fitted hull
func (h *Hull) MaxHullPoints() int {
	return h.SlotHull * h.MaxSlot
}
