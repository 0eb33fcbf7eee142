package world

// HazardKind identifies what a tunnel cube does to the actor.
type HazardKind uint8

const (
	HazardEnvironment HazardKind = iota // scenery on the floor rings, never collides
	HazardHealth                        // restores health
	HazardSpeed                         // pushes the actor down faster
	HazardBrake                         // slows the fall
)

var hazardNames = map[HazardKind]string{
	HazardEnvironment: "environment",
	HazardHealth:      "health",
	HazardSpeed:       "speed",
	HazardBrake:       "brake",
}

func (k HazardKind) String() string {
	if n, ok := hazardNames[k]; ok {
		return n
	}
	return "unknown"
}

// Pickup reports whether the kind is a sensor that despawns on contact.
func (k HazardKind) Pickup() bool {
	return k != HazardEnvironment
}

// HazardTemplate defines the look and the effect of a hazard kind.
// Velocity is signed like the fall velocity: negative is downwards.
type HazardTemplate struct {
	Kind          HazardKind
	Color         RGBA
	Size          float64 // edge length of the rendered cube
	HalfExtent    float64 // collision half extent (pickups only)
	HealthDelta   float64
	VelocityDelta float64
}

// HazardTemplates defines base stats for each hazard kind.
var HazardTemplates = map[HazardKind]HazardTemplate{
	HazardEnvironment: {HazardEnvironment, RGBA{0.8, 0.1, 0.1, 1}, 0.8, 0, 0, 0},
	HazardHealth:      {HazardHealth, RGBA{0.2, 0.7, 0.1, 0.3}, 1.6, 1, 20, 0},
	HazardSpeed:       {HazardSpeed, RGBA{0.2, 0.1, 0.7, 0.3}, 1.6, 1, 0, -40},
	HazardBrake:       {HazardBrake, RGBA{0.7, 0.1, 0.1, 0.3}, 1.6, 1, 0, 40},
}

// PickupKinds lists the kinds a spawned batch draws from.
var PickupKinds = []HazardKind{HazardBrake, HazardHealth, HazardSpeed}

// Template returns the template for a kind, falling back to Environment.
func Template(k HazardKind) HazardTemplate {
	if t, ok := HazardTemplates[k]; ok {
		return t
	}
	return HazardTemplates[HazardEnvironment]
}
