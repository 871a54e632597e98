package core

// GeometryHandle names a shared, immutable geometry definition.
// Every instance of the same shape references the same handle.
type GeometryHandle uint8

const (
	GeometryNone GeometryHandle = iota
	GeometryBox                 // unit cube, scaled per drawable
	GeometryGoal                // goal model, loaded by the host
)

// String returns the handle name.
func (g GeometryHandle) String() string {
	switch g {
	case GeometryBox:
		return "box"
	case GeometryGoal:
		return "goal"
	default:
		return "none"
	}
}

// MaterialHandle names a shared, immutable material definition.
type MaterialHandle uint8

// Materials used by the course.
const (
	MaterialNone        MaterialHandle = iota
	MaterialFloorSafe                  // start and goal platforms
	MaterialFloorHazard                // hazard platforms
	MaterialObstacle                   // moving obstacle
	MaterialWall                       // bounds
)

// materialColors maps materials to their display color. Read-only.
var materialColors = map[MaterialHandle]string{
	MaterialFloorSafe:   "limegreen",
	MaterialFloorHazard: "greenyellow",
	MaterialObstacle:    "orangered",
	MaterialWall:        "slategrey",
}

// materialHex holds the hex value of each display color.
var materialHex = map[MaterialHandle]string{
	MaterialFloorSafe:   "#32CD32",
	MaterialFloorHazard: "#ADFF2F",
	MaterialObstacle:    "#FF4500",
	MaterialWall:        "#708090",
}

// Color returns the CSS color name of the material.
func (m MaterialHandle) Color() string {
	return materialColors[m]
}

// Hex returns the material color as "#RRGGBB", or "" for MaterialNone.
func (m MaterialHandle) Hex() string {
	return materialHex[m]
}

// String returns the material color name.
func (m MaterialHandle) String() string {
	if c, ok := materialColors[m]; ok {
		return c
	}
	return "none"
}

// Drawable is the geometric description handed to a renderer for one
// visual element: what to draw, with which material, where.
type Drawable struct {
	Geometry  GeometryHandle
	Material  MaterialHandle
	Transform Transform
}
