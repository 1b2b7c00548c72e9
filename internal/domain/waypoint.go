package domain

import (
	"fmt"
	"strings"
)

type WaypointType string

const (
	WaypointTypePlanet                WaypointType = "PLANET"
	WaypointTypeGasGiant              WaypointType = "GAS_GIANT"
	WaypointTypeMoon                  WaypointType = "MOON"
	WaypointTypeOrbitalStation        WaypointType = "ORBITAL_STATION"
	WaypointTypeJumpGate              WaypointType = "JUMP_GATE"
	WaypointTypeAsteroidField         WaypointType = "ASTEROID_FIELD"
	WaypointTypeAsteroid              WaypointType = "ASTEROID"
	WaypointTypeEngineeredAsteroid    WaypointType = "ENGINEERED_ASTEROID"
	WaypointTypeAsteroidBase          WaypointType = "ASTEROID_BASE"
	WaypointTypeNebula                WaypointType = "NEBULA"
	WaypointTypeDebrisField           WaypointType = "DEBRIS_FIELD"
	WaypointTypeGravityWell           WaypointType = "GRAVITY_WELL"
	WaypointTypeArtificialGravityWell WaypointType = "ARTIFICIAL_GRAVITY_WELL"
	WaypointTypeFuelStation           WaypointType = "FUEL_STATION"
)

var waypointTypes = []WaypointType{
	WaypointTypePlanet,
	WaypointTypeGasGiant,
	WaypointTypeMoon,
	WaypointTypeOrbitalStation,
	WaypointTypeJumpGate,
	WaypointTypeAsteroidField,
	WaypointTypeAsteroid,
	WaypointTypeEngineeredAsteroid,
	WaypointTypeAsteroidBase,
	WaypointTypeNebula,
	WaypointTypeDebrisField,
	WaypointTypeGravityWell,
	WaypointTypeArtificialGravityWell,
	WaypointTypeFuelStation,
}

func WaypointTypes() []WaypointType {
	return append([]WaypointType(nil), waypointTypes...)
}

func WaypointTypeFlagValues() []string {
	return flagNames(waypointTypes)
}

func ParseWaypointType(raw string) (WaypointType, error) {
	return parseSymbolic("waypoint type", waypointTypes, raw)
}

func (t WaypointType) Valid() bool    { return containsSymbolic(waypointTypes, t) }
func (t WaypointType) Symbol() string { return string(t) }
func (t WaypointType) Flag() string   { return flagName(t) }
func (t WaypointType) String() string { return t.Flag() }

// Waypoint is a read-only location inside a system.
type Waypoint struct {
	Symbol       string
	SystemSymbol string
	Type         WaypointType
	X            int
	Y            int
	Orbitals     []string
	Traits       []WaypointTrait
	Faction      Faction
	ChartedBy    string
	Charted      bool
}

// WaypointQuery selects waypoints of one system, optionally filtered.
type WaypointQuery struct {
	System string
	Type   *WaypointType
	Trait  *WaypointTrait
}

// SystemOfWaypoint derives "X1-DF55" from "X1-DF55-20250Z".
func SystemOfWaypoint(symbol string) (string, error) {
	parts := strings.Split(strings.TrimSpace(symbol), "-")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("invalid waypoint symbol %q", symbol)
	}
	return strings.ToUpper(parts[0] + "-" + parts[1]), nil
}
