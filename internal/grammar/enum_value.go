package grammar

import (
	"fmt"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

// enumValue is a pflag.Value that only accepts members of a closed set.
type enumValue struct {
	kind  ArgKind
	value string
}

func newEnumValue(kind ArgKind) *enumValue {
	return &enumValue{kind: kind}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(raw string) error {
	canonical, err := canonicalEnum(e.kind, raw)
	if err != nil {
		return err
	}
	e.value = canonical
	return nil
}

func (e *enumValue) Type() string { return e.kind.placeholder() }

func canonicalEnum(kind ArgKind, raw string) (string, error) {
	switch kind {
	case ArgFaction:
		faction, err := domain.ParseFaction(raw)
		return faction.Flag(), err
	case ArgWaypointType:
		waypointType, err := domain.ParseWaypointType(raw)
		return waypointType.Flag(), err
	case ArgWaypointTrait:
		trait, err := domain.ParseWaypointTrait(raw)
		return trait.Flag(), err
	default:
		return "", fmt.Errorf("argument kind %d is not an enumeration", kind)
	}
}
