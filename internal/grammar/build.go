package grammar

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

type flagValues struct {
	flags *pflag.FlagSet
}

func (v flagValues) text(name string) string {
	flag := v.flags.Lookup(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}

func (v flagValues) changed(name string) bool {
	return v.flags.Changed(name)
}

func (v flagValues) bool(name string) bool {
	value, err := v.flags.GetBool(name)
	return err == nil && value
}

func (v flagValues) required(name string) (string, error) {
	value := v.text(name)
	if value == "" {
		return "", fmt.Errorf("flag --%s must not be empty", name)
	}
	return value, nil
}

func (v flagValues) callsign() (domain.Callsign, error) {
	raw, err := v.required("callsign")
	if err != nil {
		return "", err
	}
	return domain.NormalizeCallsign(raw), nil
}

func buildRegisterAgent(v flagValues) (Command, error) {
	callsign, err := v.callsign()
	if err != nil {
		return nil, err
	}
	faction, err := domain.ParseFaction(v.text("faction"))
	if err != nil {
		return nil, err
	}
	return RegisterAgent{Callsign: callsign, Faction: faction}, nil
}

func buildLogin(v flagValues) (Command, error) {
	token, err := v.required("token")
	if err != nil {
		return nil, err
	}
	return Login{Token: token}, nil
}

func buildAgentInfo(v flagValues) (Command, error) {
	callsign, err := v.callsign()
	if err != nil {
		return nil, err
	}
	return AgentInfo{Callsign: callsign, Refresh: v.bool("refresh")}, nil
}

func buildListContracts(v flagValues) (Command, error) {
	callsign, err := v.callsign()
	if err != nil {
		return nil, err
	}
	return ListContracts{Callsign: callsign}, nil
}

func buildContractInfo(v flagValues) (Command, error) {
	callsign, err := v.callsign()
	if err != nil {
		return nil, err
	}
	id, err := v.required("id")
	if err != nil {
		return nil, err
	}
	return ContractInfo{Callsign: callsign, ID: id}, nil
}

func buildAcceptContract(v flagValues) (Command, error) {
	callsign, err := v.callsign()
	if err != nil {
		return nil, err
	}
	id, err := v.required("id")
	if err != nil {
		return nil, err
	}
	return AcceptContract{Callsign: callsign, ID: id}, nil
}

func buildListWaypoints(v flagValues) (Command, error) {
	system, err := v.required("system")
	if err != nil {
		return nil, err
	}

	query := domain.WaypointQuery{System: strings.ToUpper(system)}
	if v.changed("type") {
		waypointType, err := domain.ParseWaypointType(v.text("type"))
		if err != nil {
			return nil, err
		}
		query.Type = &waypointType
	}
	if v.changed("trait") {
		trait, err := domain.ParseWaypointTrait(v.text("trait"))
		if err != nil {
			return nil, err
		}
		query.Trait = &trait
	}
	return ListWaypoints{Query: query}, nil
}

func buildWaypointInfo(v flagValues) (Command, error) {
	symbol, err := v.required("waypoint")
	if err != nil {
		return nil, err
	}
	if _, err := domain.SystemOfWaypoint(symbol); err != nil {
		return nil, err
	}
	return WaypointInfo{Symbol: strings.ToUpper(symbol)}, nil
}
