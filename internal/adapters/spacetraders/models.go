package spacetraders

import (
	"time"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

type envelope[T any] struct {
	Data T     `json:"data"`
	Meta *meta `json:"meta,omitempty"`
}

type meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type errorEnvelope struct {
	Error struct {
		Message string         `json:"message"`
		Code    int            `json:"code"`
		Data    map[string]any `json:"data,omitempty"`
	} `json:"error"`
}

type registerRequest struct {
	Symbol  string `json:"symbol"`
	Faction string `json:"faction"`
}

type registerResponse struct {
	Token string    `json:"token"`
	Agent agentJSON `json:"agent"`
}

type agentJSON struct {
	AccountID       string `json:"accountId"`
	Symbol          string `json:"symbol"`
	Headquarters    string `json:"headquarters"`
	Credits         int64  `json:"credits"`
	StartingFaction string `json:"startingFaction"`
	ShipCount       int    `json:"shipCount"`
}

type contractJSON struct {
	ID            string `json:"id"`
	FactionSymbol string `json:"factionSymbol"`
	Type          string `json:"type"`
	Terms         struct {
		Deadline time.Time `json:"deadline"`
		Payment  struct {
			OnAccepted  int64 `json:"onAccepted"`
			OnFulfilled int64 `json:"onFulfilled"`
		} `json:"payment"`
		Deliver []struct {
			TradeSymbol       string `json:"tradeSymbol"`
			DestinationSymbol string `json:"destinationSymbol"`
			UnitsRequired     int    `json:"unitsRequired"`
			UnitsFulfilled    int    `json:"unitsFulfilled"`
		} `json:"deliver"`
	} `json:"terms"`
	Accepted         bool      `json:"accepted"`
	Fulfilled        bool      `json:"fulfilled"`
	DeadlineToAccept time.Time `json:"deadlineToAccept"`
}

type acceptResponse struct {
	Agent    agentJSON    `json:"agent"`
	Contract contractJSON `json:"contract"`
}

type waypointJSON struct {
	Symbol       string `json:"symbol"`
	Type         string `json:"type"`
	SystemSymbol string `json:"systemSymbol"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Orbitals     []struct {
		Symbol string `json:"symbol"`
	} `json:"orbitals"`
	Traits []struct {
		Symbol string `json:"symbol"`
	} `json:"traits"`
	Faction *struct {
		Symbol string `json:"symbol"`
	} `json:"faction,omitempty"`
	Chart *struct {
		SubmittedBy string `json:"submittedBy"`
	} `json:"chart,omitempty"`
}

func (a agentJSON) toDomain() domain.Agent {
	return domain.Agent{
		Symbol:          a.Symbol,
		AccountID:       a.AccountID,
		Headquarters:    a.Headquarters,
		Credits:         a.Credits,
		StartingFaction: domain.Faction(a.StartingFaction),
		ShipCount:       a.ShipCount,
	}
}

func (c contractJSON) toDomain() domain.Contract {
	deliver := make([]domain.Deliverable, 0, len(c.Terms.Deliver))
	for _, item := range c.Terms.Deliver {
		deliver = append(deliver, domain.Deliverable{
			TradeSymbol:       item.TradeSymbol,
			DestinationSymbol: item.DestinationSymbol,
			UnitsRequired:     item.UnitsRequired,
			UnitsFulfilled:    item.UnitsFulfilled,
		})
	}

	return domain.Contract{
		ID:            c.ID,
		FactionSymbol: domain.Faction(c.FactionSymbol),
		Type:          domain.ContractType(c.Type),
		Terms: domain.ContractTerms{
			Deadline: c.Terms.Deadline,
			Payment: domain.Payment{
				OnAccepted:  c.Terms.Payment.OnAccepted,
				OnFulfilled: c.Terms.Payment.OnFulfilled,
			},
			Deliver: deliver,
		},
		Accepted:         c.Accepted,
		Fulfilled:        c.Fulfilled,
		DeadlineToAccept: c.DeadlineToAccept,
	}
}

// toDomain keeps unknown type and trait symbols verbatim so new values
// from the service still display.
func (w waypointJSON) toDomain() domain.Waypoint {
	waypoint := domain.Waypoint{
		Symbol:       w.Symbol,
		SystemSymbol: w.SystemSymbol,
		Type:         domain.WaypointType(w.Type),
		X:            w.X,
		Y:            w.Y,
	}
	for _, orbital := range w.Orbitals {
		waypoint.Orbitals = append(waypoint.Orbitals, orbital.Symbol)
	}
	for _, trait := range w.Traits {
		waypoint.Traits = append(waypoint.Traits, domain.WaypointTrait(trait.Symbol))
	}
	if w.Faction != nil {
		waypoint.Faction = domain.Faction(w.Faction.Symbol)
	}
	if w.Chart != nil {
		waypoint.Charted = true
		waypoint.ChartedBy = w.Chart.SubmittedBy
	}
	return waypoint
}
