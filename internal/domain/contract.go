package domain

import "time"

type ContractType string

const (
	ContractTypeProcurement ContractType = "PROCUREMENT"
	ContractTypeTransport   ContractType = "TRANSPORT"
	ContractTypeShuttle     ContractType = "SHUTTLE"
)

type Payment struct {
	OnAccepted  int64
	OnFulfilled int64
}

type Deliverable struct {
	TradeSymbol       string
	DestinationSymbol string
	UnitsRequired     int
	UnitsFulfilled    int
}

func (d Deliverable) Remaining() int {
	if d.UnitsFulfilled >= d.UnitsRequired {
		return 0
	}
	return d.UnitsRequired - d.UnitsFulfilled
}

type ContractTerms struct {
	Deadline time.Time
	Payment  Payment
	Deliver  []Deliverable
}

// Contract is one agent's unit of work. Only the accept operation mutates
// it locally; every other field comes from the service.
type Contract struct {
	ID               string
	FactionSymbol    Faction
	Type             ContractType
	Terms            ContractTerms
	Accepted         bool
	Fulfilled        bool
	DeadlineToAccept time.Time
}

func (c Contract) Status() string {
	switch {
	case c.Fulfilled:
		return "fulfilled"
	case c.Accepted:
		return "accepted"
	default:
		return "open"
	}
}
