package domain

// Faction is a starting faction, stored as its service symbol.
type Faction string

const (
	FactionCosmic   Faction = "COSMIC"
	FactionVoid     Faction = "VOID"
	FactionGalactic Faction = "GALACTIC"
	FactionQuantum  Faction = "QUANTUM"
	FactionDominion Faction = "DOMINION"
	FactionAstro    Faction = "ASTRO"
	FactionCorsairs Faction = "CORSAIRS"
	FactionObsidian Faction = "OBSIDIAN"
	FactionAegis    Faction = "AEGIS"
	FactionUnited   Faction = "UNITED"
	FactionSolitary Faction = "SOLITARY"
	FactionCobalt   Faction = "COBALT"
	FactionOmega    Faction = "OMEGA"
	FactionEcho     Faction = "ECHO"
	FactionLords    Faction = "LORDS"
	FactionCult     Faction = "CULT"
	FactionAncients Faction = "ANCIENTS"
	FactionShadow   Faction = "SHADOW"
	FactionEthereal Faction = "ETHEREAL"
)

var factions = []Faction{
	FactionCosmic,
	FactionVoid,
	FactionGalactic,
	FactionQuantum,
	FactionDominion,
	FactionAstro,
	FactionCorsairs,
	FactionObsidian,
	FactionAegis,
	FactionUnited,
	FactionSolitary,
	FactionCobalt,
	FactionOmega,
	FactionEcho,
	FactionLords,
	FactionCult,
	FactionAncients,
	FactionShadow,
	FactionEthereal,
}

// Factions returns every faction in declaration order.
func Factions() []Faction {
	return append([]Faction(nil), factions...)
}

// FactionFlagValues returns the accepted command-line spellings.
func FactionFlagValues() []string {
	return flagNames(factions)
}

// ParseFaction accepts either the command-line spelling ("cosmic") or the
// service symbol ("COSMIC").
func ParseFaction(raw string) (Faction, error) {
	return parseSymbolic("faction", factions, raw)
}

func (f Faction) Valid() bool {
	return containsSymbolic(factions, f)
}

// Symbol is the service representation.
func (f Faction) Symbol() string {
	return string(f)
}

// Flag is the command-line representation.
func (f Faction) Flag() string {
	return flagName(f)
}

func (f Faction) String() string {
	return f.Flag()
}
