package grammar

import (
	"fmt"
	"strings"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

const ProgramName = "st"

type ArgKind int

const (
	ArgText ArgKind = iota
	ArgBool
	ArgCallsign
	ArgContractID
	ArgFaction
	ArgWaypointType
	ArgWaypointTrait
	ArgSystem
	ArgWaypoint
)

// Choices returns the closed set of accepted values, or nil for free-form
// arguments.
func (k ArgKind) Choices() []string {
	switch k {
	case ArgFaction:
		return domain.FactionFlagValues()
	case ArgWaypointType:
		return domain.WaypointTypeFlagValues()
	case ArgWaypointTrait:
		return domain.WaypointTraitFlagValues()
	default:
		return nil
	}
}

func (k ArgKind) placeholder() string {
	switch k {
	case ArgCallsign:
		return "callsign"
	case ArgContractID:
		return "id"
	case ArgFaction:
		return "faction"
	case ArgWaypointType:
		return "type"
	case ArgWaypointTrait:
		return "trait"
	case ArgSystem:
		return "system"
	case ArgWaypoint:
		return "waypoint"
	default:
		return "value"
	}
}

// Arg is a named flag of a leaf command.
type Arg struct {
	Name     string
	Kind     ArgKind
	Required bool
	Usage    string
}

// Node is one point of the command grammar. A node either has children or
// builds a Command from its flags.
type Node struct {
	Name     string
	Summary  string
	Long     string
	Args     []Arg
	Children []*Node

	build func(flagValues) (Command, error)
}

func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

func (n *Node) Child(name string) (*Node, bool) {
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

func (n *Node) Arg(name string) (Arg, bool) {
	for _, arg := range n.Args {
		if arg.Name == name {
			return arg, true
		}
	}
	return Arg{}, false
}

// ChildNames lists the subcommand names in declaration order.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		names = append(names, child.Name)
	}
	return names
}

func (n *Node) synopsis() string {
	parts := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		var part string
		if arg.Kind == ArgBool {
			part = "--" + arg.Name
		} else {
			part = fmt.Sprintf("--%s <%s>", arg.Name, arg.Kind.placeholder())
		}
		if !arg.Required {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

var callsignArg = Arg{Name: "callsign", Kind: ArgCallsign, Required: true, Usage: "agent callsign"}

var contractIDArg = Arg{Name: "id", Kind: ArgContractID, Required: true, Usage: "contract id"}

var root = &Node{
	Name:    ProgramName,
	Summary: "Manage SpaceTraders agents, contracts and systems",
	Children: []*Node{
		{
			Name:    "account",
			Summary: "Account level operations",
			Children: []*Node{
				{
					Name:    "register",
					Summary: "Register a new agent",
					Args: []Arg{
						{Name: "callsign", Kind: ArgCallsign, Required: true, Usage: "callsign of the new agent"},
						{Name: "faction", Kind: ArgFaction, Required: true, Usage: "starting faction"},
					},
					build: buildRegisterAgent,
				},
				{
					Name:    "login",
					Summary: "Replace the stored account token",
					Args: []Arg{
						{Name: "token", Kind: ArgText, Required: true, Usage: "account token"},
					},
					build: buildLogin,
				},
			},
		},
		{
			Name:    "agent",
			Summary: "Inspect known agents",
			Children: []*Node{
				{
					Name:    "list-agents",
					Summary: "List the callsigns of every known agent",
					build:   func(flagValues) (Command, error) { return ListAgents{}, nil },
				},
				{
					Name:    "info",
					Summary: "Show an agent",
					Args: []Arg{
						callsignArg,
						{Name: "refresh", Kind: ArgBool, Usage: "fetch the agent even when cached"},
					},
					build: buildAgentInfo,
				},
			},
		},
		{
			Name:    "contract",
			Summary: "Inspect and accept contracts",
			Children: []*Node{
				{
					Name:    "list",
					Summary: "List an agent's contracts",
					Args:    []Arg{callsignArg},
					build:   buildListContracts,
				},
				{
					Name:    "info",
					Summary: "Show one contract",
					Args:    []Arg{callsignArg, contractIDArg},
					build:   buildContractInfo,
				},
				{
					Name:    "accept",
					Summary: "Accept a contract",
					Args:    []Arg{callsignArg, contractIDArg},
					build:   buildAcceptContract,
				},
			},
		},
		{
			Name:    "system",
			Summary: "Browse systems and waypoints",
			Children: []*Node{
				{
					Name:    "list-waypoints",
					Summary: "List the waypoints of a system",
					Long:    "Accepted traits:\n" + wrapWords(domain.WaypointTraitFlagValues(), 76),
					Args: []Arg{
						{Name: "system", Kind: ArgSystem, Required: true, Usage: "system symbol, e.g. X1-DF55"},
						{Name: "type", Kind: ArgWaypointType, Usage: "only waypoints of this type"},
						{Name: "trait", Kind: ArgWaypointTrait, Usage: "only waypoints with this trait"},
					},
					build: buildListWaypoints,
				},
				{
					Name:    "waypoint-info",
					Summary: "Show one waypoint",
					Args: []Arg{
						{Name: "waypoint", Kind: ArgWaypoint, Required: true, Usage: "waypoint symbol, e.g. X1-DF55-20250Z"},
					},
					build: buildWaypointInfo,
				},
			},
		},
		{
			Name:    "version",
			Summary: "Print version information",
			build:   func(flagValues) (Command, error) { return ShowVersion{}, nil },
		},
	},
}

// Root returns the static grammar. Callers must not modify it.
func Root() *Node {
	return root
}

// Find resolves a space separated command path.
func Find(path string) (*Node, bool) {
	node := root
	for _, name := range strings.Fields(path) {
		child, ok := node.Child(name)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Paths lists every command path, branches before their children.
func Paths() []string {
	var paths []string
	var walk func(prefix string, node *Node)
	walk = func(prefix string, node *Node) {
		for _, child := range node.Children {
			path := strings.TrimSpace(prefix + " " + child.Name)
			paths = append(paths, path)
			walk(path, child)
		}
	}
	walk("", root)
	return paths
}

func wrapWords(words []string, width int) string {
	var b strings.Builder
	line := 0
	for i, word := range words {
		if line > 0 && line+len(word)+2 > width {
			b.WriteString(",\n")
			line = 0
		} else if i > 0 {
			b.WriteString(", ")
			line += 2
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
