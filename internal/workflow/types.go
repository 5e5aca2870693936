package workflow

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Document is the exported n8n workflow
type Document struct {
	Name        string                 `json:"name"`
	Nodes       []Node                 `json:"nodes"`
	PinData     map[string]interface{} `json:"pinData"`
	Connections *Connections           `json:"connections"`
	Active      bool                   `json:"active"`
	Settings    Settings               `json:"settings"`
}

// Settings holds workflow-level settings
type Settings struct {
	ExecutionOrder string `json:"executionOrder"`
}

// Metadata is the fixed workflow-level configuration
type Metadata struct {
	Name     string
	Active   bool
	Settings Settings
}

// Position is a node's [x, y] location on the editor canvas
type Position [2]int

// Node is one step of the workflow. Name is the key used by Connections.
type Node struct {
	Parameters  Parameters  `json:"parameters"`
	Type        string      `json:"type"`
	TypeVersion float64     `json:"typeVersion"`
	Position    Position    `json:"position"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Credentials Credentials `json:"credentials,omitempty"`
}

// CredentialRef points at a credential stored in the n8n instance
type CredentialRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Credentials maps a credential type (e.g. googleSheetsOAuth2Api) to its reference
type Credentials map[string]CredentialRef

// PortMain is the only port type used by this workflow
const PortMain = "main"

// Connection is one edge into a destination node's input
type Connection struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// NodeConnections lists a node's output ports; each port is an ordered list of edges
type NodeConnections struct {
	Main  [][]Connection            `json:"main"`
	// Other holds ports besides main read from a decoded document, keyed by port type
	Other map[string][][]Connection `json:"-"`
}

// MarshalJSON writes main first, then any other ports sorted by name
func (nc NodeConnections) MarshalJSON() ([]byte, error) {
	type plain NodeConnections
	if len(nc.Other) == 0 {
		return json.Marshal(plain(nc))
	}

	ports := sequencedmap.New[string, [][]Connection]()
	if nc.Main != nil {
		ports.Set(PortMain, nc.Main)
	}
	for _, port := range slices.Sorted(maps.Keys(nc.Other)) {
		ports.Set(port, nc.Other[port])
	}
	return ports.MarshalJSON()
}

// UnmarshalJSON keeps every port; those other than main land in Other
func (nc *NodeConnections) UnmarshalJSON(data []byte) error {
	var ports map[string][][]Connection
	if err := json.Unmarshal(data, &ports); err != nil {
		return err
	}

	nc.Main = ports[PortMain]
	delete(ports, PortMain)
	nc.Other = nil
	if len(ports) > 0 {
		nc.Other = ports
	}
	return nil
}

// Ports returns the names of the non-main ports in sorted order
func (nc NodeConnections) Ports() []string {
	return slices.Sorted(maps.Keys(nc.Other))
}

// Connections maps a source node name to its outputs, keeping insertion order
type Connections = sequencedmap.Map[string, NodeConnections]

// NewConnections returns an empty ordered connection graph
func NewConnections() *Connections {
	return sequencedmap.New[string, NodeConnections]()
}
