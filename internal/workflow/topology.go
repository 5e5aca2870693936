package workflow

// Node names. Connections are keyed by these, so the builder and the
// topology must use the same constants.
const (
	NameManualTrigger = "When clicking 'Execute workflow'"
	NameHTTPRequest   = "HTTP Request"
	NameAppendRow     = "Append row in sheet"
)

// Workflow-level constants
const (
	WorkflowName   = "Get LinkedIn and Twitter Posts"
	ExecutionOrder = "v1"
)

// DefaultMetadata returns the fixed workflow metadata
func DefaultMetadata() Metadata {
	return Metadata{
		Name:   WorkflowName,
		Active: false,
		Settings: Settings{
			ExecutionOrder: ExecutionOrder,
		},
	}
}

// DefaultConnections returns the linear chain
// trigger -> HTTP Request -> Append row in sheet.
// The terminal node keeps an entry with one empty output port.
func DefaultConnections() *Connections {
	conns := NewConnections()
	conns.Set(NameManualTrigger, NodeConnections{
		Main: [][]Connection{{{Node: NameHTTPRequest, Type: PortMain, Index: 0}}},
	})
	conns.Set(NameHTTPRequest, NodeConnections{
		Main: [][]Connection{{{Node: NameAppendRow, Type: PortMain, Index: 0}}},
	})
	conns.Set(NameAppendRow, NodeConnections{
		Main: [][]Connection{{}},
	})
	return conns
}
