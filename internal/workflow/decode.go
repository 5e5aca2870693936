package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
)

// Decode parses an exported workflow document. Node parameters are kept as
// RawParameters; connection keys keep their order from the input.
func Decode(data []byte) (*Document, error) {
	var raw struct {
		Name        string                 `json:"name"`
		Nodes       []decodedNode          `json:"nodes"`
		PinData     map[string]interface{} `json:"pinData"`
		Connections json.RawMessage        `json:"connections"`
		Active      bool                   `json:"active"`
		Settings    Settings               `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrDecodeFailed, err.Error())
	}

	conns, err := decodeConnections(raw.Connections)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(raw.Nodes))
	for _, n := range raw.Nodes {
		nodes = append(nodes, Node{
			Parameters:  RawParameters(n.Parameters),
			Type:        n.Type,
			TypeVersion: n.TypeVersion,
			Position:    n.Position,
			ID:          n.ID,
			Name:        n.Name,
			Credentials: n.Credentials,
		})
	}

	pinData := raw.PinData
	if pinData == nil {
		pinData = map[string]interface{}{}
	}

	return &Document{
		Name:        raw.Name,
		Nodes:       nodes,
		PinData:     pinData,
		Connections: conns,
		Active:      raw.Active,
		Settings:    raw.Settings,
	}, nil
}

type decodedNode struct {
	Parameters  json.RawMessage `json:"parameters"`
	Type        string          `json:"type"`
	TypeVersion float64         `json:"typeVersion"`
	Position    Position        `json:"position"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Credentials Credentials     `json:"credentials"`
}

// decodeConnections reads the connections object token by token so the
// resulting map keeps the source key order.
func decodeConnections(data json.RawMessage) (*Connections, error) {
	conns := NewConnections()
	if len(data) == 0 || string(data) == "null" {
		return conns, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: connections: %s", errors.ErrDecodeFailed, err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: connections must be an object", errors.ErrDecodeFailed)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: connections: %s", errors.ErrDecodeFailed, err.Error())
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: connections: unexpected key %v", errors.ErrDecodeFailed, keyTok)
		}

		var nc NodeConnections
		if err := dec.Decode(&nc); err != nil {
			return nil, fmt.Errorf("%w: connections[%q]: %s", errors.ErrDecodeFailed, key, err.Error())
		}

		// Last value wins for repeated keys, as with encoding/json maps.
		if conns.Has(key) {
			conns.Delete(key)
		}
		conns.Set(key, nc)
	}

	return conns, nil
}
