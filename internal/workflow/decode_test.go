package workflow

import (
	"encoding/json"
	stderrors "errors"
	"slices"
	"testing"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	env := environment.Environment{
		ApifyToken:           "tok",
		GoogleSheetID:        "sheet",
		GoogleCredentialID:   "cred",
		GoogleCredentialName: "Google account",
	}
	exported, err := Export(env)
	require.NoError(t, err)

	doc, err := Decode([]byte(exported))
	require.NoError(t, err)

	assert.Equal(t, WorkflowName, doc.Name)
	assert.Equal(t, []string{NameManualTrigger, NameHTTPRequest, NameAppendRow}, nodeNames(doc.Nodes))
	assert.Equal(t, []string{NameManualTrigger, NameHTTPRequest, NameAppendRow}, slices.Collect(doc.Connections.Keys()))
	assert.Equal(t, 4.2, doc.Nodes[1].TypeVersion)
	assert.Equal(t, Position{448, 0}, doc.Nodes[2].Position)
	assert.Equal(t, CredentialRef{ID: "cred", Name: "Google account"}, doc.Nodes[2].Credentials[CredentialTypeGoogleSheets])
	assert.Empty(t, Validate(doc))

	// Re-encoding a decoded document reproduces the original text
	again, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, exported, string(again))
}

func TestDecode_ConnectionOrderPreserved(t *testing.T) {
	data := []byte(`{
		"name": "w",
		"nodes": [{"name": "b", "type": "x"}, {"name": "a", "type": "x"}],
		"connections": {
			"b": {"main": [[{"node": "a", "type": "main", "index": 0}]]},
			"a": {"main": [[]]}
		}
	}`)

	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, slices.Collect(doc.Connections.Keys()))
	assert.NotNil(t, doc.PinData)
	assert.Empty(t, Validate(doc))
}

func TestDecode_KeepsOtherPorts(t *testing.T) {
	data := []byte(`{
		"name": "w",
		"nodes": [{"name": "agent", "type": "x"}, {"name": "tool", "type": "x"}],
		"connections": {
			"tool": {"ai_tool": [[{"node": "agent", "type": "ai_tool", "index": 0}]]},
			"agent": {"main": [[]]}
		}
	}`)

	doc, err := Decode(data)
	require.NoError(t, err)

	tool, ok := doc.Connections.Get("tool")
	require.True(t, ok)
	assert.Nil(t, tool.Main)
	assert.Equal(t, []string{"ai_tool"}, tool.Ports())
	assert.Equal(t, [][]Connection{{{Node: "agent", Type: "ai_tool", Index: 0}}}, tool.Other["ai_tool"])

	problems := Validate(doc)
	require.Len(t, problems, 1, "%v", problems)
	assert.True(t, stderrors.Is(problems[0], errors.ErrInvalidWorkflow))
	assert.Contains(t, problems[0].Error(), `unsupported output port "ai_tool"`)

	encoded, err := Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"ai_tool": [`)
}

func TestNodeConnections_MarshalPortOrder(t *testing.T) {
	nc := NodeConnections{
		Main: [][]Connection{{}},
		Other: map[string][][]Connection{
			"ai_tool":  {{}},
			"ai_agent": {{}},
		},
	}

	data, err := json.Marshal(nc)
	require.NoError(t, err)
	assert.Equal(t, `{"main":[[]],"ai_agent":[[]],"ai_tool":[[]]}`, string(data))

	plain, err := json.Marshal(NodeConnections{Main: [][]Connection{{}}})
	require.NoError(t, err)
	assert.Equal(t, `{"main":[[]]}`, string(plain))
}

func TestDecode_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":             `{`,
		"connections not map":  `{"name": "w", "connections": []}`,
		"bad connection value": `{"name": "w", "connections": {"a": {"main": "x"}}}`,
		"nodes wrong type":     `{"name": "w", "nodes": {}}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrDecodeFailed), err.Error())
		})
	}
}
