package workflow

import (
	"slices"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeNames(nodes []Node) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return names
}

func TestBuildNodes_FixedOrder(t *testing.T) {
	envs := map[string]environment.Environment{
		"empty": {},
		"read":  environment.Read(environment.MapSource{}),
		"full": {
			ApifyToken:           "tok",
			LinkedInUsername:     "alice",
			GoogleSheetID:        "sheet1",
			GoogleSheetName:      "Posts",
			GoogleCredentialID:   "cred",
			GoogleCredentialName: "Google account",
		},
	}

	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			nodes := BuildNodes(env)
			require.Len(t, nodes, 3)
			assert.Equal(t, []string{NameManualTrigger, NameHTTPRequest, NameAppendRow}, nodeNames(nodes))
			assert.Equal(t, []string{TypeManualTrigger, TypeHTTPRequest, TypeGoogleSheets},
				[]string{nodes[0].Type, nodes[1].Type, nodes[2].Type})
			assert.Equal(t, []string{NodeID(SeedManualTrigger), NodeID(SeedHTTPRequest), NodeID(SeedAppendRow)},
				[]string{nodes[0].ID, nodes[1].ID, nodes[2].ID})
		})
	}
}

func TestBuildNodes_TriggerHasNoParameters(t *testing.T) {
	nodes := BuildNodes(environment.Environment{})
	assert.Equal(t, ManualTriggerParameters{}, nodes[0].Parameters)
	assert.Equal(t, Position{0, 0}, nodes[0].Position)
	assert.Nil(t, nodes[0].Credentials)
}

func TestBuildNodes_HTTPRequest(t *testing.T) {
	t.Run("with token and username", func(t *testing.T) {
		nodes := BuildNodes(environment.Environment{ApifyToken: "tok123", LinkedInUsername: "alice"})
		params, ok := nodes[1].Parameters.(HTTPRequestParameters)
		require.True(t, ok)

		assert.Equal(t, "POST", params.Method)
		assert.True(t, strings.HasSuffix(params.URL, "token=tok123"), params.URL)
		assert.True(t, params.SendBody)
		assert.Equal(t, []NameValue{{Name: "username", Value: "alice"}}, params.BodyParameters.Parameters)
	})

	t.Run("placeholders", func(t *testing.T) {
		nodes := BuildNodes(environment.Environment{})
		params := nodes[1].Parameters.(HTTPRequestParameters)

		assert.Equal(t,
			"https://api.apify.com/v2/acts/apimaestro~linkedin-profile-posts/run-sync-get-dataset-items?token=YOUR_APIFY_TOKEN",
			params.URL)
		assert.Equal(t, environment.PlaceholderLinkedInUsername, params.BodyParameters.Parameters[0].Value)
	})
}

func TestBuildNodes_AppendRow(t *testing.T) {
	t.Run("sheet id present", func(t *testing.T) {
		nodes := BuildNodes(environment.Environment{GoogleSheetID: "sheet1", GoogleSheetName: "Posts"})
		params, ok := nodes[2].Parameters.(GoogleSheetsParameters)
		require.True(t, ok)

		assert.Equal(t, "append", params.Operation)
		assert.Equal(t, ResourceLocator{RL: true, Value: "sheet1", Mode: "id"}, params.DocumentID)
		assert.Equal(t, "gid=0", params.SheetName.Value)
		assert.Equal(t, "list", params.SheetName.Mode)
		assert.Equal(t, "Posts", params.SheetName.CachedResultName)
		assert.Equal(t, "https://docs.google.com/spreadsheets/d/sheet1/edit#gid=0", params.SheetName.CachedResultURL)
	})

	t.Run("sheet id absent uses placeholder", func(t *testing.T) {
		nodes := BuildNodes(environment.Environment{})
		params := nodes[2].Parameters.(GoogleSheetsParameters)

		assert.Equal(t, environment.PlaceholderGoogleSheetID, params.DocumentID.Value)
		assert.Contains(t, params.SheetName.CachedResultURL, environment.PlaceholderGoogleSheetID)
		assert.NotContains(t, params.SheetName.CachedResultURL, "/d//")
		assert.Equal(t, environment.DefaultGoogleSheetName, params.SheetName.CachedResultName)
	})

	t.Run("column mapping", func(t *testing.T) {
		nodes := BuildNodes(environment.Environment{})
		columns := nodes[2].Parameters.(GoogleSheetsParameters).Columns

		assert.Equal(t, "defineBelow", columns.MappingMode)
		assert.Equal(t, []string{"Date", "URL", "Text", "Id"}, slices.Collect(columns.Value.Keys()))

		expr, ok := columns.Value.Get("Id")
		require.True(t, ok)
		assert.Equal(t, "={{ $json.full_urn }}", expr)

		require.Len(t, columns.Schema, 4)
		for i, id := range []string{"Id", "Date", "Text", "URL"} {
			assert.Equal(t, id, columns.Schema[i].ID)
			assert.Equal(t, id, columns.Schema[i].DisplayName)
			assert.Equal(t, "string", columns.Schema[i].Type)
			assert.True(t, columns.Schema[i].CanBeUsedToMatch)
		}
		assert.NotNil(t, columns.MatchingColumns)
		assert.Empty(t, columns.MatchingColumns)
	})
}

func TestBuildNodes_CredentialGate(t *testing.T) {
	tests := []struct {
		name string
		env  environment.Environment
		want Credentials
	}{
		{name: "neither", env: environment.Environment{}},
		{name: "id only", env: environment.Environment{GoogleCredentialID: "cred"}},
		{name: "name only", env: environment.Environment{GoogleCredentialName: "Google account"}},
		{
			name: "both",
			env:  environment.Environment{GoogleCredentialID: "cred", GoogleCredentialName: "Google account"},
			want: Credentials{CredentialTypeGoogleSheets: {ID: "cred", Name: "Google account"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := BuildNodes(tt.env)
			assert.Equal(t, tt.want, nodes[2].Credentials)
			assert.Nil(t, nodes[0].Credentials)
			assert.Nil(t, nodes[1].Credentials)
		})
	}
}
