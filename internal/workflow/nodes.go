package workflow

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// n8n node types and versions
const (
	TypeManualTrigger = "n8n-nodes-base.manualTrigger"
	TypeHTTPRequest   = "n8n-nodes-base.httpRequest"
	TypeGoogleSheets  = "n8n-nodes-base.googleSheets"

	VersionManualTrigger = 1
	VersionHTTPRequest   = 4.2
	VersionGoogleSheets  = 4.7
)

// Seeds for NodeID, one per node
const (
	SeedManualTrigger = "manual-trigger"
	SeedHTTPRequest   = "http-request"
	SeedAppendRow     = "google-sheets-append"
)

// CredentialTypeGoogleSheets is the n8n credential type used by the append node
const CredentialTypeGoogleSheets = "googleSheetsOAuth2Api"

const (
	apifyRunURL      = "https://api.apify.com/v2/acts/apimaestro~linkedin-profile-posts/run-sync-get-dataset-items?token=%s"
	sheetDisplayURL  = "https://docs.google.com/spreadsheets/d/%s/edit#gid=0"
	firstSheetSelect = "gid=0"
)

// sheetColumns are the destination columns in schema order
var sheetColumns = []string{"Id", "Date", "Text", "URL"}

// BuildNodes returns the trigger, HTTP request and sheet append nodes, in that order.
// Missing environment values are replaced by placeholders; it never fails.
func BuildNodes(env environment.Environment) []Node {
	return []Node{
		manualTriggerNode(),
		httpRequestNode(env),
		appendRowNode(env),
	}
}

func manualTriggerNode() Node {
	return Node{
		Parameters:  ManualTriggerParameters{},
		Type:        TypeManualTrigger,
		TypeVersion: VersionManualTrigger,
		Position:    Position{0, 0},
		ID:          NodeID(SeedManualTrigger),
		Name:        NameManualTrigger,
	}
}

func httpRequestNode(env environment.Environment) Node {
	return Node{
		Parameters: HTTPRequestParameters{
			Method:   "POST",
			URL:      fmt.Sprintf(apifyRunURL, env.ApifyTokenOrPlaceholder()),
			SendBody: true,
			BodyParameters: BodyParameters{
				Parameters: []NameValue{
					{Name: "username", Value: env.LinkedInUsernameOrPlaceholder()},
				},
			},
		},
		Type:        TypeHTTPRequest,
		TypeVersion: VersionHTTPRequest,
		Position:    Position{208, 0},
		ID:          NodeID(SeedHTTPRequest),
		Name:        NameHTTPRequest,
	}
}

func appendRowNode(env environment.Environment) Node {
	sheetID := env.GoogleSheetIDOrPlaceholder()

	node := Node{
		Parameters: GoogleSheetsParameters{
			Operation: "append",
			DocumentID: ResourceLocator{
				RL:    true,
				Value: sheetID,
				Mode:  "id",
			},
			SheetName: ResourceLocator{
				RL:               true,
				Value:            firstSheetSelect,
				Mode:             "list",
				CachedResultName: env.GoogleSheetNameOrDefault(),
				CachedResultURL:  fmt.Sprintf(sheetDisplayURL, sheetID),
			},
			Columns: postColumns(),
		},
		Type:        TypeGoogleSheets,
		TypeVersion: VersionGoogleSheets,
		Position:    Position{448, 0},
		ID:          NodeID(SeedAppendRow),
		Name:        NameAppendRow,
	}

	if env.HasCredential() {
		node.Credentials = Credentials{
			CredentialTypeGoogleSheets: {
				ID:   env.GoogleCredentialID,
				Name: env.GoogleCredentialName,
			},
		}
	}

	return node
}

// postColumns maps the Apify post fields onto the sheet columns
func postColumns() ColumnMapping {
	value := sequencedmap.New(
		sequencedmap.NewElem("Date", "={{ $json.posted_at.date }}"),
		sequencedmap.NewElem("URL", "={{ $json.url }}"),
		sequencedmap.NewElem("Text", "={{ $json.text }}"),
		sequencedmap.NewElem("Id", "={{ $json.full_urn }}"),
	)

	schema := make([]ColumnSchema, 0, len(sheetColumns))
	for _, column := range sheetColumns {
		schema = append(schema, ColumnSchema{
			ID:               column,
			DisplayName:      column,
			Required:         false,
			DefaultMatch:     false,
			Display:          true,
			Type:             "string",
			CanBeUsedToMatch: true,
		})
	}

	return ColumnMapping{
		MappingMode:     "defineBelow",
		Value:           value,
		MatchingColumns: []string{},
		Schema:          schema,
	}
}
