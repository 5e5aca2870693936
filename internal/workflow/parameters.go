package workflow

import (
	"encoding/json"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Parameters is the per-kind parameter block of a node. The set of
// implementations is closed: one struct per node kind this package emits,
// plus RawParameters for decoded documents.
type Parameters interface {
	isParameters()
}

// Options is an empty n8n options object
type Options struct{}

// ManualTriggerParameters is the parameter block of the manual trigger; it is always empty
type ManualTriggerParameters struct{}

func (ManualTriggerParameters) isParameters() {}

// HTTPRequestParameters configures the n8n HTTP Request node
type HTTPRequestParameters struct {
	Method         string         `json:"method"`
	URL            string         `json:"url"`
	SendBody       bool           `json:"sendBody"`
	BodyParameters BodyParameters `json:"bodyParameters"`
	Options        Options        `json:"options"`
}

func (HTTPRequestParameters) isParameters() {}

// BodyParameters is the list of name/value pairs sent as the request body
type BodyParameters struct {
	Parameters []NameValue `json:"parameters"`
}

// NameValue is a single body parameter
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GoogleSheetsParameters configures the n8n Google Sheets node
type GoogleSheetsParameters struct {
	Operation  string          `json:"operation"`
	DocumentID ResourceLocator `json:"documentId"`
	SheetName  ResourceLocator `json:"sheetName"`
	Columns    ColumnMapping   `json:"columns"`
	Options    Options         `json:"options"`
}

func (GoogleSheetsParameters) isParameters() {}

// ResourceLocator is n8n's "__rl" reference to an external resource
type ResourceLocator struct {
	RL               bool   `json:"__rl"`
	Value            string `json:"value"`
	Mode             string `json:"mode"`
	CachedResultName string `json:"cachedResultName,omitempty"`
	CachedResultURL  string `json:"cachedResultUrl,omitempty"`
}

// ColumnMapping binds sheet columns to expressions over the incoming items
type ColumnMapping struct {
	MappingMode           string                            `json:"mappingMode"`
	Value                 *sequencedmap.Map[string, string] `json:"value"`
	MatchingColumns       []string                          `json:"matchingColumns"`
	Schema                []ColumnSchema                    `json:"schema"`
	AttemptToConvertTypes bool                              `json:"attemptToConvertTypes"`
	ConvertFieldsToString bool                              `json:"convertFieldsToString"`
}

// ColumnSchema describes one destination column
type ColumnSchema struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Required         bool   `json:"required"`
	DefaultMatch     bool   `json:"defaultMatch"`
	Display          bool   `json:"display"`
	Type             string `json:"type"`
	CanBeUsedToMatch bool   `json:"canBeUsedToMatch"`
}

// RawParameters holds an undecoded parameter block read back from a document
type RawParameters json.RawMessage

func (RawParameters) isParameters() {}

// MarshalJSON emits the stored bytes, or {} when empty
func (r RawParameters) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("{}"), nil
	}
	return []byte(r), nil
}
