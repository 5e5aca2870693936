// Package environment reads the externally supplied parameters that are
// merged into the generated workflow: API token, LinkedIn username, Google
// Sheets identifiers and the optional Google credential reference.
//
// Every value is optional. Nothing here validates what it reads; a wrong
// token or sheet id only shows up once the workflow runs inside n8n.
package environment

import (
	"os"
	"strings"
)

// Recognized keys
const (
	KeyApifyToken           = "APIFY_TOKEN"
	KeyLinkedInUsername     = "LINKEDIN_USERNAME"
	KeyGoogleSheetID        = "GOOGLE_SHEET_ID"
	KeyGoogleSheetName      = "GOOGLE_SHEET_NAME"
	KeyGoogleCredentialID   = "GOOGLE_CREDENTIAL_ID"
	KeyGoogleCredentialName = "GOOGLE_CREDENTIAL_NAME"
)

// Keys lists every recognized key in declaration order
var Keys = []string{
	KeyApifyToken,
	KeyLinkedInUsername,
	KeyGoogleSheetID,
	KeyGoogleSheetName,
	KeyGoogleCredentialID,
	KeyGoogleCredentialName,
}

// DefaultGoogleSheetName is used when no sheet display name is supplied
const DefaultGoogleSheetName = "Data"

// Placeholders written into the document in place of missing values
const (
	PlaceholderApifyToken       = "YOUR_APIFY_TOKEN"
	PlaceholderLinkedInUsername = "YOUR_LINKEDIN_USERNAME"
	PlaceholderGoogleSheetID    = "YOUR_GOOGLE_SHEET_ID"
)

// Environment holds the parameters merged into the workflow.
// An empty field means the value was not supplied.
type Environment struct {
	ApifyToken           string
	LinkedInUsername     string
	GoogleSheetID        string
	GoogleSheetName      string
	GoogleCredentialID   string
	GoogleCredentialName string
}

// Source is a key/value lookup such as the process environment
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain lookup function to Source
type SourceFunc func(key string) (string, bool)

// Lookup implements Source
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// ProcessSource reads from the process environment
var ProcessSource Source = SourceFunc(os.LookupEnv)

// MapSource is an injected set of values, typically from a .env file or a test
type MapSource map[string]string

// Lookup implements Source
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain consults each source in order and returns the first non-empty value
type Chain []Source

// Lookup implements Source
func (c Chain) Lookup(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Read builds an Environment from src. It never fails.
func Read(src Source) Environment {
	env := Environment{
		ApifyToken:           lookup(src, KeyApifyToken),
		LinkedInUsername:     lookup(src, KeyLinkedInUsername),
		GoogleSheetID:        lookup(src, KeyGoogleSheetID),
		GoogleSheetName:      lookup(src, KeyGoogleSheetName),
		GoogleCredentialID:   lookup(src, KeyGoogleCredentialID),
		GoogleCredentialName: lookup(src, KeyGoogleCredentialName),
	}
	if env.GoogleSheetName == "" {
		env.GoogleSheetName = DefaultGoogleSheetName
	}
	return env
}

// FromProcess reads the Environment from the process environment
func FromProcess() Environment {
	return Read(ProcessSource)
}

func lookup(src Source, key string) string {
	if src == nil {
		return ""
	}
	v, ok := src.Lookup(key)
	if !ok {
		return ""
	}
	return v
}

// HasCredential reports whether a credential reference can be attached.
// Both the id and the display name are required; one without the other
// counts as no credential at all.
func (e Environment) HasCredential() bool {
	return e.GoogleCredentialID != "" && e.GoogleCredentialName != ""
}

// ApifyTokenOrPlaceholder returns the token or its placeholder
func (e Environment) ApifyTokenOrPlaceholder() string {
	return orDefault(e.ApifyToken, PlaceholderApifyToken)
}

// LinkedInUsernameOrPlaceholder returns the username or its placeholder
func (e Environment) LinkedInUsernameOrPlaceholder() string {
	return orDefault(e.LinkedInUsername, PlaceholderLinkedInUsername)
}

// GoogleSheetIDOrPlaceholder returns the spreadsheet id or its placeholder
func (e Environment) GoogleSheetIDOrPlaceholder() string {
	return orDefault(e.GoogleSheetID, PlaceholderGoogleSheetID)
}

// GoogleSheetNameOrDefault returns the sheet display name or "Data"
func (e Environment) GoogleSheetNameOrDefault() string {
	return orDefault(e.GoogleSheetName, DefaultGoogleSheetName)
}

// Redacted returns the values as log fields with the API token masked
func (e Environment) Redacted() map[string]interface{} {
	return map[string]interface{}{
		"apify_token":            mask(e.ApifyToken),
		"linkedin_username":      e.LinkedInUsername,
		"google_sheet_id":        e.GoogleSheetID,
		"google_sheet_name":      e.GoogleSheetName,
		"google_credential_id":   e.GoogleCredentialID,
		"google_credential_name": e.GoogleCredentialName,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func mask(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) <= 4:
		return strings.Repeat("*", len(secret))
	default:
		return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
	}
}
