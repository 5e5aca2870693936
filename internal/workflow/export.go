package workflow

import (
	"fmt"
	"io"

	"github.com/deploymenttheory/go-n8n-composer/internal/environment"
	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
	"github.com/deploymenttheory/go-n8n-composer/internal/jsonutil"
)

// Assemble combines the metadata, the nodes built from env and the connection
// graph into a new Document. Node names are not checked against the graph.
func Assemble(env environment.Environment) *Document {
	meta := DefaultMetadata()

	return &Document{
		Name:        meta.Name,
		Nodes:       BuildNodes(env),
		PinData:     map[string]interface{}{},
		Connections: DefaultConnections(),
		Active:      meta.Active,
		Settings:    meta.Settings,
	}
}

// Encode serializes doc as 2-space indented JSON without a trailing newline
func Encode(doc *Document) ([]byte, error) {
	return jsonutil.Marshal(doc)
}

// Export assembles and serializes the workflow for env. Identical input
// always yields byte-identical output.
func Export(env environment.Environment) (string, error) {
	data, err := Encode(Assemble(env))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportTo writes the exported workflow to w
func ExportTo(w io.Writer, env environment.Environment) error {
	data, err := Encode(Assemble(env))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return nil
}
