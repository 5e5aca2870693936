package workflow

import (
	"fmt"

	"github.com/deploymenttheory/go-n8n-composer/internal/errors"
)

// Validate checks that a document is internally consistent: every node has
// a unique name, every connection source and destination names a node, and
// only the main output port is used.
// All problems are returned; an empty slice means the document is consistent.
func Validate(doc *Document) []error {
	var errs []error

	if doc == nil {
		return []error{fmt.Errorf("%w: document is nil", errors.ErrInvalidWorkflow)}
	}

	if doc.Name == "" {
		errs = append(errs, fmt.Errorf("%w: workflow name is required", errors.ErrInvalidWorkflow))
	}

	if len(doc.Nodes) == 0 {
		errs = append(errs, fmt.Errorf("%w: workflow must contain at least one node", errors.ErrInvalidWorkflow))
	}

	names := make(map[string]bool, len(doc.Nodes))
	for i, node := range doc.Nodes {
		if node.Name == "" {
			errs = append(errs, fmt.Errorf("%w: node %d: name is required", errors.ErrInvalidWorkflow, i+1))
			continue
		}
		if node.Type == "" {
			errs = append(errs, fmt.Errorf("%w: node %d (%s): type is required", errors.ErrInvalidWorkflow, i+1, node.Name))
		}
		if names[node.Name] {
			errs = append(errs, fmt.Errorf("%w: node %d: duplicate name %q", errors.ErrInvalidWorkflow, i+1, node.Name))
		}
		names[node.Name] = true
	}

	if doc.Connections == nil {
		return errs
	}

	for source, nc := range doc.Connections.All() {
		if !names[source] {
			errs = append(errs, fmt.Errorf("%w: connection source %q is not a node", errors.ErrInvalidWorkflow, source))
		}
		for _, port := range nc.Ports() {
			errs = append(errs, fmt.Errorf("%w: %s: unsupported output port %q", errors.ErrInvalidWorkflow, source, port))
		}
		for port, edges := range nc.Main {
			for _, edge := range edges {
				if !names[edge.Node] {
					errs = append(errs, fmt.Errorf("%w: %s output %d: destination %q is not a node", errors.ErrInvalidWorkflow, source, port, edge.Node))
				}
				if edge.Type != PortMain {
					errs = append(errs, fmt.Errorf("%w: %s output %d: unsupported connection type %q", errors.ErrInvalidWorkflow, source, port, edge.Type))
				}
				if edge.Index < 0 {
					errs = append(errs, fmt.Errorf("%w: %s output %d: negative input index %d", errors.ErrInvalidWorkflow, source, port, edge.Index))
				}
			}
		}
	}

	return errs
}
