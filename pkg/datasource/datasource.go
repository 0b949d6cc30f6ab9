// Package datasource implements the pluggable connectors that produce raw
// data for dataloads, and the registry resolving a datasource id to its
// handler.
package datasource

import (
	"context"

	"github.com/cubestats/analytics/pkg/api"
)

// Built-in datasource type codes. External handlers live in the
// ExternalPrefix namespace and cannot collide with these.
const (
	TypeInternalFile = 1
	TypeInternalDB   = 2
	TypeGit          = 3
	TypeExternalFile = 4
	TypeRegex        = 5
	TypeJSON         = 6
)

// ExternalPrefix namespaces ids of externally registered handlers on the
// wire, keeping the original clients' id contract intact.
const ExternalPrefix = "99"

type Datasource interface {
	Name() string
	Template() []api.TemplateField
	ReadData(ctx context.Context, options map[string]string) (*api.ReadResult, error)
}
