package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the report printer Graft node.
const NodeID graft.ID = "adapter.report_printer"

func init() {
	graft.Register(graft.Node[ports.ReportPrinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportPrinter, error) {
			return NewPrinter(nil), nil
		},
	})
}
