package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/encodeous/routesim/state"
)

// Renderer writes the classic simulator output format:
//
//	<destination> <nextHop> <cost>    per node, both in ascending id order,
//	                                  one blank line after each node block;
//	from <src> to <dst> cost <cost> hops <h...> message <text>
//	                                  per message in input order, one blank
//	                                  line after the whole message block.
//
// Unreachable destinations simply have no table line; an unreachable
// message renders cost infinite and hops unreachable.
type Renderer struct {
	W io.Writer
}

func (r *Renderer) ReportTables(table state.RoutingTable) error {
	var sb strings.Builder
	for _, n := range table.Nodes() {
		for _, d := range table.Destinations(n) {
			e, _ := table.Lookup(n, d)
			fmt.Fprintf(&sb, "%s %s %d\n", d, e.NextHop, e.Cost)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.W, sb.String())
	return err
}

func (r *Renderer) ReportDeliveries(deliveries []Delivery) error {
	if len(deliveries) == 0 {
		// the table block's trailing blank line already separates sections
		return nil
	}
	var sb strings.Builder
	for _, d := range deliveries {
		sb.WriteString(FormatDelivery(d))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(r.W, sb.String())
	return err
}

func FormatDelivery(d Delivery) string {
	m := d.Message
	if !d.Reachable {
		return fmt.Sprintf("from %s to %s cost infinite hops unreachable message %s", m.Source, m.Dest, m.Text)
	}
	return fmt.Sprintf("from %s to %s cost %d hops %s message %s", m.Source, m.Dest, d.Cost, joinIds(d.Hops), m.Text)
}
