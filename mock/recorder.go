package mock

import (
	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
)

// Recorder captures simulator reports for assertions. Reports arrive in
// run order: index 0 is the initial round, index i is the round after the
// i-th change.
type Recorder struct {
	Tables     []state.RoutingTable
	Deliveries [][]core.Delivery
}

func (r *Recorder) ReportTables(table state.RoutingTable) error {
	r.Tables = append(r.Tables, table)
	return nil
}

func (r *Recorder) ReportDeliveries(deliveries []core.Delivery) error {
	r.Deliveries = append(r.Deliveries, deliveries)
	return nil
}
