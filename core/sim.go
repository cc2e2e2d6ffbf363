package core

import (
	"fmt"

	"github.com/encodeous/routesim/state"
)

// Reporter receives the simulator's outputs in order. The production
// reporter renders the classic text format; tests record structured
// results instead.
type Reporter interface {
	ReportTables(table state.RoutingTable) error
	ReportDeliveries(deliveries []Delivery) error
}

// Simulator sequences a whole run: initial convergence and replay, then
// one convergence and replay per topology change, in input order. The
// topology is never mutated while a compute call is in flight.
type Simulator struct {
	Env      *state.Env
	Engine   Engine
	Topology *state.Topology
	Messages []state.Message
	Changes  []state.Change
}

func (s *Simulator) Run(r Reporter) error {
	s.Env.Log.Info("starting simulation",
		"protocol", s.Engine.Protocol(),
		"nodes", s.Topology.Len(),
		"messages", len(s.Messages),
		"changes", len(s.Changes))

	if err := s.round(r); err != nil {
		return fmt.Errorf("initial convergence: %w", err)
	}

	for i, ch := range s.Changes {
		ApplyChange(s.Topology, ch)
		if ch.IsRemoval() {
			s.Env.Log.Debug("removed link", "a", ch.A, "b", ch.B)
		} else {
			s.Env.Log.Debug("set link", "a", ch.A, "b", ch.B, "cost", ch.Cost)
		}
		if err := s.round(r); err != nil {
			return fmt.Errorf("change %d (%s %s %d): %w", i+1, ch.A, ch.B, ch.Cost, err)
		}
	}

	s.Env.Log.Info("simulation complete")
	return nil
}

// round recomputes the routing table from the current topology, reports
// it, and replays every pending message against it.
func (s *Simulator) round(r Reporter) error {
	table, err := s.Engine.Compute(s.Env.Context, s.Topology)
	if err != nil {
		return err
	}
	if state.DBG_log_tables {
		s.Env.Log.Debug("computed tables", "table", table)
	}
	if err := r.ReportTables(table); err != nil {
		return err
	}

	deliveries := make([]Delivery, 0, len(s.Messages))
	for _, msg := range s.Messages {
		d, err := Forward(table, msg)
		if err != nil {
			return fmt.Errorf("forwarding %s -> %s: %w", msg.Source, msg.Dest, err)
		}
		deliveries = append(deliveries, d)
	}
	return r.ReportDeliveries(deliveries)
}
