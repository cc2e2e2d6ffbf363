package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	ComputeLatency    = metric.NewHistogram("1m1s")
	ConvergenceSweeps = metric.NewHistogram("1m1s")
	FrontierPops      = metric.NewHistogram("1m1s")
	TablesComputed    = metric.NewCounter("10s1s")
	MessagesForwarded = metric.NewCounter("10s1s")
	ChangesApplied    = metric.NewCounter("10s1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("routesim:ComputeLatency (µs)", ComputeLatency)
	expvar.Publish("routesim:ConvergenceSweeps", ConvergenceSweeps)
	expvar.Publish("routesim:FrontierPops", FrontierPops)
	expvar.Publish("routesim:TablesComputed", TablesComputed)
	expvar.Publish("routesim:MessagesForwarded", MessagesForwarded)
	expvar.Publish("routesim:ChangesApplied", ChangesApplied)
}
