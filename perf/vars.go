package perf

import (
	"expvar"

	"github.com/encodeous/metric"
)

var (
	DvPasses       = metric.NewCounter("1m1s")
	DvRelaxations  = metric.NewCounter("1m1s")
	DijkstraRuns   = metric.NewCounter("1m1s")
	TracedHops     = metric.NewCounter("1m1s")
	ChangesApplied = metric.NewCounter("1m1s")
)

func init() {
	expvar.Publish("routesim:DvPasses", DvPasses)
	expvar.Publish("routesim:DvRelaxations", DvRelaxations)
	expvar.Publish("routesim:DijkstraRuns", DijkstraRuns)
	expvar.Publish("routesim:TracedHops", TracedHops)
	expvar.Publish("routesim:ChangesApplied", ChangesApplied)
}
