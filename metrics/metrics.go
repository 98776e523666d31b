package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/webbmaffian/go-chainmap/chainmap"
)

type StatsSource interface {
	Stats() chainmap.Stats
}

var _ StatsSource = (*chainmap.Table[string, string])(nil)

var (
	entriesDesc = prometheus.NewDesc(
		"chainmap_entries",
		"Number of distinct keys stored",
		[]string{"table"}, nil,
	)

	capacityDesc = prometheus.NewDesc(
		"chainmap_capacity",
		"Number of buckets",
		[]string{"table"}, nil,
	)

	resizesDesc = prometheus.NewDesc(
		"chainmap_resizes_total",
		"Number of times the bucket array has grown",
		[]string{"table"}, nil,
	)

	usedBucketsDesc = prometheus.NewDesc(
		"chainmap_used_buckets",
		"Number of buckets holding at least one entry",
		[]string{"table"}, nil,
	)

	collidedBucketsDesc = prometheus.NewDesc(
		"chainmap_collided_buckets",
		"Number of buckets holding more than one entry",
		[]string{"table"}, nil,
	)

	longestChainDesc = prometheus.NewDesc(
		"chainmap_longest_chain",
		"Length of the longest bucket chain",
		[]string{"table"}, nil,
	)

	loadFactorDesc = prometheus.NewDesc(
		"chainmap_load_factor",
		"Configured load factor",
		[]string{"table"}, nil,
	)
)

// Exports the stats of a table. A table is not safe for concurrent use, so
// the collector must only be gathered from the goroutine that owns it, e.g.
// by calling Gather on a dedicated registry.
type Collector struct {
	name string
	src  StatsSource
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(name string, src StatsSource) *Collector {
	return &Collector{
		name: name,
		src:  src,
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- entriesDesc
	ch <- capacityDesc
	ch <- resizesDesc
	ch <- usedBucketsDesc
	ch <- collidedBucketsDesc
	ch <- longestChainDesc
	ch <- loadFactorDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.GaugeValue, float64(s.Len), c.name)
	ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Cap), c.name)
	ch <- prometheus.MustNewConstMetric(resizesDesc, prometheus.CounterValue, float64(s.Resizes), c.name)
	ch <- prometheus.MustNewConstMetric(usedBucketsDesc, prometheus.GaugeValue, float64(s.UsedBuckets), c.name)
	ch <- prometheus.MustNewConstMetric(collidedBucketsDesc, prometheus.GaugeValue, float64(s.CollidedBuckets), c.name)
	ch <- prometheus.MustNewConstMetric(longestChainDesc, prometheus.GaugeValue, float64(s.LongestChain), c.name)
	ch <- prometheus.MustNewConstMetric(loadFactorDesc, prometheus.GaugeValue, s.LoadFactor, c.name)
}
