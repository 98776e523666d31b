package metrics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/webbmaffian/go-chainmap/chainmap"
)

type fixedStats chainmap.Stats

func (s fixedStats) Stats() chainmap.Stats {
	return chainmap.Stats(s)
}

func TestCollect(t *testing.T) {
	c := NewCollector("test", fixedStats{
		Len:             14,
		Cap:             32,
		LoadFactor:      0.75,
		GrowthFactor:    2,
		Resizes:         1,
		UsedBuckets:     12,
		CollidedBuckets: 2,
		LongestChain:    2,
	})

	want := `
# HELP chainmap_capacity Number of buckets
# TYPE chainmap_capacity gauge
chainmap_capacity{table="test"} 32
# HELP chainmap_entries Number of distinct keys stored
# TYPE chainmap_entries gauge
chainmap_entries{table="test"} 14
# HELP chainmap_resizes_total Number of times the bucket array has grown
# TYPE chainmap_resizes_total counter
chainmap_resizes_total{table="test"} 1
`

	if err := testutil.CollectAndCompare(c, strings.NewReader(want), "chainmap_capacity", "chainmap_entries", "chainmap_resizes_total"); err != nil {
		t.Error(err)
	}

	if n := testutil.CollectAndCount(c); n != 7 {
		t.Errorf("expected 7 metrics, got %d", n)
	}
}

func TestCollectTable(t *testing.T) {
	m, err := chainmap.New[string, int]()

	if err != nil {
		t.Fatal(err)
	}

	defer m.Close()

	for i := 0; i < 20; i++ {
		if err = m.Put(fmt.Sprint(i), i); err != nil {
			t.Fatal(err)
		}
	}

	reg := prometheus.NewPedanticRegistry()

	if err = reg.Register(NewCollector("table", m)); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()

	if err != nil {
		t.Fatal(err)
	}

	values := make(map[string]float64)

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetGauge() != nil:
				values[mf.GetName()] = metric.GetGauge().GetValue()
			case metric.GetCounter() != nil:
				values[mf.GetName()] = metric.GetCounter().GetValue()
			}
		}
	}

	if values["chainmap_entries"] != 20 {
		t.Errorf("expected 20 entries, got %v", values["chainmap_entries"])
	}

	if values["chainmap_capacity"] != float64(m.Cap()) {
		t.Errorf("expected capacity %d, got %v", m.Cap(), values["chainmap_capacity"])
	}

	if values["chainmap_resizes_total"] != 1 {
		t.Errorf("expected 1 resize, got %v", values["chainmap_resizes_total"])
	}
}
