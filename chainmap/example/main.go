package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/webbmaffian/go-chainmap/chainmap"
	"github.com/webbmaffian/go-chainmap/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	cfg, err := loadConfig(os.Getenv)

	if err != nil {
		log.Fatal(err)
	}

	opts := cfg.options()

	if cfg.Verbose {
		opts = append(opts, chainmap.WithLogger(log.Default()))
	}

	m, err := chainmap.New[string, string](opts...)

	if err != nil {
		log.Fatal(err)
	}

	defer m.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector("example", m))

	if err = run(m, cfg.Keys, newProgress(os.Stdout, cfg.Keys)); err != nil {
		log.Println(err)
		return
	}

	families, err := reg.Gather()

	if err != nil {
		log.Println(err)
		return
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetGauge() != nil:
				log.Println(mf.GetName(), "=", metric.GetGauge().GetValue())
			case metric.GetCounter() != nil:
				log.Println(mf.GetName(), "=", metric.GetCounter().GetValue())
			}
		}
	}
}

func run(m *chainmap.Table[string, string], keys int, p *progress) (err error) {
	for i := 0; i < keys; i++ {
		if err = m.Put(fmt.Sprintf("testkey%d", i), fmt.Sprintf("testvalue%d", i)); err != nil {
			return
		}

		p.update(i+1, m.Stats())
	}

	log.Println("Used size:", m.Len())

	val, ok, err := m.Get("testkey1")

	if err != nil {
		return
	}

	log.Printf("Value of testkey1: %q (found: %v)", val, ok)

	entries := m.EntrySet()

	for bucket := 0; bucket < m.Cap(); bucket++ {
		if n := m.ChainLen(bucket); n > 1 {
			log.Printf("Bucket %d holds a chain of %d entries", bucket, n)
		}
	}

	log.Println("Entry set size:", len(entries))

	return
}
