// rootsweep scans a range of modulus sizes for NTT-friendly primes,
// computes a primitive root for each one, re-verifies the generator
// conditions, and writes the results as JSONL plus an HTML chart of the
// search cost.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"modarith/internal/randutil"
	"modarith/modulus"
	"modarith/primesearch"
)

// Row is one swept prime, as serialized to the JSONL output.
type Row struct {
	Bits         int      `json:"Bits"`
	Prime        uint64   `json:"Prime"`
	Root         uint64   `json:"Root"`
	Factors      []uint64 `json:"Factors"`
	SearchMicros float64  `json:"SearchMicros"`
	FermatChecks int      `json:"FermatChecks"`
	OK           bool     `json:"OK"`
}

func main() {
	bitsMin := flag.Int("bits-min", 20, "smallest modulus size (bits)")
	bitsMax := flag.Int("bits-max", 45, "largest modulus size (bits)")
	nthRoot := flag.Int("nthroot", 1<<16, "required NTT length: primes satisfy p = 1 mod nthroot")
	count := flag.Int("count", 2, "primes per bit size")
	budget := flag.Int("budget", 1<<20, "candidate budget per bit size")
	spotChecks := flag.Int("spotchecks", 8, "random Fermat checks per prime")
	jsonlPath := flag.String("jsonl", "rootsweep.jsonl", "JSONL output path")
	htmlPath := flag.String("html", "rootsweep.html", "HTML chart output path")
	flag.Parse()

	if *bitsMin > *bitsMax {
		log.Fatalf("rootsweep: bits-min %d exceeds bits-max %d", *bitsMin, *bitsMax)
	}

	rows, err := sweep(*bitsMin, *bitsMax, *nthRoot, *count, *budget, *spotChecks)
	if err != nil {
		log.Fatalf("rootsweep: %v", err)
	}
	if err := writeJSONL(*jsonlPath, rows); err != nil {
		log.Fatalf("rootsweep: %v", err)
	}
	if err := writeChart(*htmlPath, rows); err != nil {
		log.Fatalf("rootsweep: %v", err)
	}
	fmt.Printf("swept %d primes, wrote %s and %s\n", len(rows), *jsonlPath, *htmlPath)
}

func sweep(bitsMin, bitsMax, nthRoot, count, budget, spotChecks int) ([]Row, error) {
	prng := randutil.NewSeeded("rootsweep/fermat")

	var rows []Row
	for bits := bitsMin; bits <= bitsMax; bits++ {
		primes, err := primesearch.Find(bits, nthRoot, count, budget)
		if err != nil {
			return nil, fmt.Errorf("bits %d: %w", bits, err)
		}
		for _, p := range primes {
			s := modulus.NewStatic(p)

			start := time.Now()
			g := s.PrimitiveRoot()
			elapsed := time.Since(start)

			row := Row{
				Bits:         bits,
				Prime:        p,
				Root:         g,
				Factors:      modulus.PrimeFactors(p - 1),
				SearchMicros: float64(elapsed.Microseconds()),
				FermatChecks: spotChecks,
				OK:           verifyRoot(s, g, spotChecks, prng),
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// verifyRoot re-checks the subgroup conditions for g and runs a few
// random Fermat checks x^(p-1) = 1 as an independent sanity pass.
func verifyRoot(s modulus.Static, g uint64, spotChecks int, prng utils.PRNG) bool {
	p := s.Modulus()
	for _, q := range modulus.PrimeFactors(p - 1) {
		if s.PowUint64(g, (p-1)/q) == s.One() {
			return false
		}
	}
	if s.PowUint64(g, p-1) != s.One() {
		return false
	}
	for i := 0; i < spotChecks; i++ {
		x := 1 + randutil.Uint64n(prng, p-1)
		if s.PowUint64(x, p-1) != s.One() {
			return false
		}
	}
	return true
}

func writeJSONL(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal row: %w", err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return w.Flush()
}

func writeChart(path string, rows []Row) error {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Primitive-root search cost",
			Subtitle: "NTT-friendly primes, search time vs. modulus size",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "modulus bits", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "search µs", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	items := make([]opts.ScatterData, 0, len(rows))
	for _, row := range rows {
		items = append(items, opts.ScatterData{
			Name:  fmt.Sprintf("p=%d g=%d", row.Prime, row.Root),
			Value: []interface{}{row.Bits, row.SearchMicros},
		})
	}
	sc.AddSeries("search", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 7}),
	)

	page := components.NewPage().SetPageTitle("Primitive-root sweep")
	page.AddCharts(sc)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
