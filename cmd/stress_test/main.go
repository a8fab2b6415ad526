package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"
)

var paths = []string{
	"/",
	"/api/winning-numbers",
	"/api/stats",
	"/api/stats/7",
	"/api/stats/51",
	"/api/stats/abc",
}

type result struct {
	path    string
	status  int
	latency time.Duration
	err     error
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "base URL of a running instance")
	count := flag.Int("count", 200, "requests per path")
	concurrency := flag.Int("concurrency", 20, "concurrent workers")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- hit(client, *baseURL, path)
			}
		}()
	}

	go func() {
		for i := 0; i < *count; i++ {
			for _, p := range paths {
				jobs <- p
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	log.Printf("Sending %d requests with %d workers...", *count*len(paths), *concurrency)
	start := time.Now()

	statuses := map[string]map[int]int{}
	latencies := map[string][]time.Duration{}
	failures := 0
	for r := range results {
		if r.err != nil {
			failures++
			continue
		}
		if statuses[r.path] == nil {
			statuses[r.path] = map[int]int{}
		}
		statuses[r.path][r.status]++
		latencies[r.path] = append(latencies[r.path], r.latency)
	}

	log.Printf("Done in %s, %d transport failures", time.Since(start).Round(time.Millisecond), failures)
	for _, p := range paths {
		lat := latencies[p]
		sort.Slice(lat, func(i, j int) bool { return lat[i] < lat[j] })
		fmt.Printf("%-24s statuses=%v p50=%s p99=%s\n", p, statuses[p], percentile(lat, 50), percentile(lat, 99))
	}
}

func hit(client *http.Client, baseURL, path string) result {
	start := time.Now()
	resp, err := client.Get(baseURL + path) // #nosec G107 -- operator-supplied dev URL
	if err != nil {
		return result{path: path, err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return result{path: path, status: resp.StatusCode, latency: time.Since(start)}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	i := (len(sorted) - 1) * p / 100
	return sorted[i].Round(time.Microsecond)
}
