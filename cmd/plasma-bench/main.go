// Command plasma-bench times frame rendering across raster sizes and
// compositor worker counts. All scenarios share one set of height maps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"plasma/internal/plasma"
)

type scenario struct {
	width   int
	height  int
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d workers=%d", s.width, s.height, s.workers)
}

type scenarioResult struct {
	scenario scenario
	frames   int
	total    time.Duration
}

func (r scenarioResult) perFrame() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.total / time.Duration(r.frames)
}

func main() {
	frames := flag.Int("frames", 120, "frames to render per scenario")
	mapSize := flag.Int("map-size", plasma.DefaultMapSize, "height map side length")
	sizes := flag.String("sizes", "128x128,320x200,512x512", "comma-separated WxH rasters")
	workers := flag.String("workers", "1,2,4,"+strconv.Itoa(runtime.NumCPU()), "comma-separated worker counts")
	flag.Parse()

	rasters, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal(err)
	}
	counts, err := parseInts(*workers)
	if err != nil {
		log.Fatal(err)
	}

	cache := plasma.NewMapCache()
	start := time.Now()
	cache.Get(*mapSize)
	fmt.Printf("Height maps %dx%d generated in %v\n", *mapSize, *mapSize, time.Since(start).Round(time.Millisecond))

	var results []scenarioResult
	for _, r := range rasters {
		for _, w := range counts {
			sc := scenario{width: r[0], height: r[1], workers: w}
			res, err := measure(cache, *mapSize, sc, *frames)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v: %v\n", sc, err)
				continue
			}
			results = append(results, res)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].scenario, results[j].scenario
		if a.width*a.height != b.width*b.height {
			return a.width*a.height < b.width*b.height
		}
		return a.workers < b.workers
	})
	fmt.Println("Results:")
	for _, r := range results {
		fps := 0.0
		if pf := r.perFrame(); pf > 0 {
			fps = float64(time.Second) / float64(pf)
		}
		fmt.Printf("  %-28s %10v/frame  %8.1f fps\n", r.scenario, r.perFrame(), fps)
	}
}

// measure renders frames back to back, bypassing the frame clock.
func measure(cache *plasma.MapCache, mapSize int, sc scenario, frames int) (scenarioResult, error) {
	cfg := plasma.DefaultConfig()
	cfg.MapSize = mapSize
	cfg.RenderWidth = sc.width
	cfg.RenderHeight = sc.height
	cfg.Workers = sc.workers
	session, err := plasma.NewSession(cfg, plasma.WithMapCache(cache), plasma.WithLogger(nil))
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{scenario: sc, frames: frames}
	start := time.Now()
	for i := 0; i < frames; i++ {
		session.Render(int64(i) * 50)
	}
	res.total = time.Since(start)
	return res, nil
}

func parseSizes(list string) ([][2]int, error) {
	var out [][2]int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("size %q is not WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		out = append(out, [2]int{w, h})
	}
	return out, nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("worker count %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
