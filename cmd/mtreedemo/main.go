// Package main provides a command-line demo that builds an M-tree
// over random 2D points and reports the nearest neighbors of a query.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/scigolib/mtree"
	"github.com/scigolib/mtree/metric"
)

type point [2]float64

func main() {
	count := flag.Int("n", 1000, "number of random points to index")
	limit := flag.Int("limit", 5, "number of nearest neighbors to report")
	radius := flag.Float64("radius", 1e9, "maximum distance to consider")
	seed := flag.Uint64("seed", 1, "random seed for point generation")
	flag.Parse()

	if *count < 1 {
		log.Fatalf("invalid point count: %d", *count)
	}

	tree, err := mtree.New[point](func(a, b point) float64 {
		return metric.Euclidean(a[:], b[:])
	})
	if err != nil {
		log.Fatalf("failed to build tree: %v", err)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	points := make([]point, 0, *count)
	for len(points) < *count {
		p := point{rng.Float64() * 1000, rng.Float64() * 1000}
		if err := tree.Add(p); err != nil {
			continue // duplicate coordinate, retry
		}
		points = append(points, p)
	}

	query := point{rng.Float64() * 1000, rng.Float64() * 1000}
	fmt.Printf("Indexed %d points. Querying near (%.2f, %.2f):\n", tree.Len(), query[0], query[1])

	i := 0
	for p, d := range tree.GetNearest(query, mtree.WithRange(*radius), mtree.WithLimit(*limit)) {
		fmt.Printf("%d. (%.2f, %.2f) distance=%.4f\n", i+1, p[0], p[1], d)
		i++
	}

	stats := tree.Stats()
	fmt.Printf("height=%d nodes=%d entries=%d avg_fill=%.2f\n",
		stats.Height, stats.NodeCount, stats.EntryCount, stats.AvgFillFactor)
}
