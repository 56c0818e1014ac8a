// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/coldbrewgames/vecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := vecs.NewRegistry(numEntities)
		for j := 0; j < numEntities; j++ {
			_, _ = vecs.Create4(r, comp1{}, comp2{}, comp3{}, comp4{})
		}
		view := vecs.NewView4[comp1, comp2, comp3, comp4](r)

		for k := 0; k < iters; k++ {
			_ = view.Each(func(h vecs.Handle, c1 *comp1, c2 *comp2, c3 *comp3, c4 *comp4) bool {
				c1.V += c2.V
				c1.W += c2.W
				return true
			})
		}
	}
}
