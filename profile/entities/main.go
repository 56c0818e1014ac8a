// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/coldbrewgames/vecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := vecs.NewRegistry(numEntities)

		for j := 0; j < iters; j++ {
			handles := make([]vecs.Handle, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				h, _ := vecs.Create2(r, comp1{}, comp2{})
				handles = append(handles, h)
			}
			view := vecs.NewView2[comp1, comp2](r)
			_ = view.Each(func(h vecs.Handle, c1 *comp1, c2 *comp2) bool {
				c1.V += c2.V
				c1.W += c2.W
				return true
			})
			for _, h := range handles {
				_ = r.Erase(h)
			}
		}
	}
}
