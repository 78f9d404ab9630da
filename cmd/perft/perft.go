// perft.go walks the move-generation tree of strictly legal moves to a
// given depth and counts the visited leaf nodes, for comparing against
// known-good perft results.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/treepeck/shogi/position"
)

// perft counts leaf nodes depth plies below p, applying and undoing each
// candidate move in place rather than copying the position (Position has
// no cheap value-copy the way a 15-uint64 chess board does, since its
// move history and per-square board grid make a full copy expensive).
func perft(p *position.Position, depth int) int {
	moveList := p.GenerateLegalMoves()
	if depth == 1 {
		return len(moveList)
	}

	nodes := 0
	for _, m := range moveList {
		// classifyRepetition-triggered errors still apply the move; only a
		// genuine legality error means the move was never in moveList, so
		// this call cannot return one and MakeMove's error is discarded.
		p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// perftDivide prints, for each root move, the leaf count below it, and
// returns the total.
func perftDivide(p *position.Position, depth int) int {
	moveList := p.GenerateLegalMoves()
	total := 0
	for _, m := range moveList {
		p.MakeMove(m)
		var cnt int
		if depth == 1 {
			cnt = 1
		} else {
			cnt = perft(p, depth-1)
		}
		p.UnmakeMove()
		log.Printf("%s %d", m.String(), cnt)
		total += cnt
	}
	return total
}

func main() {
	depth := flag.Int("depth", 1, "perft search depth")
	sfenFlag := flag.String("sfen", position.StartSFEN, "starting SFEN")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	p, err := position.ParseSFEN(*sfenFlag)
	if err != nil {
		log.Fatalf("cannot parse starting SFEN: %v", err)
	}

	start := time.Now()
	nodes := perftDivide(p, *depth)
	elapsed := time.Since(start)

	log.Printf("Nodes reached: %d", nodes)
	log.Printf("Elapsed time: %s", elapsed)
}
