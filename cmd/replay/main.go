// Command replay re-simulates a recorded session headlessly and prints the
// outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/replay"
	"github.com/milk9111/wavefall/sim"
)

func main() {
	tuningPath := flag.String("tuning", "", "tuning file to play with (defaults to the embedded tuning.yaml)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-tuning file] <recording>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	session, err := replay.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var opts sim.Options
	if *tuningPath != "" {
		data, err := os.ReadFile(*tuningPath)
		if err != nil {
			log.Fatalf("failed to read tuning %s: %v", *tuningPath, err)
		}
		t, err := prefabs.ParseTuning(data)
		if err != nil {
			log.Fatal(err)
		}
		opts.Tuning = t
	}

	res, err := replay.Play(session, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("seed:    %d\n", session.Seed)
	fmt.Printf("inputs:  %d\n", len(session.Inputs))
	fmt.Printf("ticks:   %d\n", res.Ticks)
	fmt.Printf("outcome: %s\n", res.Outcome)
	fmt.Printf("score:   %d\n", res.Score)
	fmt.Printf("wave:    %d\n", res.Wave)
	fmt.Printf("kills:   %d\n", res.Kills)
	fmt.Printf("damage:  %d\n", res.Damage)
}
