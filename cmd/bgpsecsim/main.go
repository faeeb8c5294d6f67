// Command bgpsecsim loads an AS-relationship topology and runs hijack or
// route-leak trials against it under a chosen routing-security deployment,
// the way the teacher's main.go dispatches Anaximander's rib_parsing/
// strategy/simulation subcommands from a switch on os.Args[1].
package main

import (
	"log"
	"os"
)

func usage() {
	println("\nUsage of bgpsecsim:\n")
	println("bgpsecsim has three modes:")
	println("  - topology: load and validate a CAIDA as-rel file, report tiers and a deployment selection.")
	println("  - run: run hijack/route-leak trials against a topology under a policy mix.")
	println("  - explain: print the as-path tree every AS ends up with to a given victim.\n")
	println("Type")
	println("  ./bgpsecsim [mode] -h")
	println("for further information on each mode.\n")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}
	switch command := os.Args[1]; command {
	case "topology":
		runTopology(os.Args[2:])
	case "run":
		runTrials(os.Args[2:])
	case "explain":
		runExplain(os.Args[2:])
	case "-h", "--help":
		usage()
	default:
		log.Println("Unknown command:", command)
		log.Println("Type './bgpsecsim -h' for help.")
	}
}
