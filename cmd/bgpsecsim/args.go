package main

import (
	"flag"
	"os"
)

// handleArgsTopology parses `bgpsecsim topology`'s flags, in the teacher's
// args.go shape: one FlagSet per subcommand, os.Exit(-1) on missing
// required arguments.
func handleArgsTopology(args []string) (file, cacheFile, strategy string, fraction float64, seed int64) {
	if len(args) == 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	cmd := flag.NewFlagSet("topology", flag.ExitOnError)
	cmd.StringVar(&file, "f", "", "CAIDA as-rel file describing the topology (required)")
	cmd.StringVar(&cacheFile, "cache", "", "sqlite file caching parsed as-rel edges across runs")
	cmd.StringVar(&strategy, "strategy", "", "deployment strategy to preview: topk, bottomk, random, tier12")
	cmd.Float64Var(&fraction, "fraction", 0.1, "fraction of ASes to select for -strategy")
	cmd.Int64Var(&seed, "seed", 0, "rng seed for -strategy random (0 means unseeded/time-based)")
	cmd.Parse(args)

	if file == "" {
		println("Missing required -f <as-rel file>")
		os.Exit(-1)
	}
	return
}

// runConfig is every flag bgpsecsim run accepts, gathered into one struct so
// run.go's builder functions don't have to thread a dozen return values.
type runConfig struct {
	file, cacheFile string

	victim, attacker uint
	pairsFile        string

	role       string
	hijackHops int

	basePolicy string

	deployPolicy   string
	deployStrategy string
	deployFraction float64
	deploySeed     int64

	workers int
}

func handleArgsRun(args []string) runConfig {
	if len(args) == 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	var cfg runConfig
	cmd := flag.NewFlagSet("run", flag.ExitOnError)
	cmd.StringVar(&cfg.file, "f", "", "CAIDA as-rel file describing the topology (required)")
	cmd.StringVar(&cfg.cacheFile, "cache", "", "sqlite file caching parsed as-rel edges across runs")

	cmd.UintVar(&cfg.victim, "victim", 0, "victim AS id (ignored if -pairs is set)")
	cmd.UintVar(&cfg.attacker, "attacker", 0, "attacker AS id (ignored if -pairs is set)")
	cmd.StringVar(&cfg.pairsFile, "pairs", "", "file of \"victim attacker\" lines to run as a batch, instead of -victim/-attacker")

	cmd.StringVar(&cfg.role, "role", "hijack", "attack family: hijack, forged, leak")
	cmd.IntVar(&cfg.hijackHops, "n", 1, "truthful hop count for -role hijack")

	cmd.StringVar(&cfg.basePolicy, "policy", "default", "baseline policy for every AS: default, rpki, pathend, bgpsec-low, bgpsec-med, bgpsec-high, aspa, ascones")

	cmd.StringVar(&cfg.deployPolicy, "deploy-policy", "", "policy installed on the selected deployment set, overriding -policy there")
	cmd.StringVar(&cfg.deployStrategy, "deploy-strategy", "", "deployment selection: topk, bottomk, random, tier12 (omit for no partial deployment)")
	cmd.Float64Var(&cfg.deployFraction, "deploy-fraction", 0.1, "fraction of ASes in the deployment set")
	cmd.Int64Var(&cfg.deploySeed, "deploy-seed", 0, "rng seed for -deploy-strategy random")

	cmd.IntVar(&cfg.workers, "workers", 8, "trial harness worker count")
	cmd.Parse(args)

	if cfg.file == "" {
		println("Missing required -f <as-rel file>")
		os.Exit(-1)
	}
	if cfg.pairsFile == "" && cfg.victim == 0 {
		println("Missing -victim (or -pairs)")
		os.Exit(-1)
	}
	return cfg
}

func handleArgsExplain(args []string) (file, cacheFile string, victim uint) {
	if len(args) == 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	cmd := flag.NewFlagSet("explain", flag.ExitOnError)
	cmd.StringVar(&file, "f", "", "CAIDA as-rel file describing the topology (required)")
	cmd.StringVar(&cacheFile, "cache", "", "sqlite file caching parsed as-rel edges across runs")
	cmd.UintVar(&victim, "victim", 0, "victim AS id whose inbound path tree to print (required)")
	cmd.Parse(args)

	if file == "" || victim == 0 {
		println("Missing required -f <as-rel file> and -victim <id>")
		os.Exit(-1)
	}
	return
}
