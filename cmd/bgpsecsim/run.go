package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/topology"
	"github.com/Emeline-1/bgpsecsim/trial"
)

func parseRole(name string) (trial.AttackerRole, error) {
	switch name {
	case "hijack", "":
		return trial.RoleHijackNHops, nil
	case "forged":
		return trial.RoleForgedOrigin, nil
	case "leak":
		return trial.RoleRouteLeak, nil
	default:
		return 0, fmt.Errorf("unknown -role %q (want hijack, forged, leak)", name)
	}
}

// buildRecipe resolves cfg's -policy/-role/-deploy-* flags into a trial.Recipe,
// using g only to run the deployment-selection strategy against the actual
// topology being simulated.
func buildRecipe(cfg runConfig, g *asgraph.Graph) (trial.Recipe, error) {
	base, err := policyFactory(cfg.basePolicy)
	if err != nil {
		return trial.Recipe{}, err
	}
	role, err := parseRole(cfg.role)
	if err != nil {
		return trial.Recipe{}, err
	}
	recipe := trial.Recipe{BasePolicy: base, Role: role, HijackHops: cfg.hijackHops}

	if cfg.deployStrategy == "" {
		return recipe, nil
	}
	strategy, ok := parseStrategy(cfg.deployStrategy)
	if !ok {
		return trial.Recipe{}, fmt.Errorf("unknown -deploy-strategy %q (want topk, bottomk, random, tier12)", cfg.deployStrategy)
	}
	deployPolicy, err := policyFactory(cfg.deployPolicy)
	if err != nil {
		return trial.Recipe{}, err
	}

	if strategy == topology.UniformRandom {
		// Random deployment is redrawn fresh by Harness on every trial
		// (see Recipe.DeploymentPolicy), rather than fixed once here, so
		// that every trial in a batch samples an independent deployment
		// set instead of replaying the same one.
		recipe.DeploymentPolicy = deployPolicy
		recipe.DeploymentStrategy = strategy
		recipe.DeploymentFraction = cfg.deployFraction
		recipe.DeploymentSeed = cfg.deploySeed
		log.Printf("random deployment at fraction %.3f resampled per trial (seed %d)", cfg.deployFraction, cfg.deploySeed)
		return recipe, nil
	}

	selected := topology.SelectDeployment(g, cfg.deployFraction, strategy, nil)
	log.Printf("%s deployment at fraction %.3f covers %d ASes", cfg.deployStrategy, cfg.deployFraction, len(selected))

	recipe.Deployment = make(map[asgraph.ASID]trial.PolicyFactory, len(selected))
	for _, id := range selected {
		recipe.Deployment[id] = deployPolicy
	}
	return recipe, nil
}

// runTrials implements `bgpsecsim run`: load a topology, build a Recipe from
// the CLI's policy/deployment/role flags, and drain either a single
// (victim, attacker) pair or a -pairs batch through a trial.Harness.
func runTrials(args []string) {
	cfg := handleArgsRun(args)

	g, err := loadTopology(cfg.file, cfg.cacheFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d ASes", g.NumNodes())

	recipe, err := buildRecipe(cfg, g)
	if err != nil {
		log.Fatal(err)
	}

	pairs, err := trialList(cfg)
	if err != nil {
		log.Fatal(err)
	}

	h := trial.NewHarness(g, cfg.workers, recipe)
	go func() {
		for _, t := range pairs {
			h.Submit(t)
		}
		h.Stop()
	}()

	for r := range h.Results() {
		if r.Err != nil {
			log.Printf("victim=%s attacker=%s error: %v", r.Trial.Victim, r.Trial.Attacker, r.Err)
			continue
		}
		fmt.Printf("victim=%s attacker=%s success_rate=%s%%\n", r.Trial.Victim, r.Trial.Attacker, r.Value.FloatString(4))
	}
}

// trialList returns the (victim, attacker) pairs to run: either the single
// pair from -victim/-attacker, or every deduplicated pair read from -pairs.
func trialList(cfg runConfig) ([]trial.Trial, error) {
	if cfg.pairsFile == "" {
		return []trial.Trial{{Victim: asgraph.ASID(cfg.victim), Attacker: asgraph.ASID(cfg.attacker)}}, nil
	}

	f, err := os.Open(cfg.pairsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := trial.NewSeenSet()
	var pairs []trial.Trial
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed pairs line %q: want \"victim attacker\"", line)
		}
		victim, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed victim id %q: %w", fields[0], err)
		}
		attacker, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed attacker id %q: %w", fields[1], err)
		}
		t := trial.Trial{Victim: asgraph.ASID(victim), Attacker: asgraph.ASID(attacker)}
		if seen.AddIfAbsent(t) {
			pairs = append(pairs, t)
		}
	}
	return pairs, scanner.Err()
}
