package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ramilsalihar/hospitalqueue/integration"
	"github.com/ramilsalihar/hospitalqueue/simulator"
)

func main() {
	configFile := flag.String("config", "", "Path to JSON configuration file (optional, defaults apply)")
	scenarioFile := flag.String("scenarios", "", "Path to YAML scenario sweep file (overrides single-run flags)")
	arrivalRate := flag.Float64("arrival-rate", 0, "Mean patient arrivals per hour (overrides config)")
	serviceRate := flag.Float64("service-rate", 0, "Mean patients served per hour (overrides config)")
	numHours := flag.Int("hours", -1, "Number of simulated clinic hours (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed for reproducibility (0 = time-based)")
	outputFile := flag.String("output", "", "Path to output JSON file (optional, prints to stdout if not specified)")
	flag.Parse()

	if *scenarioFile != "" {
		runSweep(*scenarioFile, *outputFile)
		return
	}

	config := simulator.DefaultConfig()
	if *configFile != "" {
		configData, err := os.ReadFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(configData, &config); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing config JSON: %v\n", err)
			os.Exit(1)
		}
	}

	// Flag overrides
	if *arrivalRate > 0 {
		config.AvgArrivalRate = *arrivalRate
	}
	if *serviceRate > 0 {
		config.AvgServiceRate = *serviceRate
	}
	if *numHours >= 0 {
		config.NumHours = *numHours
	}
	if *seed != 0 {
		config.RandomSeed = *seed
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Simulating %d hours (arrivals %.1f/h, service %.1f/h)...\n",
		config.NumHours, config.AvgArrivalRate, config.AvgServiceRate)
	startTime := time.Now()

	result, err := simulator.RunSimulation(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "Simulation completed in %v (%d patients)\n", elapsed, len(result.Records))

	results := map[string]interface{}{
		"config":       config,
		"patientCount": len(result.Records),
		"result":       result,
	}
	summary, err := simulator.GetStatistics(result)
	if err == nil {
		results["statistics"] = summary
	} else {
		// A zero-patient day is a valid run; report it without statistics.
		fmt.Fprintf(os.Stderr, "No statistics available: %v\n", err)
	}

	writeResults(results, *outputFile)
}

func runSweep(scenarioFile, outputFile string) {
	scenarios, err := integration.LoadScenarios(scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenarios: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Running %d scenarios...\n", len(scenarios))
	sweepResults, err := integration.Run(scenarios)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sweep failed: %v\n", err)
		os.Exit(1)
	}

	writeResults(map[string]interface{}{"scenarios": sweepResults}, outputFile)
}

func writeResults(results map[string]interface{}, outputFile string) {
	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling results: %v\n", err)
		os.Exit(1)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outputFile)
	} else {
		fmt.Println(string(output))
	}
}
