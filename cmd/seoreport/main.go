// Package main provides the entry point for the seoreport CLI.
//
// seoreport turns the results of an SEO analysis into a client-ready report
// with an executive summary, metric tables, strengths and a prioritized
// action plan.
//
// Usage:
//
//	seoreport export results.json
//	seoreport export -f markdown -o report.md results.yaml
//
// See --help for all available options.
package main

// main is the entry point for seoreport.
func main() {
	Execute()
}
