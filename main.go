// Package main is the entry point for the iplstats CLI tool, which loads a
// historical IPL match dataset and computes player/team/venue/season
// statistics and comparisons.
package main

import "github.com/statzone/iplstats/cmd"

func main() {
	cmd.Execute()
}
