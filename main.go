// Package main is the entry point for the garoustats CLI tool, which loads
// werewolf game logs and computes player rankings and achievements.
package main

import "github.com/maeel/garoustats/cmd"

func main() {
	cmd.Execute()
}
