package main

import "github.com/claimready/claimready/cmd/claimready/cmd"

func main() {
	cmd.Execute()
}
