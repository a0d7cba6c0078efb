package main

import "linkhoard/cmd/linkhoard-cli/cmd"

func main() {
	cmd.Execute()
}
