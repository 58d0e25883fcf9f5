package main

import (
	_ "time/tzdata"

	"syjonctl/cmd"
)

func main() {
	cmd.Execute()
}
