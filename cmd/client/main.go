package main

import (
	"safetylog/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
