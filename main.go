package main

import "github.com/talqui/cx-insight/cmd"

func main() {
	cmd.Execute()
}
