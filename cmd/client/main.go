package main

import "pubdeck/cmd/client/cmd"

func main() {
	cmd.Execute()
}
