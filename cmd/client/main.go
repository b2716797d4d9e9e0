package main

import "goldkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
