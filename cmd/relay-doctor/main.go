package main

import "github.com/clevertree/relay-clients/cmd/relay-doctor/cmd"

func main() {
	cmd.Execute()
}
