package main

import "github.com/kamal-hamza/sx-cli/cmd"

func main() {
	cmd.Execute()
}
