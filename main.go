package main

import "github.com/byterings/gid/cmd"

func main() {
	cmd.Execute()
}
