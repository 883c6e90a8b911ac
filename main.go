package main

import "github.com/in0ni/hamster/cmd"

func main() {
	cmd.Execute()
}
