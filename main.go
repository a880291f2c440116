package main

import "github.com/notargets/gowaves/cmd"

func main() {
	cmd.Execute()
}
