package main

import "github.com/xdt99/hfe99/cmd"

func main() {
	cmd.Execute()
}
