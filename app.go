package main

import "github.com/masmgr/changereport-go/cmd"

func main() {
	cmd.Run()
}
