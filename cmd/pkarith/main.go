package main

import (
	"os"

	"github.com/golang/glog"

	"pkarith/cmd/pkarith/commands"
)

func main() {
	err := commands.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
