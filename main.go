package main

import (
	"github.com/akmami/readsim/cmd"
)

func main() {
	cmd.Execute()
}
