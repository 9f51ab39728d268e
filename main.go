package main

import (
	"github.com/paceread/cadence/cmd"
	"github.com/paceread/cadence/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
