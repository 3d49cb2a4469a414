package main

import (
	"os"

	"github.com/aqualab/meterconsole/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
