package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/vortexofdoom/go-life/life"
	"github.com/vortexofdoom/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fall back to the 8x8 defaults if the file
	// doesn't exist. Only the rendered board goes to stdout.
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "using default configuration: %v\n", err)
		}
		config = utils.DefaultConfig()
	}

	board := life.Random(config.Rows, config.Cols)
	if err := life.NewRenderer(os.Stdout).Render(board); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
