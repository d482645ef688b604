package main

import (
	"os"

	"github.com/glcompat/glcompat/cmd"
	"github.com/glcompat/glcompat/internal/logger"
)

func main() {
	err := cmd.Execute()
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
