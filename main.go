package main

import (
	"os"

	"github.com/amberwatch/amberwatch/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
