package main

import (
	"os"

	"github.com/recordsettings/recordsettings/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
