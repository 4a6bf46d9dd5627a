package main

import (
	"github.com/humanbelnik/moviefav/internal/app"
	"github.com/humanbelnik/moviefav/internal/config"
)

func main() {
	app.Go(config.Load())
}
