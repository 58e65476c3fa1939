package main

import (
	"os"
	"strconv"

	"github.com/akmonengine/affine/internal/logging"
)

func main() {
	logger := logging.NewDefaultLogger("orbit", os.Getenv("DEBUG") != "")

	path := "example/orbit/scene.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	if frames := os.Getenv("FRAMES"); frames != "" {
		n, err := strconv.Atoi(frames)
		if err != nil || n <= 0 {
			logger.Errorf("invalid FRAMES value %q", frames)
			os.Exit(1)
		}
		cfg.Frames = n
	}

	scene := NewScene(cfg, logger)
	logger.Infof("loaded %d entities from %s, %d frames", len(scene.Entities), path, scene.Frames)

	if err := scene.Run(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
