package main

import (
	"os"

	"bilsim/internal/game"
	"bilsim/internal/logger"
)

func main() {
	log := logger.New("bilsim")

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(2)
	}
	if err := game.RunDesktop(cfg, log); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
