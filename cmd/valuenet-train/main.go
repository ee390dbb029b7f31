package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/montplusa/reversi-engine/pkg/ai/valuenet"
	"github.com/montplusa/reversi-engine/pkg/config"
	"github.com/montplusa/reversi-engine/pkg/engine"
	"github.com/montplusa/reversi-engine/pkg/game"
	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

func main() {
	log := debug.Logger()
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	opts, err := config.Defaults("TRAIN_")
	if err != nil {
		log.Fatal(err)
	}
	// Self-play defaults to random play so the network sees varied positions.
	if _, ok := os.LookupEnv(config.EnvPrefix + "TRAIN_STRATEGY"); !ok {
		opts.Strategy = engine.StrategyRandom
	}

	// Parse command line flags
	episodes := flag.Int("episodes", 1000, "Number of training episodes")
	batchSize := flag.Int("batch", 256, "Examples per training update")
	reportInterval := flag.Int("report", 50, "Report progress every N episodes")
	learningRate := flag.Float64("lr", 0.01, "Learning rate for neural network training")
	momentum := flag.Float64("momentum", 0.5, "SGD momentum")
	name := flag.String("name", "default", "Name of the network")
	out := flag.String("out", "valuenet.json", "Output file for the trained network")
	initPath := flag.String("init", "", "Continue training from this network file")
	logLevel := flag.String("log-level", "info", "Log level")
	opts.Register(flag.CommandLine, "")
	flag.Parse()

	if err := debug.SetLevel(*logLevel); err != nil {
		log.Fatal(err)
	}

	netConfig := valuenet.DefaultNetworkConfig()
	netConfig.Name = *name
	netConfig.LearningRate = *learningRate

	net := valuenet.New(netConfig)
	if *initPath != "" {
		net, err = valuenet.Load(*initPath, netConfig)
		if err != nil {
			log.Fatalf("Failed to load network: %v", err)
		}
	}

	cfg, err := opts.EngineConfig()
	if err != nil {
		log.Fatalf("Invalid engine config: %v", err)
	}

	trainConfig := valuenet.TrainingConfig{
		Episodes:       *episodes,
		BatchSize:      *batchSize,
		ReportInterval: *reportInterval,
		Momentum:       *momentum,
		NewPlayers: func(episode int) (game.Player, game.Player, error) {
			bcfg, wcfg := cfg, cfg
			bcfg.Seed += int64(2 * episode)
			wcfg.Seed += int64(2*episode + 1)
			black, err := engine.NewPlayer(game.Black, bcfg)
			if err != nil {
				return nil, nil, err
			}
			white, err := engine.NewPlayer(game.White, wcfg)
			if err != nil {
				return nil, nil, err
			}
			return black, white, nil
		},
		OnReport: func(episode int, n *valuenet.Network) error {
			return n.Save(*out)
		},
	}

	stats, err := net.Train(trainConfig)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	abs, _ := filepath.Abs(*out)
	fmt.Printf("Training complete! %d examples, B:%d W:%d D:%d\n", stats.Examples, stats.BlackWins, stats.WhiteWins, stats.Draws)
	fmt.Println("Network saved to:", abs)
}
