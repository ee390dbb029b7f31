package valuenet

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrikeh/go-deep/training"
	"github.com/sirupsen/logrus"

	"github.com/montplusa/reversi-engine/pkg/game"
	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

// TrainingConfig specifies parameters for self-play training
type TrainingConfig struct {
	Episodes       int     // Number of self-play games
	BatchSize      int     // Examples collected before each update
	ReportInterval int     // How often to report progress
	Momentum       float64 // SGD momentum
	// NewPlayers returns a fresh black and white player for each game.
	NewPlayers func(episode int) (black, white game.Player, err error)
	// OnReport is called after each report, e.g. to checkpoint the network.
	OnReport func(episode int, n *Network) error
}

// TrainingStats tracks metrics during training
type TrainingStats struct {
	BlackWins int
	WhiteWins int
	Draws     int
	Examples  int
	StartTime time.Time
}

// Train plays self-play games and regresses the network onto the final
// disc difference, seen from the side that just moved.
func (n *Network) Train(config TrainingConfig) (TrainingStats, error) {
	stats := TrainingStats{StartTime: time.Now()}
	if config.ReportInterval <= 0 {
		return stats, errors.New("report interval must be greater than 0")
	}
	if config.BatchSize <= 0 {
		return stats, errors.New("batch size must be greater than 0")
	}
	if config.NewPlayers == nil {
		return stats, errors.New("no player factory")
	}

	log := debug.Logger().WithField("network", n.config.Name)
	log.WithFields(logrus.Fields{
		"episodes": config.Episodes,
		"batch":    config.BatchSize,
		"lr":       n.config.LearningRate,
	}).Info("starting self-play training")

	var examples training.Examples
	for episode := 0; episode < config.Episodes; episode++ {
		black, white, err := config.NewPlayers(episode)
		if err != nil {
			return stats, fmt.Errorf("episode %d: %w", episode, err)
		}
		result, err := game.NewGameRunner(black, white).Run()
		if err != nil {
			return stats, fmt.Errorf("episode %d: %w", episode, err)
		}

		switch result.Winner {
		case game.Black:
			stats.BlackWins++
		case game.White:
			stats.WhiteWins++
		default:
			stats.Draws++
		}

		examples = append(examples, Examples(&result)...)

		if len(examples) >= config.BatchSize {
			trainStart := time.Now()
			examples.Shuffle()
			n.fit(examples, config.BatchSize, config.Momentum)
			stats.Examples += len(examples)
			log.WithFields(logrus.Fields{
				"examples": len(examples),
				"took":     time.Since(trainStart).Round(time.Millisecond),
			}).Debug("trained batch")
			examples = nil
		}

		if (episode+1)%config.ReportInterval == 0 || episode == config.Episodes-1 {
			log.WithFields(logrus.Fields{
				"episode": episode + 1,
				"black":   stats.BlackWins,
				"white":   stats.WhiteWins,
				"draws":   stats.Draws,
				"elapsed": time.Since(stats.StartTime).Round(time.Second),
			}).Info("training progress")
			if config.OnReport != nil {
				if err := config.OnReport(episode+1, n); err != nil {
					return stats, err
				}
			}
		}
	}
	return stats, nil
}

func (n *Network) fit(examples training.Examples, batchSize int, momentum float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	trainer := training.NewTrainer(training.NewSGD(n.config.LearningRate, momentum, 0.0, false), 0)
	iterations := len(examples)/batchSize + 1
	trainer.Train(n.network, examples, nil, iterations)
}

// Examples turns one finished game into training examples: every position
// after a move, from the mover's view, labelled with the final disc
// difference normalized to [-1, 1].
func Examples(result *game.BattleResult) training.Examples {
	outcome := float64(result.Black-result.White) / float64(FeatureSize)
	states := result.Replay()
	var out training.Examples
	i := 0
	for _, t := range result.Moves {
		if t.Move == nil {
			continue
		}
		target := outcome
		if t.Side == game.White {
			target = -outcome
		}
		out = append(out, training.Example{
			Input:    Features(t.Side, states[i]),
			Response: []float64{target},
		})
		i++
	}
	return out
}
