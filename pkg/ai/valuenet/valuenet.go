package valuenet

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/patrikeh/go-deep"

	"github.com/montplusa/reversi-engine/pkg/game"
)

// FeatureSize is one input per cell.
const FeatureSize = game.Size * game.Size

// NetworkConfig defines the neural network architecture
type NetworkConfig struct {
	Name         string
	HiddenLayers []int
	LearningRate float64
	// Scale maps the network output in [-1, 1] to an integer score.
	Scale float64
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Name:         "default",
		HiddenLayers: []int{64, 32},
		LearningRate: 0.01,
		Scale:        64,
	}
}

// Network is a learned position evaluator. It satisfies eval.Evaluator.
type Network struct {
	mu      sync.Mutex // Predict writes into the network's neurons
	network *deep.Neural
	config  NetworkConfig
}

// New creates an untrained network.
func New(config NetworkConfig) *Network {
	layout := append([]int{}, config.HiddenLayers...)
	layout = append(layout, 1) // Output: single evaluation score

	network := deep.NewNeural(&deep.Config{
		Inputs:     FeatureSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
	return &Network{network: network, config: config}
}

// Load reads a network written by Save.
func Load(path string, config NetworkConfig) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network %s: %w", path, err)
	}
	network, err := deep.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode network %s: %w", path, err)
	}
	return &Network{network: network, config: config}, nil
}

// Save writes the network as JSON.
func (n *Network) Save(path string) error {
	n.mu.Lock()
	data, err := n.network.Marshal()
	n.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write network %s: %w", path, err)
	}
	return nil
}

func (n *Network) Name() string {
	return fmt.Sprintf("valuenet (%s)", n.config.Name)
}

// Predict returns the raw network output for side.
func (n *Network) Predict(side game.Side, b game.Board) float64 {
	features := Features(side, b)
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.network.Predict(features)[0]
}

// Score implements eval.Evaluator.
func (n *Network) Score(side game.Side, b game.Board) int {
	return int(math.Round(n.Predict(side, b) * n.config.Scale))
}

// Features encodes b from side's perspective: 1 own, -1 opponent, 0 empty.
func Features(side game.Side, b game.Board) []float64 {
	features := make([]float64, FeatureSize)
	idx := 0
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			switch {
			case !b.IsOccupied(x, y):
			case b.IsOwnedBy(side, x, y):
				features[idx] = 1
			default:
				features[idx] = -1
			}
			idx++
		}
	}
	return features
}
