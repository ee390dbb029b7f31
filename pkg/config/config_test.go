package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montplusa/reversi-engine/pkg/ai/valuenet"
	"github.com/montplusa/reversi-engine/pkg/engine"
	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
)

func TestDefaults(t *testing.T) {
	o, err := Defaults("")
	require.NoError(t, err)
	assert.Equal(t, engine.StrategySearch, o.Strategy)
	assert.Equal(t, engine.DefaultDepth, o.Depth)
	assert.Equal(t, "positional", o.Eval)
	assert.Equal(t, 1, o.Workers)
}

func TestDefaultsFromEnv(t *testing.T) {
	t.Setenv("OTHELLO_BLACK_STRATEGY", "heuristic")
	t.Setenv("OTHELLO_BLACK_DEPTH", "4")
	t.Setenv("OTHELLO_BLACK_EVAL", "material")
	t.Setenv("OTHELLO_BLACK_WORKERS", "2")
	t.Setenv("OTHELLO_BLACK_SEED", "77")

	o, err := Defaults("black_")
	require.NoError(t, err)
	assert.Equal(t, Options{
		Strategy: engine.StrategySinglePly,
		Depth:    4,
		Eval:     "material",
		Workers:  2,
		Seed:     77,
	}, o)

	other, err := Defaults("WHITE_")
	require.NoError(t, err)
	assert.Equal(t, engine.StrategySearch, other.Strategy)
}

func TestDefaultsRejectsBadEnv(t *testing.T) {
	t.Setenv("OTHELLO_DEPTH", "deep")
	_, err := Defaults("")
	assert.ErrorContains(t, err, "OTHELLO_DEPTH")

	t.Setenv("OTHELLO_DEPTH", "2")
	t.Setenv("OTHELLO_STRATEGY", "alphabeta")
	_, err = Defaults("")
	assert.ErrorContains(t, err, "OTHELLO_STRATEGY")
}

func TestRegisterFlags(t *testing.T) {
	o, err := Defaults("")
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Register(fs, "white-")
	require.NoError(t, fs.Parse([]string{"-white-strategy", "random", "-white-depth", "3", "-white-seed", "5"}))

	assert.Equal(t, engine.StrategyRandom, o.Strategy)
	assert.Equal(t, 3, o.Depth)
	assert.Equal(t, int64(5), o.Seed)
	assert.Error(t, fs.Parse([]string{"-white-strategy", "nope"}))
}

func TestEngineConfig(t *testing.T) {
	o := Options{Strategy: engine.StrategySearch, Depth: 3, Eval: "material", Workers: 1}
	cfg, err := o.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Depth)
	assert.Equal(t, eval.Material.Score(game.Black, game.NewGameState()), cfg.Evaluator.Score(game.Black, game.NewGameState()))

	o.Eval = "mobility"
	_, err = o.EngineConfig()
	assert.Error(t, err)

	o.Eval = "positional"
	o.Depth = 0
	_, err = o.EngineConfig()
	assert.ErrorIs(t, err, engine.ErrInvalidDepth)

	o.Depth = 2
	o.Eval = "valuenet"
	_, err = o.EngineConfig()
	assert.Error(t, err)
}

func TestEngineConfigLoadsValueNet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")
	cfg := valuenet.DefaultNetworkConfig()
	cfg.HiddenLayers = []int{4}
	require.NoError(t, valuenet.New(cfg).Save(path))

	o := Options{Strategy: engine.StrategySearch, Depth: 1, Eval: "valuenet", ValueNet: path, Workers: 1}
	ecfg, err := o.EngineConfig()
	require.NoError(t, err)
	assert.IsType(t, &valuenet.Network{}, ecfg.Evaluator)

	p, err := engine.NewPlayer(game.Black, ecfg)
	require.NoError(t, err)
	assert.NotNil(t, p.ChooseMove(nil, -1))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHELLO_TEST_ONLY_VAR=42\n"), 0644))
	t.Setenv("OTHELLO_TEST_ONLY_VAR", "")
	require.NoError(t, os.Unsetenv("OTHELLO_TEST_ONLY_VAR"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "42", os.Getenv("OTHELLO_TEST_ONLY_VAR"))
}
