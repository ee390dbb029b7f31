// Package config builds engine settings from environment variables
// (optionally from a .env file) and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/montplusa/reversi-engine/pkg/ai/valuenet"
	"github.com/montplusa/reversi-engine/pkg/engine"
	"github.com/montplusa/reversi-engine/pkg/eval"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "OTHELLO_"

// LoadDotEnv loads path into the environment if it exists. Variables that
// are already set win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Options are the user-facing engine settings.
type Options struct {
	Strategy engine.Strategy
	Depth    int
	Eval     string
	ValueNet string // network file, used when Eval is "valuenet"
	Workers  int
	Seed     int64
}

// Defaults reads OTHELLO_<scope>STRATEGY and friends. scope may be empty
// or e.g. "BLACK_" to configure one side of a battle.
func Defaults(scope string) (Options, error) {
	def := engine.DefaultConfig()
	o := Options{
		Strategy: def.Strategy,
		Depth:    def.Depth,
		Eval:     "positional",
		Workers:  def.Workers,
		Seed:     def.Seed,
	}
	key := func(name string) string { return EnvPrefix + strings.ToUpper(scope) + name }

	if v, ok := os.LookupEnv(key("STRATEGY")); ok {
		if err := o.Strategy.UnmarshalText([]byte(v)); err != nil {
			return o, fmt.Errorf("%s: %w", key("STRATEGY"), err)
		}
	}
	if v, ok := os.LookupEnv(key("EVAL")); ok {
		o.Eval = v
	}
	if v, ok := os.LookupEnv(key("VALUENET")); ok {
		o.ValueNet = v
	}
	ints := []struct {
		name string
		dst  *int
	}{{"DEPTH", &o.Depth}, {"WORKERS", &o.Workers}}
	for _, it := range ints {
		if v, ok := os.LookupEnv(key(it.name)); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return o, fmt.Errorf("%s: %w", key(it.name), err)
			}
			*it.dst = n
		}
	}
	if v, ok := os.LookupEnv(key("SEED")); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return o, fmt.Errorf("%s: %w", key("SEED"), err)
		}
		o.Seed = n
	}
	return o, nil
}

// Register binds the options to flags named <prefix>strategy etc., using
// the current values as defaults.
func (o *Options) Register(flags *flag.FlagSet, prefix string) {
	flags.TextVar(&o.Strategy, prefix+"strategy", o.Strategy, "move selection: minimax, heuristic or random")
	flags.IntVar(&o.Depth, prefix+"depth", o.Depth, "minimax search depth in plies")
	flags.StringVar(&o.Eval, prefix+"eval", o.Eval, "horizon evaluator: positional, material or valuenet")
	flags.StringVar(&o.ValueNet, prefix+"valuenet", o.ValueNet, "value network file for -eval valuenet")
	flags.IntVar(&o.Workers, prefix+"workers", o.Workers, "goroutines for root-parallel search")
	flags.Int64Var(&o.Seed, prefix+"seed", o.Seed, "seed for the random strategy")
}

// EngineConfig resolves the evaluator and returns a validated config.
func (o Options) EngineConfig() (engine.Config, error) {
	cfg := engine.Config{
		Strategy: o.Strategy,
		Depth:    o.Depth,
		Workers:  o.Workers,
		Seed:     o.Seed,
	}
	if strings.EqualFold(o.Eval, "valuenet") {
		if o.ValueNet == "" {
			return cfg, errors.New("-eval valuenet needs a network file")
		}
		net, err := valuenet.Load(o.ValueNet, valuenet.DefaultNetworkConfig())
		if err != nil {
			return cfg, err
		}
		cfg.Evaluator = net
	} else {
		ev, err := eval.ByName(o.Eval)
		if err != nil {
			return cfg, err
		}
		cfg.Evaluator = ev
	}
	return cfg, cfg.Validate()
}
