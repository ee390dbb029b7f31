package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/montplusa/reversi-engine/pkg/config"
	"github.com/montplusa/reversi-engine/pkg/engine"
	"github.com/montplusa/reversi-engine/pkg/game"
	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

// 標準入力から "x y msLeft" を1行ずつ受け取り、"x y" を返す。
// 相手の手がない（初手・パス）ときは "-1 -1 msLeft"、自分がパスなら "-1 -1"
func main() {
	log := debug.Logger()
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf(".env の読み込みに失敗: %v", err)
	}
	opts, err := config.Defaults("")
	if err != nil {
		log.Fatalf("環境変数が不正です: %v", err)
	}

	sideName := flag.String("side", "black", "自分の手番 (black / white)")
	logLevel := flag.String("log-level", envOr("OTHELLO_LOG_LEVEL", "info"), "ログレベル")
	opts.Register(flag.CommandLine, "")
	flag.Parse()

	if err := debug.SetLevel(*logLevel); err != nil {
		log.Fatalf("ログレベルが不正です: %v", err)
	}
	side, err := game.ParseSide(*sideName)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := opts.EngineConfig()
	if err != nil {
		log.Fatalf("設定エラー: %v", err)
	}
	player, err := engine.NewPlayer(side, cfg)
	if err != nil {
		log.Fatalf("エンジンの初期化に失敗: %v", err)
	}
	log.WithFields(logrus.Fields{
		"side":     side,
		"strategy": cfg.Strategy,
		"depth":    cfg.Depth,
		"eval":     opts.Eval,
	}).Info("engine ready")

	out := bufio.NewWriter(os.Stdout)
	fmt.Fprintln(out, "Init done")
	out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		opp, msLeft, err := parseTurn(line)
		if err != nil {
			log.Fatalf("入力が不正です %q: %v", line, err)
		}
		mv := player.ChooseMove(opp, msLeft)
		if mv == nil {
			fmt.Fprintln(out, "-1 -1")
		} else {
			fmt.Fprintf(out, "%d %d\n", mv.X, mv.Y)
		}
		out.Flush()
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("標準入力の読み込みに失敗: %v", err)
	}
}

// parseTurn は "x y msLeft" を読む。x, y が負なら相手の手なし
func parseTurn(line string) (*game.Move, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, 0, fmt.Errorf("3 つの整数が必要です（%d 個）", len(fields))
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, 0, err
		}
		v[i] = n
	}
	if v[0] < 0 || v[1] < 0 {
		return nil, v[2], nil
	}
	mv := game.Move{X: v[0], Y: v[1]}
	if !mv.InBounds() {
		return nil, 0, fmt.Errorf("盤外の手 %v", mv)
	}
	return &mv, v[2], nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
