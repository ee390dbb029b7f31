package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/montplusa/reversi-engine/pkg/config"
	"github.com/montplusa/reversi-engine/pkg/engine"
	"github.com/montplusa/reversi-engine/pkg/game"
	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

// 指定されたディレクトリ内の同じプレフィックスを持つファイルの最大連番を取得する
func findMaxSequenceNumber(dir, prefix string) (int, error) {
	// ディレクトリが存在しない場合は0を返す
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	// プレフィックス_NNNNN.json の形式にマッチする正規表現
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s_(\d{5})\.json$`, regexp.QuoteMeta(prefix)))
	maxSeq := 0

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		matches := pattern.FindStringSubmatch(file.Name())
		if len(matches) == 2 {
			seq, err := strconv.Atoi(matches[1])
			if err != nil {
				continue
			}
			if seq > maxSeq {
				maxSeq = seq
			}
		}
	}

	return maxSeq, nil
}

// 対戦タスクの構造体
type battleTask struct {
	gameIndex int
	seqNum    int
}

// 対戦結果の構造体
type battleResult struct {
	gameIndex int
	winner    game.Side
	err       error
}

// 対戦設定
type battleSetup struct {
	black, white engine.Config
	timeLimitMs  int
	outputDir    string
	outputPrefix string
	noOutput     bool
}

// playOne は1局対戦する。乱数系の設定は対局ごとにシードをずらす
func playOne(setup battleSetup, gameIndex int) (game.BattleResult, error) {
	bcfg, wcfg := setup.black, setup.white
	bcfg.Seed += int64(gameIndex)
	wcfg.Seed += int64(gameIndex) + 1

	black, err := engine.NewPlayer(game.Black, bcfg)
	if err != nil {
		return game.BattleResult{}, err
	}
	white, err := engine.NewPlayer(game.White, wcfg)
	if err != nil {
		return game.BattleResult{}, err
	}
	gr := game.NewGameRunner(black, white)
	gr.TimeLimitMs = setup.timeLimitMs
	return gr.Run()
}

// ワーカー関数
func worker(id int, tasks <-chan battleTask, results chan<- battleResult, setup battleSetup, wg *sync.WaitGroup) {
	defer wg.Done()
	log := debug.Logger().WithField("worker", id)

	for task := range tasks {
		result, err := playOne(setup, task.gameIndex)
		if err != nil {
			log.WithError(err).WithField("game", result.ID).Warn("対戦が異常終了しました")
		}

		if !setup.noOutput {
			if werr := writeResult(setup, task.seqNum, result); werr != nil {
				log.WithError(werr).Error("結果の書き込みに失敗しました")
			}
		}

		results <- battleResult{
			gameIndex: task.gameIndex,
			winner:    result.Winner,
			err:       err,
		}

		log.WithFields(logrus.Fields{
			"game":  task.gameIndex,
			"id":    result.ID,
			"black": result.Black,
			"white": result.White,
		}).Info("対戦が完了しました")
	}
}

func writeResult(setup battleSetup, seq int, result game.BattleResult) error {
	// 結果をJSONに変換（インデントなし）
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("JSONの変換に失敗しました: %w", err)
	}
	// ファイル名の生成（5桁のゼロ詰め連番）
	filename := filepath.Join(setup.outputDir, fmt.Sprintf("%s_%05d.json", setup.outputPrefix, seq))
	return os.WriteFile(filename, jsonData, 0644)
}

func main() {
	log := debug.Logger()
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf(".env の読み込みに失敗: %v", err)
	}
	blackOpts, err := config.Defaults("BLACK_")
	if err != nil {
		log.Fatal(err)
	}
	whiteOpts, err := config.Defaults("WHITE_")
	if err != nil {
		log.Fatal(err)
	}

	// コマンドライン引数の解析
	outputDir := flag.String("output", "output", "出力ディレクトリ名")
	outputPrefix := flag.String("output-prefix", "", "出力ファイル名のプレフィックス")
	noOutput := flag.Bool("no-output", false, "出力しない")
	games := flag.Int("games", 1, "実行する試合数")
	numWorkers := flag.Int("workers", runtime.NumCPU(), "ワーカー数")
	timeLimit := flag.Int("time-limit", -1, "各プレイヤーの持ち時間（ミリ秒、-1 で無制限）")
	logLevel := flag.String("log-level", "info", "ログレベル")
	blackOpts.Register(flag.CommandLine, "black-")
	whiteOpts.Register(flag.CommandLine, "white-")
	flag.Parse()

	if err := debug.SetLevel(*logLevel); err != nil {
		log.Fatal(err)
	}

	// 出力プレフィックスが指定されていない場合はエラー
	if !*noOutput && *outputPrefix == "" {
		fmt.Println("エラー: --output-prefix は必須です")
		flag.Usage()
		os.Exit(1)
	}

	bcfg, err := blackOpts.EngineConfig()
	if err != nil {
		log.Fatalf("黒の設定エラー: %v", err)
	}
	wcfg, err := whiteOpts.EngineConfig()
	if err != nil {
		log.Fatalf("白の設定エラー: %v", err)
	}

	if !*noOutput {
		// 出力ディレクトリの作成
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("出力ディレクトリの作成に失敗しました: %v", err)
		}
	}

	// 既存ファイルの最大連番を取得
	maxSeq, err := findMaxSequenceNumber(*outputDir, *outputPrefix)
	if err != nil {
		log.Warnf("既存ファイルの確認中にエラーが発生しました: %v", err)
	}
	startSeq := maxSeq + 1
	log.Infof("連番 %05d から開始します", startSeq)
	log.Infof("対戦を %d 回実行します（ワーカー数: %d）", *games, *numWorkers)

	setup := battleSetup{
		black:        bcfg,
		white:        wcfg,
		timeLimitMs:  *timeLimit,
		outputDir:    *outputDir,
		outputPrefix: *outputPrefix,
		noOutput:     *noOutput,
	}

	// チャネルの作成
	tasks := make(chan battleTask, *games)
	results := make(chan battleResult, *games)

	// ワーカープールの作成
	var wg sync.WaitGroup
	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go worker(i, tasks, results, setup, &wg)
	}

	// タスクの送信
	go func() {
		for i := 0; i < *games; i++ {
			tasks <- battleTask{
				gameIndex: i,
				seqNum:    startSeq + i,
			}
		}
		close(tasks)
	}()

	// 結果の収集
	wins := map[game.Side]int{}
	failed := 0
	for i := 0; i < *games; i++ {
		result := <-results
		if result.err != nil {
			failed++
			continue
		}
		wins[result.winner]++
	}

	// すべてのワーカーの終了を待つ
	wg.Wait()

	log.Info("すべての対戦が完了しました")
	fmt.Printf("勝利数: Black: %d, White: %d, 引き分け: %d, 異常終了: %d\n",
		wins[game.Black], wins[game.White], wins[game.NoSide], failed)
}
