package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/BielosX/wombat/poke-battle/src/battle"
	"github.com/BielosX/wombat/poke-battle/src/cli"
	appconfig "github.com/BielosX/wombat/poke-battle/src/config"
	"github.com/BielosX/wombat/poke-battle/src/pokeapi"
	"github.com/BielosX/wombat/poke-battle/src/s3"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger
var cfg *appconfig.Config
var s3Client *s3.Client

type BattleRequest struct {
	Generation int `json:"generation"`
}

type BattleResponse struct {
	BattleId  string   `json:"battleId"`
	Team1     []string `json:"team1"`
	Team2     []string `json:"team2"`
	Team1Mean float64  `json:"team1Mean"`
	Team2Mean float64  `json:"team2Mean"`
	Compared  bool     `json:"compared"`
	Winner    string   `json:"winner"`
	Sprites   []string `json:"sprites"`
}

func newGame() *battle.Game {
	client := pokeapi.NewClient(sugar, cfg.PokeAPIBaseURL, nil)
	return battle.NewGame(sugar, client, battle.WithTeamSize(cfg.TeamSize))
}

func handleBattle(ctx context.Context, request BattleRequest) (*BattleResponse, error) {
	gen, err := cli.ParseGeneration(fmt.Sprint(request.Generation))
	if err != nil {
		return nil, err
	}
	battleId := uuid.NewString()
	sugar.Infof("Starting Battle Handler, battleId: %s, generation: %d", battleId, gen)
	var store battle.SpriteStore
	if s3Client != nil {
		store = s3.NewSpriteStore(s3Client, sugar, cfg.BucketName, path.Join(cfg.BucketPrefix, battleId))
	} else {
		store = battle.DirStore{Dir: filepath.Join(os.TempDir(), battleId)}
	}
	outcome := newGame().Play(ctx, gen, os.Stdout, store)
	return &BattleResponse{
		BattleId:  battleId,
		Team1:     outcome.Team1,
		Team2:     outcome.Team2,
		Team1Mean: outcome.Team1Mean,
		Team2Mean: outcome.Team2Mean,
		Compared:  outcome.Compared,
		Winner:    outcome.Winner.String(),
		Sprites:   outcome.Sprites,
	}, nil
}

func runConsole(ctx context.Context) {
	var store battle.SpriteStore = battle.DirStore{Dir: cfg.WinnerDir}
	if s3Client != nil {
		mirror := s3.NewSpriteStore(s3Client, sugar, cfg.BucketName, path.Join(cfg.BucketPrefix, uuid.NewString()))
		store = battle.MultiStore{store, mirror}
	}
	cli.NewSession(sugar, newGame(), store, os.Stdin, os.Stdout).Run(ctx)
}

func syncLogger() {
	_ = sugar.Sync()
}

func main() {
	var err error
	cfg, err = appconfig.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %s\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	logger, _ := zapConfig.Build(zap.AddStacktrace(zap.FatalLevel))
	sugar = logger.Sugar()
	defer syncLogger()

	ctx := context.Background()
	if cfg.MirrorToS3() {
		awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
		if err != nil {
			sugar.Fatal("Failed to load SDK config")
		}
		s3Client = s3.NewClient(awsCfg)
	}
	switch cfg.Handler {
	case "battle":
		lambda.Start(handleBattle)
	case "":
		runConsole(ctx)
	default:
		sugar.Fatalf("Unknown Handler %s", cfg.Handler)
	}
}
