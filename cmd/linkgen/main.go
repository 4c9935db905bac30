package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/issafronov/linkgen/internal/app/config"
	"github.com/issafronov/linkgen/internal/app/generator"
	"github.com/issafronov/linkgen/internal/app/logger"
	"github.com/issafronov/linkgen/internal/app/models"
	"github.com/issafronov/linkgen/internal/app/service"
	"github.com/issafronov/linkgen/internal/app/tld"
	"go.uber.org/zap"
)

var errMissingBaseURL = errors.New("base url is required, usage: linkgen [flags] <base_url>")

func main() {
	if err := run(os.Stdout); err != nil {
		fail(err)
	}
}

// fail печатает ошибку и завершает процесс с ненулевым кодом
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(out io.Writer) error {
	cfg := config.LoadConfig()

	if cfg.BaseURL == "" {
		return errMissingBaseURL
	}

	zl, err := logger.Initialize(cfg.LoggerLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = zl.Sync()
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	picker := tld.New(rnd, tld.WithCandidates(cfg.TLDs), tld.WithLogger(zl))
	svc := service.NewService(generator.New(picker, rnd, zl))

	links, err := svc.GenerateRandomizedLinks(context.Background(), cfg.BaseURL, cfg.NumLinks, cfg.PathPattern)
	if err != nil {
		zl.Error("link generation failed", zap.Error(err))
		return err
	}

	if cfg.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(models.LinksResponse{
			BaseURL: cfg.BaseURL,
			Count:   len(links),
			Links:   links,
		})
	}

	fmt.Fprintln(out, "Randomized and Generated Links:")
	for _, link := range links {
		fmt.Fprintln(out, link)
	}

	return nil
}
