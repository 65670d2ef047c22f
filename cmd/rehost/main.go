// Command rehost uploads every image a project references to the
// content bucket, rewrites the references to CDN URLs, uploads the
// rewritten document and registers it with the content API.
//
// Credentials and endpoints come from the environment:
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION, AWS_ENDPOINT,
// AWS_BUCKET, CDN_BASE_URL, API_BASE_URL and API_AUTH_TOKEN are all
// required.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/eldritchfan/fancontent/internal/backend"
	"github.com/eldritchfan/fancontent/internal/config"
	"github.com/eldritchfan/fancontent/internal/fetch"
	"github.com/eldritchfan/fancontent/internal/model"
	"github.com/eldritchfan/fancontent/internal/rehost"
	"github.com/eldritchfan/fancontent/internal/storage"
)

func main() {
	var (
		projectsFlag     = flag.String("projects", "projects", "projects root directory")
		compressFlag     = flag.Bool("compress", true, "transcode PNG card images to JPEG before upload")
		concurrencyFlag  = flag.Int("concurrency", rehost.DefaultConcurrency, "upload worker pool size")
		maxDimFlag       = flag.Int("max-dim", 0, "downscale transcoded images to this maximum dimension (0 = off)")
		skipImagesFlag   = flag.Bool("skip-images", false, "rewrite card and icon URLs without uploading (banner still rehosted)")
		skipRegisterFlag = flag.Bool("skip-register", false, "do not register the project with the content API")
	)
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  rehost [options] <project-name>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	name := flag.Arg(0)

	cfg, err := config.LoadRehost()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := model.ProjectPath(*projectsFlag, name)
	project, err := model.LoadProject(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Warn("interrupted, cancelling")
		cancel()
	}()

	bucket := storage.New(storage.Options{
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		Region:          cfg.Region,
		Endpoint:        cfg.Endpoint,
		Bucket:          cfg.Bucket,
	})
	api := backend.NewClient(cfg.APIBaseURL, cfg.APIAuthToken)

	manager := rehost.NewManager(bucket, fetch.NewClient(), api, cfg.CDNBaseURL, rehost.Options{
		Compress:     *compressFlag,
		Concurrency:  *concurrencyFlag,
		MaxImageDim:  *maxDimFlag,
		SkipImages:   *skipImagesFlag,
		SkipRegister: *skipRegisterFlag,
	})

	if err := manager.Run(ctx, project); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.Info("rehosting complete", "project", name)
}
