// Command extractor turns YouTube caption tracks into titled paragraphs.
//
//	extractor [-config config.yaml] [-mode semantic|generative|basic] [-window 25] [-progressive] URL...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/processor"
)

var (
	configPath  = flag.String("config", "config.yaml", "Path to the YAML config file")
	mode        = flag.String("mode", "", "Segmentation mode: semantic, generative or basic (default from config)")
	window      = flag.Int("window", 0, "Caption merge window in seconds (default from config)")
	progressive = flag.Bool("progressive", false, "Print the basic transcript before segmentation finishes")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] URL...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New(cfg.Logging.Level)
	proc, components := processor.Build(ctx, cfg, log)

	failed := 0
	for _, url := range flag.Args() {
		req := processor.Request{URL: url, Mode: processor.Mode(*mode), WindowSeconds: *window}
		if err := run(ctx, proc, req); err != nil {
			failed++
			continue
		}
	}

	// os.Exit skips deferred calls
	components.Close()
	cancel()

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d videos failed\n", failed, flag.NArg())
		os.Exit(1)
	}
}

func run(ctx context.Context, proc processor.Processor, req processor.Request) error {
	onUpdate := func(u processor.Update) {
		switch u.State {
		case processor.StateBasicReady:
			if *progressive {
				fmt.Println(u.Text)
			}
		case processor.StateFailed:
			fmt.Fprintf(os.Stderr, "%s: %s\n", req.URL, u.Message)
		}
	}

	result, err := proc.ProcessProgressive(ctx, req, onUpdate)
	if err != nil {
		return err
	}

	fmt.Println(result.Text)
	fmt.Printf("Saved to %s\n", result.Paths.Dir)
	return nil
}
