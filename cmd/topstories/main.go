package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/jwafle/topstories/internal/config"
	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/logging"
	"github.com/jwafle/topstories/internal/theme"
	"github.com/jwafle/topstories/internal/ui"
	"github.com/jwafle/topstories/internal/ui/plain"
	"github.com/jwafle/topstories/internal/web"
)

type mode int

const (
	modeTUI mode = iota
	modePlain
	modeWeb
)

func main() {
	var (
		cfgPath  = config.DefaultPath()
		plainOut bool
		jsonOut  bool
	)
	flag.StringVar(&cfgPath, "config", cfgPath, "path to a TOML config")
	flag.String("colour", "", "row colour: "+strings.Join(theme.Tokens(), ", "))
	flag.String("n", "", "number of stories to fetch")
	flag.String("list", "", "story list: top, new, best, ask, show, job")
	flag.String("listen", "", "serve the web UI on this address, e.g. :8080")
	flag.String("concurrency", "", "parallel story fetches (1 fetches one after another)")
	flag.String("base-url", "", "API root")
	flag.BoolVar(&plainOut, "plain", false, "print the list once and exit")
	flag.BoolVar(&jsonOut, "json", false, "print the list once as JSON and exit")
	flag.Parse()

	// Read config and create it if the default is missing
	conf, err := config.Read(cfgPath)
	if errors.Is(err, os.ErrNotExist) && cfgPath == config.DefaultPath() {
		if err := config.Write(cfgPath, conf); err != nil {
			log.Printf("failed to write default config with %s", err)
		}
	} else if err != nil {
		log.Fatalf("failed to read config with %s", err)
	}
	if err := applyFlags(&conf); err != nil {
		log.Fatal(err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	m := modeTUI
	switch {
	case conf.Web.Listen != "":
		m = modeWeb
	case plainOut, jsonOut, !isTerminal:
		m = modePlain
	}

	logger, closer, err := logging.New(conf.Log, m == modeTUI)
	if err != nil {
		log.Fatalf("failed to set up logging with %s", err)
	}
	defer closer.Close()

	th := theme.MustParse(conf.Colour)
	client, err := hackernews.New(&hackernews.Config{BaseURL: conf.BaseURL, Logger: logger})
	if err != nil {
		log.Fatal(err)
	}
	loader := &feed.Loader{
		Source:      client,
		Count:       conf.Articles,
		Concurrency: conf.Concurrency,
		Logger:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch m {
	case modeWeb:
		srv := web.New(web.Options{
			Board:    web.NewBoard(ctx, loader, logger),
			Theme:    th,
			List:     conf.List,
			Logger:   logger,
			LogLevel: logging.EchoLevel(logger.GetLevel()),
		})
		err = srv.Start(ctx, conf.Web.Listen)
	case modePlain:
		err = plain.Print(ctx, os.Stdout, plain.Options{
			Loader: loader,
			Theme:  th,
			List:   conf.List,
			JSON:   jsonOut,
			Color:  isTerminal,
		})
	default:
		err = ui.Run(ctx, ui.Options{Loader: loader, Theme: th, List: conf.List})
	}
	if err != nil {
		logger.WithError(err).Error("exiting")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		closer.Close()
		os.Exit(1)
	}
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(conf *config.Config) error {
	var errs []error
	flag.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "colour":
			conf.Colour = v
		case "n", "concurrency":
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("-%s: %w", f.Name, err))
				return
			}
			if f.Name == "n" {
				conf.Articles = n
			} else {
				conf.Concurrency = n
			}
		case "list":
			l, err := hackernews.ParseList(v)
			if err != nil {
				errs = append(errs, err)
				return
			}
			conf.List = l
		case "listen":
			conf.Web.Listen = v
		case "base-url":
			conf.BaseURL = v
		}
	})
	return errors.Join(errs...)
}
