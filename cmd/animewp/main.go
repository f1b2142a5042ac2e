package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/pkg/wallpaper"
	"github.com/dixieflatline76/animewp/util/log"

	_ "github.com/dixieflatline76/animewp/pkg/wallpaper/providers/local"   // register the wallpaper folder provider
	_ "github.com/dixieflatline76/animewp/pkg/wallpaper/providers/nekos"   // register the nekosapi.com provider
	_ "github.com/dixieflatline76/animewp/pkg/wallpaper/providers/waifuim" // register the waifu.im provider
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // usage errors, missing local file, I/O and decode failures
	exitFetch   = 2 // the remote image service could not be reached or refused the request
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "path to the config file (default ~/.animewp/config.yaml)")
	verbose := flags.Bool("v", false, "verbose logging")
	info := flags.Bool("info", false, "print the resolved settings and exit")
	version := flags.Bool("version", false, "print the version and exit")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [filename]\n\n", config.AppName)
		fmt.Fprintln(stderr, "Without a filename a random wallpaper is downloaded. A filename picks an image")
		fmt.Fprintln(stderr, "already in the wallpaper folder. Flags must come before the filename.")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}
	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}
	if arg, ok := misplacedFlag(flags.Args()); ok {
		fmt.Fprintf(stderr, "flag %s must come before the filename\n", arg)
		flags.Usage()
		return exitFailure
	}
	log.SetVerbose(*verbose)

	if *version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.AppVersion)
		return exitOK
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return exitFailure
	}

	osImpl := wallpaper.GetOS()
	if *info {
		printInfo(stdout, cfg, *configFile, osImpl)
		return exitOK
	}

	acquired, err := acquireLock(config.GetPath(cfg.HomeDir))
	if err != nil {
		log.Printf("Failed to acquire instance lock: %v", err)
		return exitFailure
	}
	if !acquired {
		fmt.Fprintf(stdout, "Another instance of %s is already running.\n", config.AppName)
		return exitFailure
	}
	defer releaseLock()

	client := wallpaper.NewHTTPClient(cfg.UserAgent, cfg.WallpaperDir)
	imgProvider, err := wallpaper.NewProvider(cfg.Provider, cfg, client)
	if err != nil {
		log.Printf("%v", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := wallpaper.NewPipeline(cfg, osImpl, imgProvider, wallpaper.NewDownloader(client), wallpaper.NewImageProcessor(), stdout)
	return exitCode(pipeline.Run(ctx, flags.Args()), stdout)
}

// misplacedFlag returns the first positional argument that looks like a flag.
// flag stops parsing at the first positional, so "wall.png -v" would otherwise
// turn into two positionals and a random fetch.
func misplacedFlag(args []string) (string, bool) {
	for _, arg := range args {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return arg, true
		}
	}
	return "", false
}

// exitCode reports err to the user and maps it to a process exit code.
func exitCode(err error, stdout io.Writer) int {
	var apiErr *provider.APIError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, wallpaper.ErrMissingExtension):
		fmt.Fprintln(stdout, "Missing file extension.")
		return exitFailure
	case errors.Is(err, wallpaper.ErrInvalidName), errors.Is(err, wallpaper.ErrImageNotFound):
		log.Printf("%v", err)
		return exitFailure
	case errors.As(err, &apiErr):
		fmt.Fprintf(stdout, "Error: %d %s\n", apiErr.StatusCode, apiErr.Body)
		return exitFetch
	case errors.Is(err, wallpaper.ErrFetch):
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitFetch
	default:
		log.Printf("Failed to change wallpaper: %v", err)
		return exitFailure
	}
}
