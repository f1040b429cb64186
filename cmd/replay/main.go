// Command replay runs a recorded gesture script against the configurator
// without a terminal and prints the resulting state as YAML.
//
//	replay testdata/scenario.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"ringfinder"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a TOML catalog overriding the built-in options")
	verbose := flag.Bool("v", false, "log widget and host activity to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay [-catalog file] [-v] script.yaml")
		os.Exit(2)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	catalogs := ringfinder.DefaultCatalogs()
	if *catalogPath != "" {
		var err error
		if catalogs, err = ringfinder.LoadCatalogs(*catalogPath); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	script, err := ringfinder.ParseScript(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sched := ringfinder.NewManualScheduler()
	m := ringfinder.NewModel(ringfinder.DefaultConfig(), catalogs, sched, nil)
	res, runErr := ringfinder.Replay(m, sched, script)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	enc.Close()

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
