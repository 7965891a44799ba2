// Command reelforge is the host binary for the reel-strip search
// core: it binds a config file to the core's runSimulation and
// runGeneticSearch entry points and streams progress to a sink,
// following the teacher's flag-driven cmd/server/main.go shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	_ "go.uber.org/automaxprocs"

	"github.com/yola1107/reelforge/internal/config"
)

var (
	flagConf string
	flagLog  string
)

func init() {
	flag.StringVar(&flagConf, "conf", "config.json", "config file path (.json or .yaml)")
	flag.StringVar(&flagLog, "log", "", "optional rotating log file path")
}

func main() {
	subcommand := "search"
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		subcommand = os.Args[1]
		os.Args = append(os.Args[:1], os.Args[2:]...)
	}
	flag.Parse()

	raw, err := os.ReadFile(flagConf)
	if err != nil {
		fail(err)
	}

	app, cleanup, err := wireApp(flagLog)
	if err != nil {
		fail(err)
	}
	defer cleanup()

	switch subcommand {
	case "simulate":
		err = runSimulateCommand(app, raw)
	case "search":
		err = runSearchCommand(app, raw)
	default:
		err = fmt.Errorf("unknown subcommand %q (want simulate|search)", subcommand)
	}
	if err != nil {
		fail(err)
	}
}

func runSimulateCommand(app *App, raw []byte) error {
	doc, err := loadSimulateDocument(flagConf, raw)
	if err != nil {
		return err
	}
	input, err := doc.Build()
	if err != nil {
		return err
	}
	return app.RunSimulate(input)
}

func runSearchCommand(app *App, raw []byte) error {
	doc, err := loadDocument(flagConf, raw)
	if err != nil {
		return err
	}
	bundle, err := doc.Build()
	if err != nil {
		return err
	}
	return app.RunSearch(bundle)
}

func loadDocument(path string, raw []byte) (*config.Document, error) {
	if isYAML(path) {
		return config.LoadYAML(raw)
	}
	return config.LoadJSON(raw)
}

func loadSimulateDocument(path string, raw []byte) (*config.SimulateDocument, error) {
	if isYAML(path) {
		return config.LoadSimulateYAML(raw)
	}
	return config.LoadSimulateJSON(raw)
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
