package main

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yola1107/reelforge/internal/config"
)

type recordingSink struct {
	lines []string
}

func (r *recordingSink) WriteLine(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func TestAppRunSimulateWritesSummaryAndTable(t *testing.T) {
	doc, err := config.LoadSimulateJSON([]byte(validSimulateJSON))
	if err != nil {
		t.Fatal(err)
	}
	input, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}

	rec := &recordingSink{}
	app := &App{Sink: rec, RunID: uuid.New()}
	if err := app.RunSimulate(input); err != nil {
		t.Fatal(err)
	}
	if len(rec.lines) < 2 {
		t.Fatalf("wrote %d lines, want at least a summary and a table header", len(rec.lines))
	}
}

func TestAppRunSearchWritesProgressAndResult(t *testing.T) {
	doc, err := config.LoadJSON([]byte(validSearchJSON))
	if err != nil {
		t.Fatal(err)
	}
	bundle, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}

	rec := &recordingSink{}
	app := &App{Sink: rec, RunID: uuid.New()}
	if err := app.RunSearch(bundle); err != nil {
		t.Fatal(err)
	}
	if len(rec.lines) < 3 {
		t.Fatalf("wrote %d lines, want start line, ga progress lines, and a done line", len(rec.lines))
	}
}

const validSimulateJSON = `{
  "reels": [[7,5,7,5,8],[5,7,5,7,8],[7,7,5,5,8]],
  "slotConfig": {
    "window": [3,3,3],
    "wild": [9],
    "scatter": [8],
    "high": [],
    "paytable": {"7": [0,5,20], "5": [0,2,8]},
    "lines": [[0,0,0],[1,1,1]]
  },
  "spinCount": 500,
  "seed": 1
}`

const validSearchJSON = `{
  "gaConfig": {"popSize": 4, "generations": 2, "elitism": 1, "tournamentK": 2, "crossoverRate": 0.5, "mutationRate": 0.2, "seed": 3},
  "reelBoxes": [
    {"radius": 1, "seed": 1, "symbolStacks": {"low": {"5": [2], "7": [2]}, "high": {"5": [4], "7": [4]}}},
    {"radius": 1, "seed": 2, "symbolStacks": {"low": {"5": [2], "7": [2]}, "high": {"5": [4], "7": [4]}}},
    {"radius": 1, "seed": 3, "symbolStacks": {"low": {"5": [2], "7": [2]}, "high": {"5": [4], "7": [4]}}}
  ],
  "simTargets": {"targetRtp": 0.95, "targetHitFrequency": 0.3, "targetBonusGameFrequency": 0.05},
  "slotConfig": {
    "window": [3,3,3],
    "wild": [9],
    "scatter": [8],
    "high": [7],
    "paytable": {"7": [0,5,20], "5": [0,2,8]},
    "lines": [[0,0,0],[1,1,1]]
  },
  "spinCount": 200
}`
