//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/google/wire"
)

// ProviderSet is the CLI host's provider graph: an output sink and a
// run identifier, following the teacher's cmd/server/wire.go
// stub-and-generate pattern.
var ProviderSet = wire.NewSet(provideSink, NewRunID, NewApp)

// wireApp assembles an App for logPath (empty disables file logging).
func wireApp(logPath string) (*App, func(), error) {
	panic(wire.Build(ProviderSet))
}
