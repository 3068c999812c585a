package main

import (
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func saveRestore[T any](ptr *T, val T) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestore(addr, "127.0.0.1:9000")()
	defer saveRestore(allowOrigins, "http://localhost:5173")()
	defer saveRestore(readTimeout, 3*time.Second)()
	defer saveRestore(maxGames, 50)()
	defer saveRestore(noRequests, true)()
	defer saveRestore(showBoard, true)()
	defer saveRestore(verbose, true)()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	want := config.ServerConfig{
		Addr:         "127.0.0.1:9000",
		AllowOrigins: "http://localhost:5173",
		ReadTimeout:  3 * time.Second,
		MaxGames:     50,
		LogRequests:  false,
	}
	testutil.AssertEqual(t, cfg.Server, want)
	testutil.AssertTrue(t, cfg.Output.ShowBoard, "ShowBoard")
	testutil.AssertTrue(t, cfg.Output.ShowMoves, "ShowMoves")
	testutil.AssertEqual(t, cfg.Verbosity, 2)
}

func TestApplyFlags_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		apply func() func()
	}{
		{"empty address", func() func() { return saveRestore(addr, "") }},
		{"negative limit", func() func() { return saveRestore(maxGames, -1) }},
		{"negative timeout", func() func() { return saveRestore(readTimeout, -time.Second) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.apply()()
			testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), errors.ErrInvalidConfig)
		})
	}
}
