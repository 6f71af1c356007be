// Copyright 2025 Tessella Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tessella/newsdex"
	"github.com/tessella/newsdex/config"
	"github.com/tessella/newsdex/search"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	userID     = flag.String("user", "demo", "user whose corpus to search")
	breakdown  = flag.Bool("breakdown", false, "print per-signal score breakdowns")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(err)
		}
	}

	db, err := newsdex.NewDatabaseFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	engine, err := db.NewSearchEngine()
	if err != nil {
		panic(err)
	}

	query := "markets"
	if args := flag.Args(); len(args) > 0 {
		query = strings.Join(args, " ")
	}

	ctx := context.Background()
	res, err := engine.SemanticSearch(ctx, query, *userID, cfg.Search.DefaultLimit, cfg.Search.ScoreThreshold)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits in %v (corpus: %d articles)\n",
		len(res.Results), res.Duration.Round(time.Millisecond), res.Corpus)
	for i, hit := range res.Results {
		fmt.Printf("%d: '%s' (%s)[%0.3f]\n", i, hit.Article.Title, hit.Article.Source, hit.Score)
		if *breakdown {
			for _, signal := range []string{
				search.SignalSemantic,
				search.SignalRecency,
				search.SignalAuthority,
				search.SignalEngagement,
				search.SignalSentiment,
			} {
				fmt.Printf("     %-10s %0.3f\n", signal, hit.Breakdown[signal])
			}
		}
	}
}
