// Copyright 2025 Poiesic Systems
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
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/emojit"
	"github.com/poiesic/emojit/catalog"
	"github.com/poiesic/emojit/core"
)

var (
	limit  = flag.Int("limit", 5, "maximum number of results")
	prefix = flag.Bool("prefix", false, "treat the final query term as a prefix")
	best   = flag.Bool("best", false, "fall back to stemmed and prefix matching")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	engine := emojit.New()
	if err := engine.BuildCatalog(catalog.Sample()); err != nil {
		panic(err)
	}

	query := "smiling face"
	if flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}

	var results []core.SearchResult
	var err error
	switch {
	case *prefix:
		results, err = engine.SearchPrefix(query, *limit)
	case *best:
		results, err = engine.SearchBest(query, *limit)
	default:
		results, err = engine.Search(query, *limit)
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s '%s' (%d)[%0.3f]\n", i, hit.Entry.Symbol, hit.Entry.Name, hit.Entry.Id, hit.Score)
	}
}
