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
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/peermatch"
)

var (
	dataDir     = flag.String("data-dir", "./peermatch_db", "path to the data directory")
	topk        = flag.Int("topk", 5, "maximum number of hits to print")
	keywordOnly = flag.Bool("keyword-only", false, "skip semantic retrieval")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := peermatch.NewDatabase(*dataDir)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	searcher, err := db.Searcher()
	if err != nil {
		panic(err)
	}

	query := "machine learning"
	if flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}

	ctx := context.Background()
	response, err := searcher.Search(ctx, query, *topk, !*keywordOnly)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits for %q via %s search\n", response.TotalFound, response.Query, response.SearchMethod)
	if response.FallbackUsed {
		fmt.Printf("Fell back to keyword search: %s\n", response.FallbackReason)
	}
	for i, hit := range response.Hits {
		fmt.Printf("%d: %s <%s> (%d)[%0.3f] %s\n",
			i, hit.FullName, hit.Email, hit.ProfileId, hit.FinalScore, strings.Join(hit.Methods, "+"))
		if hit.Snippet != "" {
			fmt.Printf("   %s\n", hit.Snippet)
		}
	}
}
