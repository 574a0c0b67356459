// Copyright 2026 Sağlık ROCK Authors
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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alihaydarkir/saglikrock"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	system, err := saglikrock.NewSystem("./saglikrock.db")
	if err != nil {
		panic(err)
	}
	defer system.Close()

	question := "CPR kompresyon oranı nedir?"
	if len(os.Args) > 1 {
		question = strings.Join(os.Args[1:], " ")
	}

	result, err := system.SearchEngine().Search(context.Background(), question)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Category %s, %d hits\n", result.Analysis.Category, len(result.Hits))
	for i, hit := range result.Hits {
		fmt.Printf("%d: '%s' (%d)[%0.3f x%d]\n", i, hit.Document.Content, hit.Document.Id, hit.Score, hit.Appearances)
	}
}
