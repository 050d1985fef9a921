// Copyright 2026 The blockdoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command blockdoc parses a Markdown file and renders it as HTML or
// writes it back out as canonical CommonMark.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/crazyants/blockdoc"
)

func main() {
	app := newApp(afero.NewOsFs(), os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "blockdoc:", err)
		os.Exit(1)
	}
}

// newApp builds the CLI application against the given filesystem and
// output stream, so tests can substitute an [afero.MemMapFs] and a
// buffer instead of the real filesystem and stdout.
func newApp(fs afero.Fs, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "blockdoc",
		Usage:     "parse and render CommonMark-flavored Markdown",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "to",
				Usage: "output format: `html` or `markdown`",
				Value: "html",
			},
			&cli.StringFlag{
				Name:  "soft-break",
				Usage: "soft line break rendering: `preserve`, `space`, or `hard`",
				Value: "preserve",
			},
			&cli.BoolFlag{
				Name:  "ignore-raw",
				Usage: "drop raw HTML blocks and inline tags entirely",
			},
			&cli.BoolFlag{
				Name:  "filter-tags",
				Usage: "escape dangerous raw HTML tags (script, style, ...) per the GitHub Flavored Markdown tag filter",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "inline-phase worker count; 0 uses GOMAXPROCS",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log block-phase parser decisions at debug level",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus counters at `ADDR` (e.g. :9090) while parsing",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, fs, stdout)
		},
	}
}

// run implements the app's Action against an injectable filesystem and
// output stream, so tests can substitute an [afero.MemMapFs] and a
// buffer instead of the real filesystem and stdout.
func run(ctx *cli.Context, fs afero.Fs, stdout io.Writer) error {
	if ctx.NArg() != 1 {
		return cli.Exit("exactly one FILE argument is required", 2)
	}
	path := ctx.Args().First()

	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("read %s: %v", path, err), 1)
	}

	opts, closeMetrics, err := buildEngineOptions(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer closeMetrics()

	doc, err := parseDocument(source, opts)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	switch to := ctx.String("to"); to {
	case "html":
		return renderHTML(ctx, stdout, doc)
	case "markdown":
		return renderMarkdown(stdout, doc)
	default:
		return cli.Exit(fmt.Sprintf("unknown --to value %q (want html or markdown)", to), 2)
	}
}

// buildEngineOptions assembles the [blockdoc.EngineOption] values shared
// by both phases (tracer, metrics, worker count); reference resolution
// is layered on separately once the block phase has run, since
// [blockdoc.WithReferences] needs the block tree to exist first.
func buildEngineOptions(ctx *cli.Context) (opts []blockdoc.EngineOption, cleanup func(), err error) {
	cleanup = func() {}

	if ctx.Bool("trace") {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, cleanup, fmt.Errorf("construct trace logger: %w", err)
		}
		opts = append(opts, blockdoc.WithTracer(blockdoc.NewZapTracer(log)))
	}

	if addr := ctx.String("metrics-addr"); addr != "" {
		reg := prometheus.NewRegistry()
		metrics := blockdoc.NewPrometheusMetrics(reg)
		opts = append(opts, blockdoc.WithMetrics(metrics))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintln(os.Stderr, "blockdoc: metrics server:", err)
			}
		}()
		cleanup = func() { srv.Close() }
	}

	if n := ctx.Int("workers"); n > 0 {
		opts = append(opts, blockdoc.WithInlineWorkers(n))
	}

	return opts, cleanup, nil
}
