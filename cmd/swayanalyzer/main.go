// Command swayanalyzer runs the static-analysis engine's detector catalog
// over one or more Sway projects and prints the resulting report.
//
// Usage:
//
//	swayanalyzer [--display-format text|json] [--directory dir] [--files path...] [--detectors name...] [--sorting line|severity] [--config path] [--verbose] [--version]
//
// Exit codes: 0 on success (findings themselves are never an error),
// non-zero on a configuration or I/O error, matching §6/§7.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	swayanalyzer "github.com/ourovoros-io/sway-analyzer-go"
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/config"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/detectors"
	"github.com/ourovoros-io/sway-analyzer-go/errs"
	"github.com/ourovoros-io/sway-analyzer-go/project"
	"github.com/ourovoros-io/sway-analyzer-go/report"
)

// Parse is the analyzer's external-collaborator extension point (§1, §6
// "Inputs"): the lexer/parser for the Sway dialect itself. It is left
// unset here — a concrete build of this tool links a real parser and
// assigns it during init() — so running this binary as shipped reports a
// clear configuration error rather than silently producing an empty
// report.
var Parse detect.ParserFunc

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("swayanalyzer", flag.ContinueOnError)
	displayFormat := fs.String("display-format", "", "report format: text or json")
	directory := fs.String("directory", "", "project directory to scan recursively")
	sorting := fs.String("sorting", "", "report sort mode: line or severity")
	configPath := fs.String("config", ".swayanalyzer.yaml", "path to an options file")
	verbose := fs.Bool("verbose", false, "log progress to stderr")
	version := fs.Bool("version", false, "print the analyzer's module/version banner and exit")
	var files stringList
	var names stringList
	fs.Var(&files, "files", "an explicit file to analyze (repeatable)")
	fs.Var(&names, "detectors", "a detector name to select (repeatable, default: all)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Printf("swayanalyzer (%s) go%s\n", swayanalyzer.ModulePath(), swayanalyzer.GoVersion())
		return 0
	}

	fileOpts, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swayanalyzer: %v\n", err)
		return 1
	}
	cliOpts := &config.Options{
		DisplayFormat: *displayFormat,
		Directory:     *directory,
		Files:         files,
		Detectors:     names,
		Sorting:       *sorting,
	}
	opts := config.Merge(fileOpts, cliOpts)

	if err := execute(opts, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "swayanalyzer: %v\n", err)
		return 1
	}
	return 0
}

func execute(opts *config.Options, verbose bool) error {
	format, err := report.ParseDisplayFormat(opts.DisplayFormat)
	if err != nil {
		return err
	}
	sortMode, err := report.ParseSortMode(opts.Sorting)
	if err != nil {
		return err
	}
	catalog := detectors.Catalog()
	for _, name := range opts.Detectors {
		if _, ok := catalog[name]; !ok {
			return &errs.UnknownDetector{Name: name}
		}
	}

	// Neither directory nor files provided: a no-op success, per §6.
	if opts.Directory == "" && len(opts.Files) == 0 {
		return nil
	}

	paths, err := collectFiles(opts, verbose)
	if err != nil {
		return err
	}

	if Parse == nil {
		return fmt.Errorf("no Sway parser linked into this build: an embedder must set main.Parse before analysis can run")
	}

	host := detect.NewHostWithSort(sortMode)
	modules := make(map[string]*swayast.Module, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return &errs.Wrapped{Err: err}
		}
		host.AddFile(path, src)
		mod, err := Parse(path, src)
		if err != nil {
			return &errs.ParseFailed{Path: path, Err: err}
		}
		modules[path] = mod
		if verbose {
			log.Printf("loaded %s", path)
		}
	}

	if err := detect.Run(host, modules, opts.Detectors, catalog); err != nil {
		return err
	}

	out, err := host.Sink().Render(format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// collectFiles resolves opts.Directory (scanned recursively for every
// discovered project's source tree) and opts.Files into one deduplicated,
// sorted path list.
func collectFiles(opts *config.Options, verbose bool) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, f := range opts.Files {
		add(f)
	}

	if opts.Directory != "" {
		detector := project.New()
		projects, err := detector.Discover(opts.Directory)
		if err != nil {
			return nil, &errs.Wrapped{Err: err}
		}
		for _, p := range projects {
			if verbose {
				log.Printf("found project %q at %s", p.Name, p.RootPath)
			}
			srcFiles, err := p.SourceFiles("")
			if err != nil {
				return nil, &errs.Wrapped{Err: err}
			}
			for _, f := range srcFiles {
				add(f)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}
