package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/altlab/munge"
	"github.com/altlab/munge/adapters/hfstanalyzer"
	"github.com/altlab/munge/adapters/jsonstorage"
	"github.com/altlab/munge/adapters/sqlitestorage"
	"github.com/altlab/munge/adapters/toolboxreader"
	"github.com/altlab/munge/service"
)

var flagDatabase = flag.String("dictionary-database", "", "Toolbox database dump (ND-JSON or JSON array, required)")
var flagOutput = flag.String("output-file", "crkeng_dictionary.importjson", "Output importjson path")
var flagEcho = flag.Bool("echo", false, "Print the result to stdout as well")
var flagTestWordsOnly = flag.Bool("test-words-only", false, "Restrict to the fixture allow-list of lemmas")
var flagPretty = flag.Bool("pretty", true, "Pretty-print the output file")
var flagTransducer = flag.String("analyzer", "crk-strict-analyzer-for-dictionary.hfstol", "Path to the analyzer transducer")
var flagLookup = flag.String("lookup-command", hfstanalyzer.DefaultExecutable, "hfst-optimized-lookup executable")
var flagRuleset = flag.String("ruleset", "", "Optional YAML ruleset override")
var flagSQLite = flag.String("sqlite", "", "Optional SQLite database to import the run into")

func main() {
	flag.Parse()

	if *flagDatabase == "" {
		log.Fatal("-dictionary-database is required")
	}

	records, err := toolboxreader.ReadFile(*flagDatabase)
	if err != nil {
		log.Fatal("Failed to read database dump: ", err)
	}

	if *flagTestWordsOnly {
		ri := 0
		for _, record := range records {
			if munge.TestWords[record.Lemma] {
				records[ri] = record
				ri++
			}
		}
		records = records[:ri]
	}

	ruleset := munge.DefaultRuleset()
	if *flagRuleset != "" {
		ruleset, err = munge.LoadRuleset(*flagRuleset)
		if err != nil {
			log.Fatal("Failed to load ruleset: ", err)
		}
	}

	analyzer, err := hfstanalyzer.New(*flagLookup, *flagTransducer)
	if err != nil {
		log.Fatal("Failed to set up analyzer: ", err)
	}

	converter := service.NewConverter(analyzer, ruleset)
	entries, stats, err := converter.Convert(context.Background(), records)
	if err != nil {
		log.Fatal("Conversion failed: ", err)
	}

	if err := jsonstorage.WriteFile(*flagOutput, entries, *flagPretty); err != nil {
		log.Fatal("Failed to write output: ", err)
	}

	if *flagSQLite != "" {
		storage, err := sqlitestorage.Open(*flagSQLite)
		if err != nil {
			log.Fatal("Failed to open SQLite database: ", err)
		}

		if err := storage.ImportRun(context.Background(), stats, entries); err != nil {
			log.Fatal("Failed to import into SQLite: ", err)
		}
		if err := storage.Close(); err != nil {
			log.Fatal("Failed to close SQLite database: ", err)
		}
	}

	if *flagEcho {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(entries); err != nil {
			log.Fatal("Failed to echo output: ", err)
		}
	}
}
