package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// jsonTopFiles is how many entries the JSON export ranks.
const jsonTopFiles = 10

// jsonMeta mirrors the meta block of the JSON export.
type jsonMeta struct {
	AnalyzedAt    string  `json:"analyzed_at"`
	RootDir       string  `json:"root_dir"`
	ExecutionTime float64 `json:"execution_time"`
}

// jsonReport is the full JSON export document.
type jsonReport struct {
	Meta      jsonMeta                 `json:"meta"`
	Totals    ScanTotals               `json:"totals"`
	Languages map[string]CategoryTally `json:"languages"`
	TopFiles  []FileRecord             `json:"top_files"`
	Todos     map[string]int           `json:"todos"`
}

// exportJSON writes the report as an indented JSON document.
func exportJSON(model *ReportModel, path string) error {
	doc := jsonReport{
		Meta: jsonMeta{
			AnalyzedAt:    model.AnalyzedAt.Format(time.RFC3339),
			RootDir:       model.RootDir,
			ExecutionTime: model.Elapsed.Seconds(),
		},
		Totals:    model.Totals,
		Languages: model.ByLang,
		TopFiles:  model.TopFiles("lines", jsonTopFiles),
		Todos:     model.TodoCounts,
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write JSON report %s: %w", path, err)
	}
	return nil
}

// exportCSV writes one row per language. Rows are ordered descending by
// lines so the file is stable between runs.
func exportCSV(model *ReportModel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Language", "Files", "Lines", "Tokens", "Chars"}); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, lang := range languagesByLines(model) {
		tally := model.ByLang[lang]
		row := []string{
			lang,
			strconv.Itoa(tally.Files),
			strconv.Itoa(tally.Lines),
			strconv.Itoa(tally.Tokens),
			strconv.Itoa(tally.Chars),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", lang, err)
		}
	}
	w.Flush()
	return w.Error()
}
