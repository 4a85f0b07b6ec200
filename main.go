package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	extraExcludes     string
	noDefaultExcludes bool
	noIgnore          bool

	// Report
	topN       int
	plainOut   bool
	outputFile string
	copyToClip bool

	// Exports
	jsonFile string
	csvFile  string
	pdfFile  string

	// Git
	noGit bool

	// Token counting
	tokenizerKind string
	tokenizerMod  string
	tokenizerPath string

	// Processing
	numThreads int

	// Interactive mode
	interactiveMode bool
)

// version is set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pulse [PATH]",
	Short: "Pulse analyzes a project tree and reports its statistics and health.",
	Long: `Pulse walks a project directory, classifies every file by language,
counts lines, characters and estimated tokens, tallies technical-debt
markers (TODO, FIXME, ...), and renders a report with optional JSON,
CSV and PDF exports.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyViperSettings()

		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		if interactiveMode {
			picked, err := pickRootInteractively()
			if err != nil {
				return err
			}
			if picked == "" {
				return nil // user aborted
			}
			root = picked
		}

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		defer cfg.Tokenizer.Close()

		fmt.Fprintf(os.Stderr, "Scanning %s...\n", root)
		model, err := Scan(root, cfg)
		if err != nil {
			return err
		}

		var gitInfo GitInfo
		if !noGit {
			gitInfo = collectGitInfo(root)
		}

		// Report routing. Files and the clipboard always get the plain
		// variant; ANSI sequences don't belong in either.
		report := renderReport(model, gitInfo, topN, !plainOut)
		plain := report
		if !plainOut {
			plain = renderReport(model, gitInfo, topN, false)
		}
		switch {
		case outputFile != "":
			if err := os.WriteFile(outputFile, []byte(plain), 0644); err != nil {
				return fmt.Errorf("write report to %s: %w", outputFile, err)
			}
			fmt.Fprintf(os.Stderr, "Report saved to %s\n", outputFile)
		case copyToClip:
			if err := clipboard.WriteAll(plain); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: clipboard write failed: %v\n", err)
				fmt.Println(report)
			} else {
				fmt.Fprintln(os.Stderr, "Report copied to clipboard.")
			}
		default:
			fmt.Println(report)
		}

		// Exports
		if jsonFile != "" {
			if err := exportJSON(model, jsonFile); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "JSON report saved to %s\n", jsonFile)
		}
		if csvFile != "" {
			if err := exportCSV(model, csvFile); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "CSV report saved to %s\n", csvFile)
		}
		if pdfFile != "" {
			if err := generatePDF(model, gitInfo, topN, pdfFile); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "PDF report saved to %s\n", pdfFile)
		}

		return nil
	},
}

// applyViperSettings copies the effective option values back into the
// flag variables. Binding alone isn't enough: the variables only see
// explicit flags, while viper layers flag > env > config file > default.
func applyViperSettings() {
	extraExcludes = viper.GetString("exclude")
	noDefaultExcludes = viper.GetBool("no_default_excludes")
	noIgnore = viper.GetBool("no_ignore")
	topN = viper.GetInt("top")
	plainOut = viper.GetBool("plain")
	outputFile = viper.GetString("file")
	copyToClip = viper.GetBool("clipboard")
	jsonFile = viper.GetString("json")
	csvFile = viper.GetString("csv")
	pdfFile = viper.GetString("pdf")
	noGit = viper.GetBool("no_git")
	tokenizerKind = viper.GetString("tokenizer")
	tokenizerMod = viper.GetString("model")
	tokenizerPath = viper.GetString("tokenizer_file")
	numThreads = viper.GetInt("threads")
	interactiveMode = viper.GetBool("interactive")
}

// buildConfig assembles the scan configuration from flags, config file
// and defaults.
func buildConfig() (*Config, error) {
	excludes := []string{}
	if !noDefaultExcludes {
		excludes = append(excludes, defaultExcludeDirs...)
	}
	for _, name := range strings.Split(extraExcludes, ",") {
		if name = strings.TrimSpace(name); name != "" {
			excludes = append(excludes, name)
		}
	}

	languages := DefaultLanguages()
	if path := findLanguageFile(); path != "" {
		custom, err := LoadLanguageTable(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; using built-in language table\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Loaded %d language rules from %s\n", custom.Len(), path)
			languages = custom
		}
	}

	tokenizer, err := newTokenizer(tokenizerKind, tokenizerMod, tokenizerPath)
	if err != nil {
		return nil, err
	}

	markers := defaultTodoMarkers
	if custom := viper.GetStringSlice("todo_markers"); len(custom) > 0 {
		markers = custom
	}

	return &Config{
		ExcludeDirs:  excludeSet(excludes),
		Languages:    languages,
		TodoMarkers:  markers,
		Tokenizer:    tokenizer,
		Workers:      numThreads,
		UseGitignore: !noIgnore,
	}, nil
}

// findLanguageFile looks for a languages.yml override in the standard
// config locations.
func findLanguageFile() string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pulse", "languages.yml"))
	}
	paths = append(paths, "languages.yml")
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&extraExcludes, "exclude", "e", "", "Additional directory names to exclude (comma-separated)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().BoolVar(&noDefaultExcludes, "no-default-excludes", false, "Don't apply the built-in exclusion set")
	viper.BindPFlag("no_default_excludes", rootCmd.Flags().Lookup("no-default-excludes"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	rootCmd.Flags().IntVar(&topN, "top", 5, "Number of entries in the top-files table")
	viper.BindPFlag("top", rootCmd.Flags().Lookup("top"))
	rootCmd.Flags().BoolVar(&plainOut, "plain", false, "Plain text output, no styling")
	viper.BindPFlag("plain", rootCmd.Flags().Lookup("plain"))
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the report to a file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClip, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))

	rootCmd.Flags().StringVar(&jsonFile, "json", "", "Export the report as JSON")
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	rootCmd.Flags().StringVar(&csvFile, "csv", "", "Export the report as CSV")
	viper.BindPFlag("csv", rootCmd.Flags().Lookup("csv"))
	rootCmd.Flags().StringVar(&pdfFile, "pdf", "", "Export the report as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	rootCmd.Flags().BoolVar(&noGit, "no-git", false, "Skip git metadata collection")
	viper.BindPFlag("no_git", rootCmd.Flags().Lookup("no-git"))

	rootCmd.Flags().StringVar(&tokenizerKind, "tokenizer", "heuristic", "Token counter: heuristic, tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerMod, "model", "", "Model name for exact tokenizers (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerPath, "tokenizer-file", "", "Path to a local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Measuring workers (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))

	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the directory to analyze with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("top", 5)
	viper.SetDefault("tokenizer", "heuristic")
	viper.SetDefault("todo_markers", defaultTodoMarkers)
}

// initConfig reads the config file and PULSE_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	viper.AddConfigPath(filepath.Join(home, ".config", "pulse"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("PULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
