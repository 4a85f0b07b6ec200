package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts tokens in text. The default implementation is the
// chars/4 heuristic; the exact tokenizers are opt-in because they cost
// real time (and, for huggingface, a model download).
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const (
	defaultTiktokenModel = "gpt-4o"
	defaultHFModel       = "gpt2"
)

// HeuristicTokenizer estimates one token per four characters. Cheap and
// intentionally approximate.
type HeuristicTokenizer struct{}

func (HeuristicTokenizer) CountTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}

func (HeuristicTokenizer) Close() {}

// tiktokenCounter wraps a tiktoken encoding.
type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}

// hfCounter wraps a sugarme/tokenizer instance.
type hfCounter struct {
	tk *hf.Tokenizer
}

func (c *hfCounter) CountTokens(text string) int {
	if c.tk == nil {
		return 0
	}
	en, err := c.tk.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tokenizer failed to encode text: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

func (c *hfCounter) Close() {}

// newTokenizer builds a tokenizer for the requested kind. model and file
// are only consulted by the exact tokenizers.
func newTokenizer(kind, model, file string) (Tokenizer, error) {
	switch strings.ToLower(kind) {
	case "", "heuristic":
		return HeuristicTokenizer{}, nil
	case "tiktoken":
		return newTiktoken(model)
	case "huggingface":
		return newHuggingFace(model, file)
	default:
		return nil, fmt.Errorf("unsupported tokenizer %q: use heuristic, tiktoken or huggingface", kind)
	}
}

func newTiktoken(model string) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Unknown model: fall back to the default encoding rather than
		// failing the whole run.
		fmt.Fprintf(os.Stderr, "Warning: tiktoken model %q not found, using %s: %v\n", model, defaultTiktokenModel, err)
		enc, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("tiktoken encoding for %s: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenCounter{enc: enc}, nil
}

func newHuggingFace(model, file string) (Tokenizer, error) {
	if file != "" {
		tk, err := pretrained.FromFile(file)
		if err != nil {
			return nil, fmt.Errorf("load tokenizer from %s: %w", file, err)
		}
		return &hfCounter{tk: tk}, nil
	}

	if model == "" {
		model = defaultHFModel
	}
	// CachedPath downloads tokenizer.json from the Hub on first use.
	path, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("fetch tokenizer for %s: %w", model, err)
	}
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pretrained tokenizer %s: %w", model, err)
	}
	return &hfCounter{tk: tk}, nil
}
