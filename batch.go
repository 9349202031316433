package svgcomp

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/yacobolo/svgcomp/internal/generate"
)

// BatchItem is one SVG document of a batch
type BatchItem struct {
	Name    string // Base component name, usually the file name without extension
	Content string
	Source  string // Where the content came from, used in reports (optional)
}

// BatchOptions configures ConvertBatch
type BatchOptions struct {
	Options
	Concurrency int // Parallel conversions (default: runtime.NumCPU())
}

// ItemError is a failed batch item
type ItemError struct {
	Index  int
	Name   string
	Source string
	Err    error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// BatchResult holds the successful conversions and the failures of a batch,
// both in input order.
type BatchResult struct {
	Results []*ComponentResult
	Errors  []*ItemError // Non-fatal
}

// ConvertBatch converts every item concurrently. Component names are
// resolved up front so two inputs never produce the same component: a
// collision gets a numeric suffix in input order (Icon, Icon2, ...).
// A failing item never stops the others.
func ConvertBatch(items []BatchItem, opts BatchOptions) *BatchResult {
	names := resolveNames(items, opts.Options)

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := make([]*ComponentResult, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i, item := range items {
		wg.Add(1)
		go func(i int, item BatchItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			itemOpts := opts.Options
			itemOpts.Name = item.Name
			genOpts := itemOpts.generateOptions()
			genOpts.ComponentName = names[i]
			genOpts.ExactName = true

			res, err := convert(item.Content, itemOpts, genOpts)
			if res != nil {
				res.Source = item.Source
			}
			results[i], errs[i] = res, err
		}(i, item)
	}
	wg.Wait()

	batch := &BatchResult{}
	for i := range items {
		if errs[i] != nil {
			batch.Errors = append(batch.Errors, &ItemError{
				Index:  i,
				Name:   itemLabel(items[i], i),
				Source: items[i].Source,
				Err:    errs[i],
			})
			continue
		}
		batch.Results = append(batch.Results, results[i])
	}
	return batch
}

// resolveNames formats every component name and suffixes duplicates
func resolveNames(items []BatchItem, opts Options) []string {
	names := make([]string, len(items))
	used := make(map[string]bool, len(items))

	for i, item := range items {
		base := generate.FormatComponentName(item.Name, opts.Prefix, opts.Suffix)
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

func itemLabel(item BatchItem, i int) string {
	if item.Name != "" {
		return item.Name
	}
	return fmt.Sprintf("item %d", i+1)
}
