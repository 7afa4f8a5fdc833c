package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/lawcopy"
	"golang.org/x/sync/errgroup"
)

// noteArticles holds the articles found in one note.
type noteArticles struct {
	SourcePath string             `json:"sourcePath"`
	Skipped    bool               `json:"skipped,omitempty"`
	Articles   []*lawcopy.Article `json:"articles"`
}

// Run executes the dump command.
func (c *DumpCmd) Run(deps *Dependencies) error {
	whitelist, err := loadWhitelist(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Results are indexed by argument position so output order is stable.
	results := make([]*noteArticles, len(c.Notes))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range c.Notes {
		g.Go(func() error {
			note, paragraphs, err := loadParagraphs(deps, whitelist, path)
			if lawcopy.ErrorCode(err) == lawcopy.EFORBIDDEN {
				results[i] = &noteArticles{SourcePath: note.SourcePath, Skipped: true}
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = &noteArticles{
				SourcePath: note.SourcePath,
				Articles:   lawcopy.FindArticles(paragraphs),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Skipped {
			fmt.Fprintf(deps.Stderr, "skip: %s is outside the whitelisted folders\n", r.SourcePath)
			continue
		}
		fmt.Fprintf(deps.Stdout, "# %s\n", r.SourcePath)
		for _, a := range r.Articles {
			fmt.Fprintf(deps.Stdout, "\n%s\n", a.Text())
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
