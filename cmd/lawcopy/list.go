package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/lawcopy"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	whitelist, err := loadWhitelist(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	_, paragraphs, err := loadParagraphs(deps, whitelist, c.Note)
	if lawcopy.ErrorCode(err) == lawcopy.EFORBIDDEN {
		fmt.Fprintf(deps.Stderr, "skip: %s\n", lawcopy.ErrorMessage(err))
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	articles := lawcopy.FindArticles(paragraphs)
	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%d\t%s\t%s\n", a.Index, a.Kind, firstLine(a.Title()))
	}
	return nil
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
