package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/lawcopy"
)

// Run executes the whitelist show command.
func (c *WhitelistShowCmd) Run(deps *Dependencies) error {
	whitelist, err := loadWhitelist(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	if len(whitelist) == 0 {
		fmt.Fprintln(deps.Stdout, "No whitelisted folders. Articles can be copied from every note.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, whitelist.String())
	return nil
}

// Run executes the whitelist set command.
func (c *WhitelistSetCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	whitelist := lawcopy.ParseWhitelist(strings.Join(c.Folders, "\n"))
	settings.WhitelistFolders = []string(whitelist)
	if settings.WhitelistFolders == nil {
		settings.WhitelistFolders = []string{}
	}

	if err := deps.Settings.SaveSettings(deps.Ctx, settings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	if len(whitelist) == 0 {
		fmt.Fprintln(deps.Stdout, "Whitelist cleared. Articles can be copied from every note.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Whitelisted %d folder(s):\n%s\n", len(whitelist), whitelist.String())
	return nil
}
