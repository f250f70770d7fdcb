package main

import (
	"fmt"

	"github.com/fwojciec/xpatlat"
)

// Validate checks flag values before any work is done.
func (c *LoginCmd) Validate() error {
	if c.Window <= 0 {
		return xpatlat.Errorf(xpatlat.EINVALID, "login window must be positive")
	}
	return nil
}

// Run executes the login command. The cookies present when the window ends
// are saved whether or not the login actually succeeded.
func (c *LoginCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Log in within %s; cookies are saved when the time is up.\n", c.Window)

	cookies, err := deps.Capturer.Capture(deps.Ctx, c.URL, c.Window)
	if err != nil {
		reportError(deps, err, c.Window)
		return err
	}

	if err := deps.Credentials.Save(deps.Ctx, cookies); err != nil {
		reportError(deps, err, c.Window)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d cookies\n", len(cookies))
	return nil
}
