package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/fwojciec/xpatlat/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Credentials xpatlat.CredentialStore
	Browser     xpatlat.Browser
	Capturer    xpatlat.LoginCapturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Cookies   string `short:"k" default:"${cookies}" env:"XPATLAT_COOKIES" help:"Cookie file written by 'login' and read by 'search'"`
	Chrome    string `env:"XPATLAT_CHROME" help:"Chrome or Chromium binary (default: detect or download)"`
	Verbose   bool   `short:"v" help:"Log every step to stderr"`
	LogFormat string `enum:"text,json" default:"text" help:"Log format (text, json)"`

	Search  SearchCmd  `cmd:"" help:"Run a search with the saved session and print matching posts"`
	Login   LoginCmd   `cmd:"" help:"Open the login page and save the session cookies"`
	Extract ExtractCmd `cmd:"" help:"Extract posts from a saved HTML page"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query         string        `arg:"" optional:"" help:"URL-encoded search query (default: the sample query when no filter is given)"`
	Limit         int           `short:"n" default:"10" help:"Maximum number of posts to collect"`
	Rounds        int           `short:"r" default:"5" help:"Scroll rounds before extraction"`
	Settle        time.Duration `default:"3s" help:"Wait after each scroll"`
	InitialSettle time.Duration `default:"5s" help:"Wait after the page loads, before scrolling"`
	ScrollOffset  float64       `default:"3000" help:"Pixels scrolled per round"`
	Selector      string        `default:"${selector}" help:"CSS selector of post text nodes"`
	BaseURL       string        `name:"url" default:"${search_url}" help:"Search URL the query is appended to"`
	Timeout       time.Duration `short:"t" default:"5m" help:"Abort the whole run after this long"`
	NavTimeout    time.Duration `default:"30s" help:"Page load timeout"`
	Headful       bool          `help:"Show the browser window"`
	Dump          string        `type:"path" help:"Save the rendered page to this file before extraction"`

	// Filters are encoded and appended to the positional query.
	Template        string   `help:"Start from a filter preset (${templates})" group:"Filters"`
	Text            string   `help:"Free text, encoded for you" group:"Filters"`
	From            string   `help:"Only posts by this account" group:"Filters"`
	To              string   `help:"Only posts replying to this account" group:"Filters"`
	Since           string   `help:"Only posts on or after this date (YYYY-MM-DD)" group:"Filters"`
	Until           string   `help:"Only posts on or before this date (YYYY-MM-DD)" group:"Filters"`
	MinFaves        int      `help:"Minimum likes" group:"Filters"`
	MinRetweets     int      `help:"Minimum reposts" group:"Filters"`
	Lang            string   `help:"Post language code" group:"Filters"`
	Media           bool     `help:"Only posts with media" group:"Filters"`
	Images          bool     `help:"Only posts with images" group:"Filters"`
	Videos          bool     `help:"Only posts with videos" group:"Filters"`
	Links           bool     `help:"Only posts with links" group:"Filters"`
	Question        bool     `help:"Only questions" group:"Filters"`
	Replies         bool     `help:"Only replies" group:"Filters"`
	ExcludeRetweets bool     `help:"Leave out reposts" group:"Filters"`
	Hashtag         []string `help:"Required hashtag (repeatable)" group:"Filters"`
	Exclude         []string `help:"Word that must not appear (repeatable)" group:"Filters"`
	Sort            string   `help:"Result tab: top, live, user, image, video" group:"Filters"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	URL    string        `default:"${login_url}" help:"Login page"`
	Window time.Duration `short:"w" default:"150s" help:"Time given to log in before cookies are saved"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" type:"existingfile" help:"HTML file saved with 'search --dump'"`
	Limit    int    `short:"n" default:"10" help:"Maximum number of posts to collect"`
	Selector string `default:"${selector}" help:"CSS selector of post text nodes"`
}

// vars are the interpolated defaults referenced by the CLI struct tags.
func vars() map[string]string {
	return map[string]string{
		"cookies":    fs.DefaultCredentialPath,
		"templates":  strings.Join(xpatlat.SearchTemplateNames(), ", "),
		"selector":   xpatlat.DefaultSelector,
		"search_url": xpatlat.DefaultSearchURL,
		"login_url":  xpatlat.DefaultLoginURL,
	}
}
