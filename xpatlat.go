// Package xpatlat extracts search results from an authenticated, infinitely
// scrolling page. It reuses a previously captured login session, opens the
// search in a headless browser, scrolls to load more results and collects a
// bounded number of text items.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, fs/).
package xpatlat
