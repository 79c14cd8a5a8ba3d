package main

import (
	"net/url"
	"sort"
	"strings"
)

// dirEntry is one child of a listed directory. Name and whether it is a
// directory are all the listing carries; size and timestamps are
// deliberately absent.
type dirEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"isDir"`
}

// listingDocument is the machine-readable form of a directory listing.
type listingDocument struct {
	Entries    []dirEntry        `json:"entries"`
	Statistics listingStatistics `json:"statistics"`
}

// listEntries enumerates the immediate children of dir, sorted by name,
// byte-wise ascending.
func listEntries(fsys FileSystem, dir string) ([]dirEntry, error) {
	children, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]dirEntry, 0, len(children))
	for _, c := range children {
		// A child whose type cannot be determined lists as a file.
		entries = append(entries, dirEntry{Name: c.Name(), IsDir: c.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// renderListing builds the index document. The href and the label are two
// independent encodings of the same name: percent-encoding for the URL,
// entity-escaping for the markup. Directories get a trailing slash in
// both. withParent adds the ../ link for every directory except the root.
func renderListing(entries []dirEntry, withParent bool) string {
	var b strings.Builder
	b.WriteString("<!doctype html><html><head><meta charset='utf-8'>")
	b.WriteString("<title>Index</title>")
	b.WriteString("<style>body{font-family:system-ui,Arial,sans-serif} a{text-decoration:none}</style>")
	b.WriteString("</head><body>")
	b.WriteString("<h1>Index</h1><ul>")

	if withParent {
		b.WriteString(`<li><a href="../">../</a></li>`)
	}

	for _, e := range entries {
		label := e.Name
		href := url.PathEscape(e.Name)
		if e.IsDir {
			label += "/"
			href += "/"
		}
		b.WriteString(`<li><a href="`)
		b.WriteString(href)
		b.WriteString(`">`)
		b.WriteString(htmlEscaper.Replace(label))
		b.WriteString("</a></li>")
	}

	b.WriteString("</ul></body></html>")
	return b.String()
}
