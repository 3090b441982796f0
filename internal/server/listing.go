package server

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/engbent/bounty/internal/urlpath"
)

// entryCollator orders listing entries. A collator gives a stable,
// locale-independent ordering for mixed-script names where plain byte
// comparison varies with normalization form.
var entryCollator = collate.New(language.Und)

// renderListing builds the HTML index page for dir: one link per immediate
// child, nothing recursive. Child names are percent-encoded in hrefs so
// spaces and non-ASCII names survive the round trip; directories carry a
// trailing slash on both href and label. Any enumeration failure fails the
// whole listing — there is no partial output.
func renderListing(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entryCollator.CompareString(entries[i].Name(), entries[j].Name()) < 0
	})

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"></head><body>`)
	fmt.Fprintf(&b, "<h1>Directory listing for %s</h1>",
		html.EscapeString(urlpath.Decode(filepath.ToSlash(dir))))

	for _, entry := range entries {
		name := entry.Name()
		href := urlpath.Encode(name)
		if entry.IsDir() {
			fmt.Fprintf(&b, `<a href="%s/">%s/</a><br>`, href, html.EscapeString(name))
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", filepath.Join(dir, name), err)
		}
		fmt.Fprintf(&b, `<a href="%s">%s</a> (%s)<br>`,
			href, html.EscapeString(name), humanize.Bytes(uint64(info.Size())))
	}

	b.WriteString("</body></html>")
	return b.String(), nil
}
