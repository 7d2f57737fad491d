// fetchwords builds .wdpck word packs by scraping link texts out of wiki
// article paragraphs. Anchors inside prose paragraphs are almost always
// nouns and named things, which makes them decent guessing material.
package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"aliasgame/internal/wordpack"
)

type Config struct {
	host    string
	page    string
	depth   int
	outDir  string
	timeout time.Duration
}

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fetchwords",
		Short:         "Scrape a wiki page into a .wdpck word pack.",
		Args:          cobra.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfg.host, "host", "https://en.wikipedia.org", "host to resolve relative links against")
	fs.StringVar(&cfg.page, "page", "/wiki/Board_game", "page to scrape")
	fs.IntVar(&cfg.depth, "depth", 1, "how many levels of linked pages to follow")
	fs.StringVarP(&cfg.outDir, "out", "o", ".", "directory to write the word pack into")
	fs.DurationVar(&cfg.timeout, "timeout", 15*time.Second, "timeout per page fetch")

	return cmd
}

func run(cfg *Config) error {
	client := &http.Client{Timeout: cfg.timeout}

	raw, err := collectWords(client, cfg.host, cfg.page, cfg.depth)
	if err != nil {
		return err
	}
	words := cleanWords(raw)
	if len(words) == 0 {
		return fmt.Errorf("no words found under %s%s", cfg.host, cfg.page)
	}

	name := path.Base(cfg.page) + wordpack.Ext
	out := filepath.Join(cfg.outDir, name)
	if err := os.WriteFile(out, []byte(strings.Join(words, ",")), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %d words to %s\n", len(words), out)
	return nil
}

// collectWords pulls the text of every anchor that sits directly inside a
// paragraph, then follows each anchor's href for depth more levels. Pages
// that fail to fetch are skipped; a broken link should not sink the pack.
func collectWords(client *http.Client, host, page string, depth int) ([]string, error) {
	res, err := client.Get(normalizeURL(host, page))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", page, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, err
	}

	var words []string
	doc.Find("p > a").Each(func(_ int, anchor *goquery.Selection) {
		if text := strings.TrimSpace(anchor.Text()); text != "" {
			words = append(words, text)
		}
		if depth > 0 {
			if href, ok := anchor.Attr("href"); ok {
				sub, err := collectWords(client, host, href, depth-1)
				if err == nil {
					words = append(words, sub...)
				}
			}
		}
	})
	return words, nil
}

// cleanWords drops multi-line entries, replaces embedded commas with spaces
// so the pack file stays a flat comma-joined list, and de-duplicates.
func cleanWords(raw []string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, word := range raw {
		if strings.ContainsRune(word, '\n') {
			continue
		}
		word = strings.TrimSpace(strings.ReplaceAll(word, ",", " "))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words
}

func normalizeURL(host, page string) string {
	if strings.HasPrefix(page, "http") {
		return page
	}
	if u, err := url.Parse(page); err == nil && u.IsAbs() {
		return page
	}
	return strings.TrimRight(host, "/") + "/" + strings.TrimLeft(page, "/")
}
