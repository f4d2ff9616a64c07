package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// LoadLinks reads an external-link side channel from a file. YAML files map
// keys to URLs directly. HTML files contribute one entry per anchor, keyed
// by the anchor text with the href as the URL.
func LoadLinks(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLLinks(path)
	case ".html", ".htm":
		return loadHTMLLinks(path)
	default:
		return nil, fmt.Errorf("unsupported links file %s: expected .yaml or .html", path)
	}
}

func loadYAMLLinks(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}

	links := make(map[string]string)
	if err := yaml.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to parse links file %s: %w", path, err)
	}
	return links, nil
}

func loadHTMLLinks(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse links file %s: %w", path, err)
	}

	links := make(map[string]string)
	collectAnchors(doc, links)
	return links, nil
}

func collectAnchors(n *html.Node, links map[string]string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		href := getAttr(n, "href")
		text := strings.TrimSpace(getTextContent(n))
		if href != "" && text != "" {
			links[text] = href
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectAnchors(c, links)
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return text.String()
}
