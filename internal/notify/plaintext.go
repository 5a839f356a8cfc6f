package notify

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var blockElements = map[string]bool{
	"div": true, "p": true, "tr": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "table": true, "br": true,
}

// PlainText flattens an HTML document into readable text. Block elements
// start new lines, list items are bulleted and table cells are joined
// with spaces. Head, style and script content is dropped.
func PlainText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var lines []string
	var current strings.Builder

	flush := func() {
		line := strings.Join(strings.Fields(current.String()), " ")
		if line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "head", "style", "script":
				return
			case "li":
				flush()
				current.WriteString("• ")
			case "td":
				current.WriteString(" ")
			}
			if blockElements[n.Data] {
				flush()
			}
		}

		if n.Type == html.TextNode {
			current.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && (blockElements[n.Data] || n.Data == "li") {
			flush()
		}
	}

	walk(root)
	flush()

	return strings.Join(lines, "\n") + "\n", nil
}
