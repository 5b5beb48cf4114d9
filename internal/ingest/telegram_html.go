package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	"github.com/chatlens-app/chatlens/internal/platform/textutil"
)

// telegramHTMLLayout is the layout of the title attribute on date nodes in
// Telegram HTML exports. Titles sometimes carry a trailing "UTC+03:00" field;
// the instant is normalized to UTC either way.
const telegramHTMLLayout = "02.01.2006 15:04:05"

// decodeTelegramHTML scans the export DOM for message containers. Each block
// yields sender (from_name child), timestamp (title attribute of the date
// child) and body (text child).
//
// Consecutive messages from the same sender are grouped in real exports: the
// repeated blocks omit from_name. Such a block inherits the previous block's
// sender; a nameless block before any named one is dropped and counted as
// ignored.
func decodeTelegramHTML(data []byte) (decodeResult, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return decodeResult{}, fmt.Errorf("parsing telegram html: %w", err)
	}

	var res decodeResult

	var (
		lastSender string
		ordinal    int
	)

	walkNodes(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || !hasClass(n, "message") {
			return true
		}

		sender := textOfClass(n, "from_name")
		if sender == "" {
			sender = lastSender
		}

		if sender != "" {
			lastSender = sender
		}

		body := textOfClass(n, "text")

		if sender == "" || body == "" {
			res.ignored++

			return false
		}

		res.messages = append(res.messages, domain.NewMessage(htmlBlockTimestamp(n), sender, body, ordinal))
		ordinal++

		// Message blocks do not nest; no need to descend further.
		return false
	})

	return res, nil
}

// walkNodes visits nodes depth-first. The visitor returns false to skip a
// node's children.
func walkNodes(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNodes(c, visit)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}

		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}

	return false
}

// textOfClass returns the trimmed text content of the first descendant
// carrying the given class, or "".
func textOfClass(n *html.Node, class string) string {
	var found *html.Node

	walkNodes(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}

		if c != n && c.Type == html.ElementNode && hasClass(c, class) {
			found = c

			return false
		}

		return true
	})

	if found == nil {
		return ""
	}

	return textutil.CollapseSpaces(textContent(found))
}

func textContent(n *html.Node) string {
	var b strings.Builder

	walkNodes(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteString(" ")
		}

		return true
	})

	return strings.TrimSpace(b.String())
}

// htmlBlockTimestamp reads the title attribute of the block's date child.
func htmlBlockTimestamp(block *html.Node) *time.Time {
	var title string

	walkNodes(block, func(c *html.Node) bool {
		if title != "" {
			return false
		}

		if c != block && c.Type == html.ElementNode && hasClass(c, "date") {
			for _, attr := range c.Attr {
				if attr.Key == "title" {
					title = attr.Val
				}
			}

			return false
		}

		return true
	})

	if title == "" {
		return nil
	}

	fields := strings.Fields(title)
	if len(fields) < 2 {
		return nil
	}

	ts, err := time.Parse(telegramHTMLLayout, fields[0]+" "+fields[1])
	if err != nil {
		return nil
	}

	return &ts
}
