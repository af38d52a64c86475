package driver

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// banner is a status message rendered on a post-submission page.
type banner struct {
	success bool
	text    string
}

// bannerClasses are class-name fragments that mark a status container on
// the result page. The site renders the order confirmation and its error
// alerts in containers carrying one of these.
var bannerClasses = []string{"confirmation", "success", "alert", "error"}

// successMarkers identify a banner as a placed order even when its
// container class is neutral.
var successMarkers = []string{"order received", "order placed", "successfully"}

// scanBanner walks the page HTML and returns the first status banner in
// document order, with its rendered text verbatim. Script, style, and
// noscript subtrees are skipped. A page with no recognizable banner is a
// ParseError: the result page did not render in an expected shape.
func scanBanner(content string) (banner, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return banner{}, &ParseError{Text: "result page", Err: err}
	}

	found := findBanner(doc)
	if found == nil {
		return banner{}, &ParseError{
			Text: "result page",
			Err:  fmt.Errorf("no status banner found"),
		}
	}
	return *found, nil
}

func findBanner(n *html.Node) *banner {
	if n.Type == html.CommentNode {
		return nil
	}
	if n.Type == html.ElementNode && isSkippedTag(strings.ToLower(n.Data)) {
		return nil
	}

	if n.Type == html.ElementNode && isBannerNode(n) {
		text := nodeText(n)
		if text != "" {
			return &banner{success: isSuccessBanner(n, text), text: text}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findBanner(child); found != nil {
			return found
		}
	}
	return nil
}

func isSkippedTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "svg", "iframe":
		return true
	}
	return false
}

func isBannerNode(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "role":
			if attr.Val == "alert" || attr.Val == "status" {
				return true
			}
		case "class":
			class := strings.ToLower(attr.Val)
			for _, marker := range bannerClasses {
				if strings.Contains(class, marker) {
					return true
				}
			}
		}
	}
	return false
}

func isSuccessBanner(n *html.Node, text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range successMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		class := strings.ToLower(attr.Val)
		if strings.Contains(class, "confirmation") || strings.Contains(class, "success") {
			return true
		}
	}
	return false
}

// nodeText collects the rendered text of a subtree, collapsing whitespace
// the way the browser renders it.
func nodeText(n *html.Node) string {
	var builder strings.Builder
	collectText(n, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.TextNode {
		builder.WriteString(n.Data)
		builder.WriteString(" ")
		return
	}
	if n.Type == html.ElementNode && isSkippedTag(strings.ToLower(n.Data)) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}
}
