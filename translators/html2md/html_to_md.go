// Package html2md renders extracted page content to markdown so it reads
// well in the step list instead of as raw markup.
package html2md

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/btjones-me/llm-browser-use/translators"
	"github.com/btjones-me/llm-browser-use/utils/stringsx"
	"golang.org/x/net/html"
)

const DefaultMaxListDisplaySize = 10

type HTML2MDTranslator struct {
	maxListDisplaySize int
}

type Options struct {
	MaxListDisplaySize int
}

func NewHTML2MDTranslator(options *Options) translators.Translator {
	maxListDisplaySize := DefaultMaxListDisplaySize
	if options != nil && options.MaxListDisplaySize > 0 {
		maxListDisplaySize = options.MaxListDisplaySize
	}
	return &HTML2MDTranslator{
		maxListDisplaySize: maxListDisplaySize,
	}
}

func (t *HTML2MDTranslator) Translate(text string) (string, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	return cleanup(t.visit(doc)), nil
}

func (t *HTML2MDTranslator) visit(n *html.Node) string {
	if !shouldVisit(n) {
		return ""
	}
	switch n.Type {
	case html.TextNode:
		return n.Data
	case html.ElementNode:
		content := t.visitChildren(n)
		switch n.Data {
		case "b", "strong":
			return "**" + strings.Join(content, "") + "**"
		case "i", "em":
			return "_" + strings.Join(content, "") + "_"
		case "h1":
			return "\n\n## " + strings.Join(content, "")
		case "h2":
			return "\n\n### " + strings.Join(content, "")
		case "h3":
			return "\n\n#### " + strings.Join(content, "")
		case "h4", "h5", "h6":
			return "\n\n##### " + strings.Join(content, "")
		case "title":
			return "# " + strings.Join(content, "")
		case "img":
			for _, attr := range n.Attr {
				if attr.Key == "alt" && strings.TrimSpace(attr.Val) != "" {
					return fmt.Sprintf("![%s](<img>)", attr.Val)
				}
			}
			return ""
		case "a":
			return fmt.Sprintf("[%s](%s)", strings.Join(content, ""), trimURL(attrValue(n, "href")))
		case "li":
			text := strings.Join(content, "")
			if strings.TrimSpace(text) == "" {
				return ""
			}
			return "- " + text
		case "pre", "code":
			return "`" + strings.Join(content, "") + "`"
		case "br":
			return "\n"
		case "hr":
			return "---"
		case "del":
			return "~~" + strings.Join(content, "") + "~~"
		case "ul", "ol":
			if len(content) > t.maxListDisplaySize {
				return strings.Join(content[:t.maxListDisplaySize], "\n") + "\n- ..."
			}
			return strings.Join(content, "\n")
		case "div", "section", "article", "body", "header", "footer", "form", "table", "tr":
			return strings.Join(content, "\n")
		case "head", "script", "style", "iframe", "svg", "path", "noscript", "link", "meta":
			return ""
		default:
			return strings.Join(content, "")
		}
	case html.CommentNode, html.DoctypeNode:
		return ""
	case html.DocumentNode:
		return strings.Join(t.visitChildren(n), "\n")
	default:
		return ""
	}
}

func (t *HTML2MDTranslator) visitChildren(n *html.Node) []string {
	content := []string{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		content = append(content, t.visit(c))
	}
	return content
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func shouldVisit(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type != html.ElementNode {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "aria-hidden" && attr.Val == "true" {
			return false
		}
		if attr.Key == "style" {
			hiddenStyles := []string{"display: none", "visibility: hidden", "opacity: 0"}
			for _, style := range hiddenStyles {
				if strings.Contains(attr.Val, style) {
					return false
				}
			}
		}
	}
	return true
}

func cleanup(mdText string) string {
	s := stringsx.ReduceNewlines(mdText, 2)
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.TrimSpace(s)
}

func trimURL(inputURL string) string {
	u, err := url.Parse(inputURL)
	if err != nil {
		return inputURL
	}
	u.Scheme = ""
	u.RawQuery = ""
	u.User = nil
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Host + u.Path
}
