// Package reuters implements the SGML document reader spec.md treats as
// an external collaborator: it yields {docId, title, body} records from
// Reuters-21578 "reut2-NNN.sgm" files. Reuters markup is unescaped tag
// soup (unclosed BODY tags, bare ampersands), the same lenient-parsing
// problem the Python original hands to BeautifulSoup's "html.parser"
// (original_source/irspimi/reuters.py); here golang.org/x/net/html's
// tokenizer plays that role, since Go's strict encoding/xml would reject
// this input outright.
package reuters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Document is one parsed news story.
type Document struct {
	DocID int
	Title string
	Body  string
}

// ErrNoNewID is returned when a <REUTERS> tag carries no parseable NEWID
// attribute; such a document is skipped (mirrors the original's reliance
// on NEWID as the canonical document key).
var ErrNoNewID = fmt.Errorf("reuters: REUTERS tag missing NEWID attribute")

// ParseAll reads every <REUTERS>...</REUTERS> document from r, in file
// order. A document whose NEWID cannot be parsed is skipped with its
// error reported via the warn callback (may be nil).
func ParseAll(r io.Reader, warn func(error)) ([]Document, error) {
	z := html.NewTokenizer(r)

	var docs []Document
	var inReuters, inTitle, inBody bool
	var curDocID int
	var curTitle, curBody strings.Builder

	report := func(err error) {
		if warn != nil {
			warn(err)
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return docs, err
			}
			return docs, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := strings.ToLower(string(name))
			switch tag {
			case "reuters":
				inReuters = true
				curDocID = 0
				curTitle.Reset()
				curBody.Reset()
				curDocID, _ = extractNewID(z, hasAttr)
				if curDocID == 0 {
					report(ErrNoNewID)
				}
			case "title":
				if inReuters {
					inTitle = true
				}
			case "body":
				if inReuters {
					inBody = true
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			switch tag {
			case "title":
				inTitle = false
			case "body":
				inBody = false
			case "reuters":
				if inReuters && curDocID != 0 {
					docs = append(docs, Document{
						DocID: curDocID,
						Title: strings.TrimSpace(curTitle.String()),
						Body:  strings.TrimSpace(curBody.String()),
					})
				}
				inReuters = false
			}

		case html.TextToken:
			if inTitle {
				curTitle.Write(z.Text())
			} else if inBody {
				curBody.Write(z.Text())
			}
		}
	}
}

func extractNewID(z *html.Tokenizer, hasAttr bool) (int, bool) {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if strings.EqualFold(string(key), "NEWID") {
			id, err := strconv.Atoi(string(val))
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}
