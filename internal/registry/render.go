// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/kgatera/site-tools/internal/textdate"
	"github.com/kgatera/site-tools/pkg/types"
)

// summaryItem is one line of the summary list: rating, date, title, author.
const summaryItem = `                <li>{{.Rating}} — {{.Date}} — <strong>{{.Title}}</strong> by {{.Author}}</li>`

// detailItem is one block of the detail list: title, author, description.
const detailItem = `                <li>
                    <span class="book-title-author"><strong>{{.Title}}</strong> by {{.Author}}</span>
                    <div class="book-description">{{.Description}}</div>
                </li>`

var (
	summaryTmpl = template.Must(template.New("summary").Parse(summaryItem))
	detailTmpl  = template.Must(template.New("detail").Parse(detailItem))
)

// itemData feeds the fragment templates; field text is escaped by
// html/template on execution.
type itemData struct {
	Rating      string
	Date        string
	Title       string
	Author      string
	Description string
}

// RenderFragments renders the summary and detail list fragments in entry
// order. ISO dates are formatted to their English long form.
func RenderFragments(entries []types.BookEntry) (summary, detail string, err error) {
	var sb, db strings.Builder
	for i, e := range entries {
		data := itemData{
			Rating:      e.Rating,
			Date:        textdate.Format(e.DateRead),
			Title:       e.Title,
			Author:      e.Author,
			Description: e.Description,
		}
		if i > 0 {
			sb.WriteByte('\n')
			db.WriteByte('\n')
		}
		if err := summaryTmpl.Execute(&sb, data); err != nil {
			return "", "", fmt.Errorf("rendering summary item %d: %w", i+1, err)
		}
		if err := detailTmpl.Execute(&db, data); err != nil {
			return "", "", fmt.Errorf("rendering detail item %d: %w", i+1, err)
		}
	}
	return sb.String(), db.String(), nil
}
