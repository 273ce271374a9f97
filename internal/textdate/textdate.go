// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textdate formats date strings for rendered pages. Both stages
// accept either ISO dates or text that is already human-formatted.
package textdate

import "time"

const isoFmt = "2006-01-02"

// Format converts an ISO date (YYYY-MM-DD) to its English long form,
// e.g. "2025-01-04" becomes "January 4, 2025". Anything that does not
// parse as an ISO date is returned unchanged.
func Format(s string) string {
	t, err := time.Parse(isoFmt, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
