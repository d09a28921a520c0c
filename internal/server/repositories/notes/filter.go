package notes

import (
	"fmt"
	"strings"
)

// Filter selects notes for listing. UserID is mandatory; the other fields are
// optional and combined with AND.
type Filter struct {
	UserID string
	// SearchTerm matches title or content, case-insensitively, as a substring.
	SearchTerm string
	FolderID   string
	TagID      string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// where renders the filter as a SQL condition and its positional arguments.
func (f Filter) where() (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{f.UserID}

	if f.SearchTerm != "" {
		args = append(args, "%"+likeEscaper.Replace(f.SearchTerm)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", n, n))
	}

	if f.FolderID != "" {
		args = append(args, f.FolderID)
		clauses = append(clauses, fmt.Sprintf("folder_id = $%d", len(args)))
	}

	if f.TagID != "" {
		args = append(args, f.TagID)
		clauses = append(clauses, fmt.Sprintf("$%d::uuid = ANY(tags)", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}
