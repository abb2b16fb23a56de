package postgres

import (
	"fmt"
	"strings"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
)

// condBuilder accumulates WHERE clauses with numbered placeholders. Column
// expressions are fixed strings chosen by the repositories; only values travel
// as arguments.
type condBuilder struct {
	conds []string
	args  []any
}

// add appends one condition; expr must contain a single %d verb for the
// placeholder index, e.g. "total_price >= $%d".
func (b *condBuilder) add(expr string, val any) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// next returns the placeholder index for an argument appended outside add.
func (b *condBuilder) next(val any) int {
	b.args = append(b.args, val)
	return len(b.args)
}

// orderBy resolves a caller-supplied sort key against the closed per-entity
// column set. Unknown keys are rejected rather than reflected into SQL.
func orderBy(columns map[string]string, sortBy string, desc bool, fallback string) (string, error) {
	column := fallback
	if sortBy != "" {
		mapped, ok := columns[sortBy]
		if !ok {
			return "", domainErrors.ErrInvalidSortField
		}
		column = mapped
	}
	direction := " ASC"
	if desc {
		direction = " DESC"
	}
	return " ORDER BY " + column + direction, nil
}

// limitOffset renders pagination with a defensive default page size.
func limitOffset(b *condBuilder, limit, offset int) string {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.next(limit), b.next(offset))
}
