package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleishm/MACSearch/internal/domain"
)

// Search renders the predicate set into a parameterized WHERE clause and
// streams matching records through fn.
func (r *Repository) Search(ctx context.Context, pred *domain.PredicateSet, bound []string, fn func(domain.ForwardingRecord) error) error {
	where, args, err := buildWhere(pred, bound)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		SELECT host, port, mac, vlan
		FROM forwarding
		WHERE %s
		ORDER BY host, port, mac
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query forwarding table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.ForwardingRecord
		if err := rows.Scan(&rec.Host, &rec.Port, &rec.MAC, &rec.VLAN); err != nil {
			return fmt.Errorf("failed to scan record: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	return rows.Err()
}

// buildWhere translates the condition list into SQL text plus a parallel
// argument list. Column names come from the sealed domain.Column constants,
// never from input; every value, literal or bound, travels as a parameter.
func buildWhere(pred *domain.PredicateSet, bound []string) (string, []any, error) {
	var conditions []string
	var args []any
	next := 0

	for _, cond := range pred.Conditions {
		switch c := cond.(type) {
		case domain.MatchAll:
			conditions = append(conditions, "1 = 1")

		case domain.Membership:
			if len(c.Values) == 0 {
				return "", nil, fmt.Errorf("membership condition on %s has no values", c.Column)
			}
			conditions = append(conditions, fmt.Sprintf("%s IN (%s)", c.Column, placeholders(len(c.Values))))
			for _, v := range c.Values {
				args = append(args, v)
			}

		case domain.Placeholder:
			if next >= len(bound) {
				return "", nil, fmt.Errorf("missing bound value for %s", c.Column)
			}
			conditions = append(conditions, fmt.Sprintf("%s = ?", c.Column))
			args = append(args, bound[next])
			next++

		case domain.Exclusion:
			conditions = append(conditions, "NOT (host = ? AND port = ?)")
			args = append(args, c.Host, c.Port)

		default:
			return "", nil, fmt.Errorf("unsupported condition type %T", cond)
		}
	}

	if next != len(bound) {
		return "", nil, fmt.Errorf("expected %d bound values, got %d", next, len(bound))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1 = 1")
	}

	return strings.Join(conditions, " AND "), args, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
