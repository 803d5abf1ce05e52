package clause

// Where conditions joined with AND
type Where struct {
	Exprs []Expression
}

func (Where) Name() string {
	return "WHERE"
}

func (where Where) Build(builder Builder) {
	for idx, expr := range where.Exprs {
		if idx > 0 {
			builder.WriteString(" AND ")
		}
		expr.Build(builder)
	}
}

// MergeClause conditions of a later where are added to the earlier ones
func (where Where) MergeClause(clause *Clause) {
	if w, ok := clause.Expression.(Where); ok {
		where.Exprs = append(append([]Expression(nil), w.Exprs...), where.Exprs...)
	}
	clause.Expression = where
}
