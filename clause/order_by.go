package clause

// OrderBy sorts rows ascending by Columns, in order
type OrderBy struct {
	Columns []Column
}

func (OrderBy) Name() string {
	return "ORDER BY"
}

func (orderBy OrderBy) Build(builder Builder) {
	writeColumns(builder, orderBy.Columns)
}

// MergeClause columns of a later order by sort after the earlier ones
func (orderBy OrderBy) MergeClause(clause *Clause) {
	if v, ok := clause.Expression.(OrderBy); ok {
		orderBy.Columns = append(append([]Column(nil), v.Columns...), orderBy.Columns...)
	}
	clause.Expression = orderBy
}
