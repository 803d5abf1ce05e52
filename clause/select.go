package clause

// Select the selected columns, every column when empty
type Select struct {
	Columns []Column
}

func (Select) Name() string {
	return "SELECT"
}

func (s Select) Build(builder Builder) {
	if len(s.Columns) == 0 {
		builder.WriteByte('*')
		return
	}
	writeColumns(builder, s.Columns)
}

func (s Select) MergeClause(clause *Clause) {
	if v, ok := clause.Expression.(Select); ok {
		s.Columns = append(append([]Column(nil), v.Columns...), s.Columns...)
	}
	clause.Expression = s
}
