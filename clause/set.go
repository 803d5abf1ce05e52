package clause

// Set assigns Values[i] to Columns[i], both slices have the same length
type Set struct {
	Columns []Column
	Values  []interface{}
}

func (Set) Name() string {
	return "SET"
}

func (set Set) Build(builder Builder) {
	for idx, column := range set.Columns {
		if idx > 0 {
			builder.WriteByte(',')
		}
		builder.WriteQuoted(column)
		builder.WriteByte('=')
		builder.AddVar(builder, set.Values[idx])
	}
}

// MergeClause a later set replaces the earlier one
func (set Set) MergeClause(clause *Clause) {
	clause.Expression = set
}
