package clause

// From the table read or deleted from, the statement's table when empty
type From struct {
	Table Table
}

func (From) Name() string {
	return "FROM"
}

func (from From) Build(builder Builder) {
	writeTable(builder, from.Table)
}

func (from From) MergeClause(clause *Clause) {
	clause.Expression = from
}
