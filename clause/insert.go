package clause

// Insert the INTO part of an INSERT statement, see Values for the row
type Insert struct {
	Table Table
}

func (Insert) Name() string {
	return "INSERT"
}

func (insert Insert) Build(builder Builder) {
	builder.WriteString("INTO ")
	writeTable(builder, insert.Table)
}

// MergeClause a later insert replaces the earlier one
func (insert Insert) MergeClause(clause *Clause) {
	clause.Expression = insert
}
