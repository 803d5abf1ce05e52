package clause

// Update the table part of an UPDATE statement, see Set for the values
type Update struct {
	Table Table
}

func (Update) Name() string {
	return "UPDATE"
}

func (update Update) Build(builder Builder) {
	writeTable(builder, update.Table)
}

func (update Update) MergeClause(clause *Clause) {
	clause.Expression = update
}
