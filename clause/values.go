package clause

// Values the column list and the single row written by an INSERT, every
// value is bound through the builder
type Values struct {
	Columns []Column
	Values  []interface{}
}

func (Values) Name() string {
	return "VALUES"
}

func (values Values) Build(builder Builder) {
	if len(values.Columns) == 0 {
		builder.WriteString("DEFAULT VALUES")
		return
	}

	builder.WriteByte('(')
	writeColumns(builder, values.Columns)
	builder.WriteString(") VALUES (")
	builder.AddVar(builder, values.Values...)
	builder.WriteByte(')')
}

// MergeClause the keyword is written by Build, a later row replaces the
// earlier one
func (values Values) MergeClause(clause *Clause) {
	clause.Name = ""
	clause.Expression = values
}
