package clause

// Delete the DELETE keyword, followed by a From clause
type Delete struct{}

func (Delete) Name() string {
	return "DELETE"
}

func (Delete) Build(builder Builder) {
	builder.WriteString("DELETE")
}

// MergeClause the keyword is written by Build
func (d Delete) MergeClause(clause *Clause) {
	clause.Name = ""
	clause.Expression = d
}
