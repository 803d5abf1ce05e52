package clause

// ColumnDefinition a column and its SQL type in a CREATE TABLE statement
type ColumnDefinition struct {
	Column Column
	Type   string
}

// CreateTable create table clause
type CreateTable struct {
	Table       Table
	IfNotExists bool
	Columns     []ColumnDefinition
}

// Name create table clause name
func (CreateTable) Name() string {
	return "CREATE TABLE"
}

// Build build create table clause
func (create CreateTable) Build(builder Builder) {
	builder.WriteString("CREATE TABLE ")
	if create.IfNotExists {
		builder.WriteString("IF NOT EXISTS ")
	}

	writeTable(builder, create.Table)

	builder.WriteString(" (")
	for idx, column := range create.Columns {
		if idx > 0 {
			builder.WriteByte(',')
		}
		builder.WriteQuoted(column.Column)
		builder.WriteByte(' ')
		builder.WriteString(column.Type)
	}
	builder.WriteByte(')')
}

// MergeClause the statement keyword is written by Build
func (create CreateTable) MergeClause(clause *Clause) {
	clause.Name = ""
	clause.Expression = create
}
