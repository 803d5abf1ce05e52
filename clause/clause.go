package clause

// Interface clause interface
type Interface interface {
	Name() string
	Build(Builder)
	MergeClause(*Clause)
}

// Writer writer interface
type Writer interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

// Builder builder interface
type Builder interface {
	Writer
	WriteQuoted(field interface{})
	AddVar(Writer, ...interface{})
}

// Clause
type Clause struct {
	Name       string // WHERE
	Expression Expression
}

// Build build clause
func (c Clause) Build(builder Builder) {
	if c.Expression == nil {
		return
	}

	if c.Name != "" {
		builder.WriteString(c.Name)
		builder.WriteByte(' ')
	}
	c.Expression.Build(builder)
}

const (
	PrimaryKey   string = "@@@primary_key@@@"
	CurrentTable string = "@@@table@@@"
)

var (
	currentTable  = Table{Name: CurrentTable}
	PrimaryColumn = Column{Table: CurrentTable, Name: PrimaryKey}
)

// Column a column name, written as is unless the dialect quotes it
type Column struct {
	Table string
	Name  string
	Raw   bool
}

// Table a table name
type Table struct {
	Name string
	Raw  bool
}

// writeTable writes table, the statement's own table when it has no name
func writeTable(builder Builder, table Table) {
	if table.Name == "" {
		builder.WriteQuoted(currentTable)
		return
	}
	builder.WriteQuoted(table)
}

func writeColumns(builder Builder, columns []Column) {
	for idx, column := range columns {
		if idx > 0 {
			builder.WriteByte(',')
		}
		builder.WriteQuoted(column)
	}
}
