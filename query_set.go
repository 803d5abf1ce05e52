package orm

import (
	"context"

	"gorm.io/orm/schema"
)

// QuerySet an ordered collection of instances of one model plus the fetch
// and delete operations against its table. A QuerySet must not be shared
// between goroutines without synchronization.
type QuerySet struct {
	db        *DB
	schema    *schema.Schema
	instances []*Instance
}

// Create builds an instance from values through validated assignment, it is
// neither saved nor added to the query set
func (qs *QuerySet) Create(values map[string]interface{}) (*Instance, error) {
	return newInstance(qs.db, qs.schema, values)
}

// Instances returns the instances accumulated by All
func (qs *QuerySet) Instances() []*Instance {
	instances := make([]*Instance, len(qs.instances))
	copy(instances, qs.instances)
	return instances
}

// Len returns the number of accumulated instances
func (qs *QuerySet) Len() int {
	return len(qs.instances)
}

// Schema returns the schema of the query set's model
func (qs *QuerySet) Schema() *schema.Schema {
	return qs.schema
}

// All fetches every row ordered by id and appends the instances to the query
// set, rows fetched by earlier calls are kept. Nothing is appended when a row
// fails validation.
func (qs *QuerySet) All(ctx context.Context) (*QuerySet, error) {
	rows, err := qs.db.query(ctx, operation("all", qs.schema), qs.db.selectStatement(qs.schema))
	if err != nil {
		return qs, err
	}

	instances := make([]*Instance, 0, len(rows))
	for _, row := range rows {
		inst, err := qs.db.scanInstance(qs.schema, row)
		if err != nil {
			return qs, err
		}
		instances = append(instances, inst)
	}
	qs.instances = append(qs.instances, instances...)
	return qs, nil
}

// Get runs All and returns the instance at position key, counted from 1.
// Positions only match ids when the ids are dense and start at 1.
func (qs *QuerySet) Get(ctx context.Context, key int) (*Instance, error) {
	if _, err := qs.All(ctx); err != nil {
		return nil, err
	}

	if key < 1 || key > len(qs.instances) {
		return nil, &LookupError{Model: qs.schema.Name, Key: key, Len: len(qs.instances)}
	}
	return qs.instances[key-1], nil
}

// Delete removes the row whose id is key
func (qs *QuerySet) Delete(ctx context.Context, key interface{}) error {
	if qs.schema.PrimaryField == nil || key == nil {
		return primaryKeyMissing(qs.schema)
	}

	id, err := qs.schema.PrimaryField.Validate(key)
	if err != nil {
		return err
	}
	return qs.db.exec(ctx, operation("delete", qs.schema), qs.db.deleteStatement(qs.schema, id))
}
