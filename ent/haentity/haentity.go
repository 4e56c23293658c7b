// Code generated by ent, DO NOT EDIT.

package haentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the haentity type in the database.
	Label = "ha_entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAttributes holds the string denoting the attributes field in the database.
	FieldAttributes = "attributes"
	// FieldFriendlyName holds the string denoting the friendly_name field in the database.
	FieldFriendlyName = "friendly_name"
	// FieldLastChanged holds the string denoting the last_changed field in the database.
	FieldLastChanged = "last_changed"
	// FieldLastSynced holds the string denoting the last_synced field in the database.
	FieldLastSynced = "last_synced"
	// Table holds the table name of the haentity in the database.
	Table = "ha_entities"
)

// Columns holds all SQL columns for haentity fields.
var Columns = []string{
	FieldID,
	FieldDomain,
	FieldState,
	FieldAttributes,
	FieldFriendlyName,
	FieldLastChanged,
	FieldLastSynced,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// DefaultLastSynced holds the default value on creation for the "last_synced" field.
	DefaultLastSynced func() time.Time
	// UpdateDefaultLastSynced holds the default value on update for the "last_synced" field.
	UpdateDefaultLastSynced func() time.Time
)

// OrderOption defines the ordering options for the HAEntity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByFriendlyName orders the results by the friendly_name field.
func ByFriendlyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFriendlyName, opts...).ToFunc()
}

// ByLastChanged orders the results by the last_changed field.
func ByLastChanged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastChanged, opts...).ToFunc()
}

// ByLastSynced orders the results by the last_synced field.
func ByLastSynced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSynced, opts...).ToFunc()
}
