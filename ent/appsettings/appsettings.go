// Code generated by ent, DO NOT EDIT.

package appsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the appsettings type in the database.
	Label = "app_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "settings_id"
	// FieldChat holds the string denoting the chat field in the database.
	FieldChat = "chat"
	// FieldDashboard holds the string denoting the dashboard field in the database.
	FieldDashboard = "dashboard"
	// FieldDataScience holds the string denoting the data_science field in the database.
	FieldDataScience = "data_science"
	// FieldNotifications holds the string denoting the notifications field in the database.
	FieldNotifications = "notifications"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the appsettings in the database.
	Table = "app_settings"
)

// Columns holds all SQL columns for appsettings fields.
var Columns = []string{
	FieldID,
	FieldChat,
	FieldDashboard,
	FieldDataScience,
	FieldNotifications,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AppSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
