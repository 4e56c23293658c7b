// Code generated by ent, DO NOT EDIT.

package insight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the insight type in the database.
	Label = "insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "insight_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldImpact holds the string denoting the impact field in the database.
	FieldImpact = "impact"
	// FieldEntityIds holds the string denoting the entity_ids field in the database.
	FieldEntityIds = "entity_ids"
	// FieldScriptPath holds the string denoting the script_path field in the database.
	FieldScriptPath = "script_path"
	// FieldScriptOutput holds the string denoting the script_output field in the database.
	FieldScriptOutput = "script_output"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldScheduleID holds the string denoting the schedule_id field in the database.
	FieldScheduleID = "schedule_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the insight in the database.
	Table = "insights"
)

// Columns holds all SQL columns for insight fields.
var Columns = []string{
	FieldID,
	FieldCategory,
	FieldTitle,
	FieldDescription,
	FieldEvidence,
	FieldConfidence,
	FieldImpact,
	FieldEntityIds,
	FieldScriptPath,
	FieldScriptOutput,
	FieldStatus,
	FieldConversationID,
	FieldScheduleID,
	FieldCreatedAt,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Impact defines the type for the "impact" enum field.
type Impact string

// ImpactLow is the default value of the Impact enum.
const DefaultImpact = ImpactLow

// Impact values.
const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

func (i Impact) String() string {
	return string(i)
}

// ImpactValidator is a validator for the "impact" field enum values. It is called by the builders before save.
func ImpactValidator(i Impact) error {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return nil
	default:
		return fmt.Errorf("insight: invalid enum value for impact field: %q", i)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusActioned  Status = "actioned"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReviewed, StatusActioned, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("insight: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Insight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByImpact orders the results by the impact field.
func ByImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpact, opts...).ToFunc()
}

// ByScriptPath orders the results by the script_path field.
func ByScriptPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptPath, opts...).ToFunc()
}

// ByScriptOutput orders the results by the script_output field.
func ByScriptOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptOutput, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByScheduleID orders the results by the schedule_id field.
func ByScheduleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
