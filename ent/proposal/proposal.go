// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proposal type in the database.
	Label = "proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "proposal_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldHaAutomationID holds the string denoting the ha_automation_id field in the database.
	FieldHaAutomationID = "ha_automation_id"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldOriginalYaml holds the string denoting the original_yaml field in the database.
	FieldOriginalYaml = "original_yaml"
	// FieldReviewNotes holds the string denoting the review_notes field in the database.
	FieldReviewNotes = "review_notes"
	// FieldHaDisabled holds the string denoting the ha_disabled field in the database.
	FieldHaDisabled = "ha_disabled"
	// FieldHaError holds the string denoting the ha_error field in the database.
	FieldHaError = "ha_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldProposedAt holds the string denoting the proposed_at field in the database.
	FieldProposedAt = "proposed_at"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// FieldDeployedAt holds the string denoting the deployed_at field in the database.
	FieldDeployedAt = "deployed_at"
	// FieldRolledBackAt holds the string denoting the rolled_back_at field in the database.
	FieldRolledBackAt = "rolled_back_at"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// Table holds the table name of the proposal in the database.
	Table = "proposals"
)

// Columns holds all SQL columns for proposal fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldKind,
	FieldBody,
	FieldStatus,
	FieldTitle,
	FieldHaAutomationID,
	FieldApprovedBy,
	FieldRejectionReason,
	FieldOriginalYaml,
	FieldReviewNotes,
	FieldHaDisabled,
	FieldHaError,
	FieldCreatedAt,
	FieldProposedAt,
	FieldApprovedAt,
	FieldRejectedAt,
	FieldDeployedAt,
	FieldRolledBackAt,
	FieldArchivedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindAutomation    Kind = "automation"
	KindEntityCommand Kind = "entity_command"
	KindScript        Kind = "script"
	KindScene         Kind = "scene"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindAutomation, KindEntityCommand, KindScript, KindScene:
		return nil
	default:
		return fmt.Errorf("proposal: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft      Status = "draft"
	StatusProposed   Status = "proposed"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusDeployed   Status = "deployed"
	StatusRolledBack Status = "rolled_back"
	StatusArchived   Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusProposed, StatusApproved, StatusRejected, StatusDeployed, StatusRolledBack, StatusArchived:
		return nil
	default:
		return fmt.Errorf("proposal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Proposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByHaAutomationID orders the results by the ha_automation_id field.
func ByHaAutomationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHaAutomationID, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByOriginalYaml orders the results by the original_yaml field.
func ByOriginalYaml(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalYaml, opts...).ToFunc()
}

// ByHaDisabled orders the results by the ha_disabled field.
func ByHaDisabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHaDisabled, opts...).ToFunc()
}

// ByHaError orders the results by the ha_error field.
func ByHaError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHaError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProposedAt orders the results by the proposed_at field.
func ByProposedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedAt, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}

// ByDeployedAt orders the results by the deployed_at field.
func ByDeployedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployedAt, opts...).ToFunc()
}

// ByRolledBackAt orders the results by the rolled_back_at field.
func ByRolledBackAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolledBackAt, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}
