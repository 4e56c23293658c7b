// Code generated by ent, DO NOT EDIT.

package appsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldContainsFold(FieldID, id))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChatIsNil applies the IsNil predicate on the "chat" field.
func ChatIsNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIsNull(FieldChat))
}

// ChatNotNil applies the NotNil predicate on the "chat" field.
func ChatNotNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotNull(FieldChat))
}

// DashboardIsNil applies the IsNil predicate on the "dashboard" field.
func DashboardIsNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIsNull(FieldDashboard))
}

// DashboardNotNil applies the NotNil predicate on the "dashboard" field.
func DashboardNotNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotNull(FieldDashboard))
}

// DataScienceIsNil applies the IsNil predicate on the "data_science" field.
func DataScienceIsNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIsNull(FieldDataScience))
}

// DataScienceNotNil applies the NotNil predicate on the "data_science" field.
func DataScienceNotNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotNull(FieldDataScience))
}

// NotificationsIsNil applies the IsNil predicate on the "notifications" field.
func NotificationsIsNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIsNull(FieldNotifications))
}

// NotificationsNotNil applies the NotNil predicate on the "notifications" field.
func NotificationsNotNil() predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotNull(FieldNotifications))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AppSettings {
	return predicate.AppSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppSettings) predicate.AppSettings {
	return predicate.AppSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppSettings) predicate.AppSettings {
	return predicate.AppSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppSettings) predicate.AppSettings {
	return predicate.AppSettings(sql.NotPredicates(p))
}
