// Code generated by ent, DO NOT EDIT.

package haentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContainsFold(FieldID, id))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldDomain, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldState, v))
}

// FriendlyName applies equality check predicate on the "friendly_name" field. It's identical to FriendlyNameEQ.
func FriendlyName(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldFriendlyName, v))
}

// LastChanged applies equality check predicate on the "last_changed" field. It's identical to LastChangedEQ.
func LastChanged(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldLastChanged, v))
}

// LastSynced applies equality check predicate on the "last_synced" field. It's identical to LastSyncedEQ.
func LastSynced(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldLastSynced, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContainsFold(FieldDomain, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContainsFold(FieldState, v))
}

// AttributesIsNil applies the IsNil predicate on the "attributes" field.
func AttributesIsNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIsNull(FieldAttributes))
}

// AttributesNotNil applies the NotNil predicate on the "attributes" field.
func AttributesNotNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotNull(FieldAttributes))
}

// FriendlyNameEQ applies the EQ predicate on the "friendly_name" field.
func FriendlyNameEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldFriendlyName, v))
}

// FriendlyNameNEQ applies the NEQ predicate on the "friendly_name" field.
func FriendlyNameNEQ(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldFriendlyName, v))
}

// FriendlyNameIn applies the In predicate on the "friendly_name" field.
func FriendlyNameIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldFriendlyName, vs...))
}

// FriendlyNameNotIn applies the NotIn predicate on the "friendly_name" field.
func FriendlyNameNotIn(vs ...string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldFriendlyName, vs...))
}

// FriendlyNameGT applies the GT predicate on the "friendly_name" field.
func FriendlyNameGT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldFriendlyName, v))
}

// FriendlyNameGTE applies the GTE predicate on the "friendly_name" field.
func FriendlyNameGTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldFriendlyName, v))
}

// FriendlyNameLT applies the LT predicate on the "friendly_name" field.
func FriendlyNameLT(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldFriendlyName, v))
}

// FriendlyNameLTE applies the LTE predicate on the "friendly_name" field.
func FriendlyNameLTE(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldFriendlyName, v))
}

// FriendlyNameContains applies the Contains predicate on the "friendly_name" field.
func FriendlyNameContains(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContains(FieldFriendlyName, v))
}

// FriendlyNameHasPrefix applies the HasPrefix predicate on the "friendly_name" field.
func FriendlyNameHasPrefix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasPrefix(FieldFriendlyName, v))
}

// FriendlyNameHasSuffix applies the HasSuffix predicate on the "friendly_name" field.
func FriendlyNameHasSuffix(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldHasSuffix(FieldFriendlyName, v))
}

// FriendlyNameIsNil applies the IsNil predicate on the "friendly_name" field.
func FriendlyNameIsNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIsNull(FieldFriendlyName))
}

// FriendlyNameNotNil applies the NotNil predicate on the "friendly_name" field.
func FriendlyNameNotNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotNull(FieldFriendlyName))
}

// FriendlyNameEqualFold applies the EqualFold predicate on the "friendly_name" field.
func FriendlyNameEqualFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEqualFold(FieldFriendlyName, v))
}

// FriendlyNameContainsFold applies the ContainsFold predicate on the "friendly_name" field.
func FriendlyNameContainsFold(v string) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldContainsFold(FieldFriendlyName, v))
}

// LastChangedEQ applies the EQ predicate on the "last_changed" field.
func LastChangedEQ(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldLastChanged, v))
}

// LastChangedNEQ applies the NEQ predicate on the "last_changed" field.
func LastChangedNEQ(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldLastChanged, v))
}

// LastChangedIn applies the In predicate on the "last_changed" field.
func LastChangedIn(vs ...time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldLastChanged, vs...))
}

// LastChangedNotIn applies the NotIn predicate on the "last_changed" field.
func LastChangedNotIn(vs ...time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldLastChanged, vs...))
}

// LastChangedGT applies the GT predicate on the "last_changed" field.
func LastChangedGT(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldLastChanged, v))
}

// LastChangedGTE applies the GTE predicate on the "last_changed" field.
func LastChangedGTE(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldLastChanged, v))
}

// LastChangedLT applies the LT predicate on the "last_changed" field.
func LastChangedLT(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldLastChanged, v))
}

// LastChangedLTE applies the LTE predicate on the "last_changed" field.
func LastChangedLTE(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldLastChanged, v))
}

// LastChangedIsNil applies the IsNil predicate on the "last_changed" field.
func LastChangedIsNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIsNull(FieldLastChanged))
}

// LastChangedNotNil applies the NotNil predicate on the "last_changed" field.
func LastChangedNotNil() predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotNull(FieldLastChanged))
}

// LastSyncedEQ applies the EQ predicate on the "last_synced" field.
func LastSyncedEQ(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldEQ(FieldLastSynced, v))
}

// LastSyncedNEQ applies the NEQ predicate on the "last_synced" field.
func LastSyncedNEQ(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNEQ(FieldLastSynced, v))
}

// LastSyncedIn applies the In predicate on the "last_synced" field.
func LastSyncedIn(vs ...time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldIn(FieldLastSynced, vs...))
}

// LastSyncedNotIn applies the NotIn predicate on the "last_synced" field.
func LastSyncedNotIn(vs ...time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldNotIn(FieldLastSynced, vs...))
}

// LastSyncedGT applies the GT predicate on the "last_synced" field.
func LastSyncedGT(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGT(FieldLastSynced, v))
}

// LastSyncedGTE applies the GTE predicate on the "last_synced" field.
func LastSyncedGTE(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldGTE(FieldLastSynced, v))
}

// LastSyncedLT applies the LT predicate on the "last_synced" field.
func LastSyncedLT(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLT(FieldLastSynced, v))
}

// LastSyncedLTE applies the LTE predicate on the "last_synced" field.
func LastSyncedLTE(v time.Time) predicate.HAEntity {
	return predicate.HAEntity(sql.FieldLTE(FieldLastSynced, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HAEntity) predicate.HAEntity {
	return predicate.HAEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HAEntity) predicate.HAEntity {
	return predicate.HAEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HAEntity) predicate.HAEntity {
	return predicate.HAEntity(sql.NotPredicates(p))
}
