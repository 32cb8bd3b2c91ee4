// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDocumentID, v))
}

// PartyA applies equality check predicate on the "party_a" field. It's identical to PartyAEQ.
func PartyA(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyB applies equality check predicate on the "party_b" field. It's identical to PartyBEQ.
func PartyB(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpirationDate, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PartyAEQ applies the EQ predicate on the "party_a" field.
func PartyAEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyANEQ applies the NEQ predicate on the "party_a" field.
func PartyANEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyA, v))
}

// PartyAIn applies the In predicate on the "party_a" field.
func PartyAIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyA, vs...))
}

// PartyANotIn applies the NotIn predicate on the "party_a" field.
func PartyANotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyA, vs...))
}

// PartyAGT applies the GT predicate on the "party_a" field.
func PartyAGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyA, v))
}

// PartyAGTE applies the GTE predicate on the "party_a" field.
func PartyAGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyA, v))
}

// PartyALT applies the LT predicate on the "party_a" field.
func PartyALT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyA, v))
}

// PartyALTE applies the LTE predicate on the "party_a" field.
func PartyALTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyA, v))
}

// PartyAContains applies the Contains predicate on the "party_a" field.
func PartyAContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyA, v))
}

// PartyAHasPrefix applies the HasPrefix predicate on the "party_a" field.
func PartyAHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyA, v))
}

// PartyAHasSuffix applies the HasSuffix predicate on the "party_a" field.
func PartyAHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyA, v))
}

// PartyAIsNil applies the IsNil predicate on the "party_a" field.
func PartyAIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyA))
}

// PartyANotNil applies the NotNil predicate on the "party_a" field.
func PartyANotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyA))
}

// PartyAEqualFold applies the EqualFold predicate on the "party_a" field.
func PartyAEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyA, v))
}

// PartyAContainsFold applies the ContainsFold predicate on the "party_a" field.
func PartyAContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyA, v))
}

// PartyBEQ applies the EQ predicate on the "party_b" field.
func PartyBEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// PartyBNEQ applies the NEQ predicate on the "party_b" field.
func PartyBNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyB, v))
}

// PartyBIn applies the In predicate on the "party_b" field.
func PartyBIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyB, vs...))
}

// PartyBNotIn applies the NotIn predicate on the "party_b" field.
func PartyBNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyB, vs...))
}

// PartyBGT applies the GT predicate on the "party_b" field.
func PartyBGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyB, v))
}

// PartyBGTE applies the GTE predicate on the "party_b" field.
func PartyBGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyB, v))
}

// PartyBLT applies the LT predicate on the "party_b" field.
func PartyBLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyB, v))
}

// PartyBLTE applies the LTE predicate on the "party_b" field.
func PartyBLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyB, v))
}

// PartyBContains applies the Contains predicate on the "party_b" field.
func PartyBContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyB, v))
}

// PartyBHasPrefix applies the HasPrefix predicate on the "party_b" field.
func PartyBHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyB, v))
}

// PartyBHasSuffix applies the HasSuffix predicate on the "party_b" field.
func PartyBHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyB, v))
}

// PartyBIsNil applies the IsNil predicate on the "party_b" field.
func PartyBIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyB))
}

// PartyBNotNil applies the NotNil predicate on the "party_b" field.
func PartyBNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyB))
}

// PartyBEqualFold applies the EqualFold predicate on the "party_b" field.
func PartyBEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyB, v))
}

// PartyBContainsFold applies the ContainsFold predicate on the "party_b" field.
func PartyBContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyB, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEffectiveDate))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldExpirationDate, v))
}

// ExpirationDateIsNil applies the IsNil predicate on the "expiration_date" field.
func ExpirationDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldExpirationDate))
}

// ExpirationDateNotNil applies the NotNil predicate on the "expiration_date" field.
func ExpirationDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldExpirationDate))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
