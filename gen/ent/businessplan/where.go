// Code generated by ent, DO NOT EDIT.

package businessplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldOwnerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldTitle, v))
}

// ObjectKey applies equality check predicate on the "object_key" field. It's identical to ObjectKeyEQ.
func ObjectKey(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldObjectKey, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldContentHash, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldPageCount, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldSizeBytes, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldStatus, v))
}

// LatestJobID applies equality check predicate on the "latest_job_id" field. It's identical to LatestJobIDEQ.
func LatestJobID(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldLatestJobID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldOwnerID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContainsFold(FieldTitle, v))
}

// ObjectKeyEQ applies the EQ predicate on the "object_key" field.
func ObjectKeyEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldObjectKey, v))
}

// ObjectKeyNEQ applies the NEQ predicate on the "object_key" field.
func ObjectKeyNEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldObjectKey, v))
}

// ObjectKeyIn applies the In predicate on the "object_key" field.
func ObjectKeyIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldObjectKey, vs...))
}

// ObjectKeyNotIn applies the NotIn predicate on the "object_key" field.
func ObjectKeyNotIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldObjectKey, vs...))
}

// ObjectKeyGT applies the GT predicate on the "object_key" field.
func ObjectKeyGT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldObjectKey, v))
}

// ObjectKeyGTE applies the GTE predicate on the "object_key" field.
func ObjectKeyGTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldObjectKey, v))
}

// ObjectKeyLT applies the LT predicate on the "object_key" field.
func ObjectKeyLT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldObjectKey, v))
}

// ObjectKeyLTE applies the LTE predicate on the "object_key" field.
func ObjectKeyLTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldObjectKey, v))
}

// ObjectKeyContains applies the Contains predicate on the "object_key" field.
func ObjectKeyContains(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContains(FieldObjectKey, v))
}

// ObjectKeyHasPrefix applies the HasPrefix predicate on the "object_key" field.
func ObjectKeyHasPrefix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasPrefix(FieldObjectKey, v))
}

// ObjectKeyHasSuffix applies the HasSuffix predicate on the "object_key" field.
func ObjectKeyHasSuffix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasSuffix(FieldObjectKey, v))
}

// ObjectKeyEqualFold applies the EqualFold predicate on the "object_key" field.
func ObjectKeyEqualFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEqualFold(FieldObjectKey, v))
}

// ObjectKeyContainsFold applies the ContainsFold predicate on the "object_key" field.
func ObjectKeyContainsFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContainsFold(FieldObjectKey, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContainsFold(FieldContentHash, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldPageCount, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldSizeBytes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldContainsFold(FieldStatus, v))
}

// LatestJobIDEQ applies the EQ predicate on the "latest_job_id" field.
func LatestJobIDEQ(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldLatestJobID, v))
}

// LatestJobIDNEQ applies the NEQ predicate on the "latest_job_id" field.
func LatestJobIDNEQ(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldLatestJobID, v))
}

// LatestJobIDIn applies the In predicate on the "latest_job_id" field.
func LatestJobIDIn(vs ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldLatestJobID, vs...))
}

// LatestJobIDNotIn applies the NotIn predicate on the "latest_job_id" field.
func LatestJobIDNotIn(vs ...uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldLatestJobID, vs...))
}

// LatestJobIDGT applies the GT predicate on the "latest_job_id" field.
func LatestJobIDGT(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldLatestJobID, v))
}

// LatestJobIDGTE applies the GTE predicate on the "latest_job_id" field.
func LatestJobIDGTE(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldLatestJobID, v))
}

// LatestJobIDLT applies the LT predicate on the "latest_job_id" field.
func LatestJobIDLT(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldLatestJobID, v))
}

// LatestJobIDLTE applies the LTE predicate on the "latest_job_id" field.
func LatestJobIDLTE(v uuid.UUID) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldLatestJobID, v))
}

// LatestJobIDIsNil applies the IsNil predicate on the "latest_job_id" field.
func LatestJobIDIsNil() predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIsNull(FieldLatestJobID))
}

// LatestJobIDNotNil applies the NotNil predicate on the "latest_job_id" field.
func LatestJobIDNotNil() predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotNull(FieldLatestJobID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.BusinessPlan {
	return predicate.BusinessPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.EvaluationJob) predicate.BusinessPlan {
	return predicate.BusinessPlan(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.BusinessPlan {
	return predicate.BusinessPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.EvaluationReport) predicate.BusinessPlan {
	return predicate.BusinessPlan(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessPlan) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessPlan) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessPlan) predicate.BusinessPlan {
	return predicate.BusinessPlan(sql.NotPredicates(p))
}
