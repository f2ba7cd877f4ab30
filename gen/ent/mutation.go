// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBusinessPlan     = "BusinessPlan"
	TypeEvaluationJob    = "EvaluationJob"
	TypeEvaluationReport = "EvaluationReport"
)

// BusinessPlanMutation represents an operation that mutates the BusinessPlan nodes in the graph.
type BusinessPlanMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner_id       *uuid.UUID
	title          *string
	object_key     *string
	content_hash   *string
	page_count     *int
	addpage_count  *int
	size_bytes     *int
	addsize_bytes  *int
	status         *string
	latest_job_id  *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	reports        map[uuid.UUID]struct{}
	removedreports map[uuid.UUID]struct{}
	clearedreports bool
	done           bool
	oldValue       func(context.Context) (*BusinessPlan, error)
	predicates     []predicate.BusinessPlan
}

var _ ent.Mutation = (*BusinessPlanMutation)(nil)

// businessplanOption allows management of the mutation configuration using functional options.
type businessplanOption func(*BusinessPlanMutation)

// newBusinessPlanMutation creates new mutation for the BusinessPlan entity.
func newBusinessPlanMutation(c config, op Op, opts ...businessplanOption) *BusinessPlanMutation {
	m := &BusinessPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessPlanID sets the ID field of the mutation.
func withBusinessPlanID(id uuid.UUID) businessplanOption {
	return func(m *BusinessPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessPlan
		)
		m.oldValue = func(ctx context.Context) (*BusinessPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessPlan sets the old BusinessPlan of the mutation.
func withBusinessPlan(node *BusinessPlan) businessplanOption {
	return func(m *BusinessPlanMutation) {
		m.oldValue = func(context.Context) (*BusinessPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessPlan entities.
func (m *BusinessPlanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessPlanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessPlanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *BusinessPlanMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BusinessPlanMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BusinessPlanMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTitle sets the "title" field.
func (m *BusinessPlanMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BusinessPlanMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BusinessPlanMutation) ResetTitle() {
	m.title = nil
}

// SetObjectKey sets the "object_key" field.
func (m *BusinessPlanMutation) SetObjectKey(s string) {
	m.object_key = &s
}

// ObjectKey returns the value of the "object_key" field in the mutation.
func (m *BusinessPlanMutation) ObjectKey() (r string, exists bool) {
	v := m.object_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectKey returns the old "object_key" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldObjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectKey: %w", err)
	}
	return oldValue.ObjectKey, nil
}

// ResetObjectKey resets all changes to the "object_key" field.
func (m *BusinessPlanMutation) ResetObjectKey() {
	m.object_key = nil
}

// SetContentHash sets the "content_hash" field.
func (m *BusinessPlanMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *BusinessPlanMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *BusinessPlanMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[businessplan.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *BusinessPlanMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[businessplan.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *BusinessPlanMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, businessplan.FieldContentHash)
}

// SetPageCount sets the "page_count" field.
func (m *BusinessPlanMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *BusinessPlanMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *BusinessPlanMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *BusinessPlanMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *BusinessPlanMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *BusinessPlanMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *BusinessPlanMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *BusinessPlanMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *BusinessPlanMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *BusinessPlanMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStatus sets the "status" field.
func (m *BusinessPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BusinessPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BusinessPlanMutation) ResetStatus() {
	m.status = nil
}

// SetLatestJobID sets the "latest_job_id" field.
func (m *BusinessPlanMutation) SetLatestJobID(u uuid.UUID) {
	m.latest_job_id = &u
}

// LatestJobID returns the value of the "latest_job_id" field in the mutation.
func (m *BusinessPlanMutation) LatestJobID() (r uuid.UUID, exists bool) {
	v := m.latest_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestJobID returns the old "latest_job_id" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldLatestJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestJobID: %w", err)
	}
	return oldValue.LatestJobID, nil
}

// ClearLatestJobID clears the value of the "latest_job_id" field.
func (m *BusinessPlanMutation) ClearLatestJobID() {
	m.latest_job_id = nil
	m.clearedFields[businessplan.FieldLatestJobID] = struct{}{}
}

// LatestJobIDCleared returns if the "latest_job_id" field was cleared in this mutation.
func (m *BusinessPlanMutation) LatestJobIDCleared() bool {
	_, ok := m.clearedFields[businessplan.FieldLatestJobID]
	return ok
}

// ResetLatestJobID resets all changes to the "latest_job_id" field.
func (m *BusinessPlanMutation) ResetLatestJobID() {
	m.latest_job_id = nil
	delete(m.clearedFields, businessplan.FieldLatestJobID)
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessPlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessPlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BusinessPlan entity.
// If the BusinessPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessPlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessPlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the EvaluationJob entity by ids.
func (m *BusinessPlanMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the EvaluationJob entity.
func (m *BusinessPlanMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the EvaluationJob entity was cleared.
func (m *BusinessPlanMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the EvaluationJob entity by IDs.
func (m *BusinessPlanMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the EvaluationJob entity.
func (m *BusinessPlanMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BusinessPlanMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BusinessPlanMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by ids.
func (m *BusinessPlanMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the EvaluationReport entity.
func (m *BusinessPlanMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the EvaluationReport entity was cleared.
func (m *BusinessPlanMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the EvaluationReport entity by IDs.
func (m *BusinessPlanMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the EvaluationReport entity.
func (m *BusinessPlanMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *BusinessPlanMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *BusinessPlanMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the BusinessPlanMutation builder.
func (m *BusinessPlanMutation) Where(ps ...predicate.BusinessPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessPlan).
func (m *BusinessPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessPlanMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner_id != nil {
		fields = append(fields, businessplan.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, businessplan.FieldTitle)
	}
	if m.object_key != nil {
		fields = append(fields, businessplan.FieldObjectKey)
	}
	if m.content_hash != nil {
		fields = append(fields, businessplan.FieldContentHash)
	}
	if m.page_count != nil {
		fields = append(fields, businessplan.FieldPageCount)
	}
	if m.size_bytes != nil {
		fields = append(fields, businessplan.FieldSizeBytes)
	}
	if m.status != nil {
		fields = append(fields, businessplan.FieldStatus)
	}
	if m.latest_job_id != nil {
		fields = append(fields, businessplan.FieldLatestJobID)
	}
	if m.created_at != nil {
		fields = append(fields, businessplan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, businessplan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businessplan.FieldOwnerID:
		return m.OwnerID()
	case businessplan.FieldTitle:
		return m.Title()
	case businessplan.FieldObjectKey:
		return m.ObjectKey()
	case businessplan.FieldContentHash:
		return m.ContentHash()
	case businessplan.FieldPageCount:
		return m.PageCount()
	case businessplan.FieldSizeBytes:
		return m.SizeBytes()
	case businessplan.FieldStatus:
		return m.Status()
	case businessplan.FieldLatestJobID:
		return m.LatestJobID()
	case businessplan.FieldCreatedAt:
		return m.CreatedAt()
	case businessplan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businessplan.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case businessplan.FieldTitle:
		return m.OldTitle(ctx)
	case businessplan.FieldObjectKey:
		return m.OldObjectKey(ctx)
	case businessplan.FieldContentHash:
		return m.OldContentHash(ctx)
	case businessplan.FieldPageCount:
		return m.OldPageCount(ctx)
	case businessplan.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case businessplan.FieldStatus:
		return m.OldStatus(ctx)
	case businessplan.FieldLatestJobID:
		return m.OldLatestJobID(ctx)
	case businessplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case businessplan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businessplan.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case businessplan.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case businessplan.FieldObjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectKey(v)
		return nil
	case businessplan.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case businessplan.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case businessplan.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case businessplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case businessplan.FieldLatestJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestJobID(v)
		return nil
	case businessplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case businessplan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessPlanMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, businessplan.FieldPageCount)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, businessplan.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case businessplan.FieldPageCount:
		return m.AddedPageCount()
	case businessplan.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case businessplan.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case businessplan.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(businessplan.FieldContentHash) {
		fields = append(fields, businessplan.FieldContentHash)
	}
	if m.FieldCleared(businessplan.FieldLatestJobID) {
		fields = append(fields, businessplan.FieldLatestJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessPlanMutation) ClearField(name string) error {
	switch name {
	case businessplan.FieldContentHash:
		m.ClearContentHash()
		return nil
	case businessplan.FieldLatestJobID:
		m.ClearLatestJobID()
		return nil
	}
	return fmt.Errorf("unknown BusinessPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessPlanMutation) ResetField(name string) error {
	switch name {
	case businessplan.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case businessplan.FieldTitle:
		m.ResetTitle()
		return nil
	case businessplan.FieldObjectKey:
		m.ResetObjectKey()
		return nil
	case businessplan.FieldContentHash:
		m.ResetContentHash()
		return nil
	case businessplan.FieldPageCount:
		m.ResetPageCount()
		return nil
	case businessplan.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case businessplan.FieldStatus:
		m.ResetStatus()
		return nil
	case businessplan.FieldLatestJobID:
		m.ResetLatestJobID()
		return nil
	case businessplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case businessplan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusinessPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, businessplan.EdgeJobs)
	}
	if m.reports != nil {
		edges = append(edges, businessplan.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessPlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case businessplan.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case businessplan.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, businessplan.EdgeJobs)
	}
	if m.removedreports != nil {
		edges = append(edges, businessplan.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessPlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case businessplan.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case businessplan.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, businessplan.EdgeJobs)
	}
	if m.clearedreports {
		edges = append(edges, businessplan.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessPlanMutation) EdgeCleared(name string) bool {
	switch name {
	case businessplan.EdgeJobs:
		return m.clearedjobs
	case businessplan.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessPlanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessPlanMutation) ResetEdge(name string) error {
	switch name {
	case businessplan.EdgeJobs:
		m.ResetJobs()
		return nil
	case businessplan.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown BusinessPlan edge %s", name)
}

// EvaluationJobMutation represents an operation that mutates the EvaluationJob nodes in the graph.
type EvaluationJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	status               *string
	error_kind           *string
	error_message        *string
	model_name           *string
	sections_analyzed    *int
	addsections_analyzed *int
	started_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	plan                 *uuid.UUID
	clearedplan          bool
	report               *uuid.UUID
	clearedreport        bool
	done                 bool
	oldValue             func(context.Context) (*EvaluationJob, error)
	predicates           []predicate.EvaluationJob
}

var _ ent.Mutation = (*EvaluationJobMutation)(nil)

// evaluationjobOption allows management of the mutation configuration using functional options.
type evaluationjobOption func(*EvaluationJobMutation)

// newEvaluationJobMutation creates new mutation for the EvaluationJob entity.
func newEvaluationJobMutation(c config, op Op, opts ...evaluationjobOption) *EvaluationJobMutation {
	m := &EvaluationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationJobID sets the ID field of the mutation.
func withEvaluationJobID(id uuid.UUID) evaluationjobOption {
	return func(m *EvaluationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationJob
		)
		m.oldValue = func(ctx context.Context) (*EvaluationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationJob sets the old EvaluationJob of the mutation.
func withEvaluationJob(node *EvaluationJob) evaluationjobOption {
	return func(m *EvaluationJobMutation) {
		m.oldValue = func(context.Context) (*EvaluationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationJob entities.
func (m *EvaluationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *EvaluationJobMutation) SetPlanID(u uuid.UUID) {
	m.plan = &u
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *EvaluationJobMutation) PlanID() (r uuid.UUID, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldPlanID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *EvaluationJobMutation) ResetPlanID() {
	m.plan = nil
}

// SetStatus sets the "status" field.
func (m *EvaluationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *EvaluationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvaluationJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *EvaluationJobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *EvaluationJobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *EvaluationJobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[evaluationjob.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *EvaluationJobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[evaluationjob.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *EvaluationJobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, evaluationjob.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *EvaluationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EvaluationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EvaluationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[evaluationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EvaluationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[evaluationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EvaluationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, evaluationjob.FieldErrorMessage)
}

// SetModelName sets the "model_name" field.
func (m *EvaluationJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *EvaluationJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *EvaluationJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[evaluationjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *EvaluationJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[evaluationjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *EvaluationJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, evaluationjob.FieldModelName)
}

// SetSectionsAnalyzed sets the "sections_analyzed" field.
func (m *EvaluationJobMutation) SetSectionsAnalyzed(i int) {
	m.sections_analyzed = &i
	m.addsections_analyzed = nil
}

// SectionsAnalyzed returns the value of the "sections_analyzed" field in the mutation.
func (m *EvaluationJobMutation) SectionsAnalyzed() (r int, exists bool) {
	v := m.sections_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionsAnalyzed returns the old "sections_analyzed" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldSectionsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionsAnalyzed: %w", err)
	}
	return oldValue.SectionsAnalyzed, nil
}

// AddSectionsAnalyzed adds i to the "sections_analyzed" field.
func (m *EvaluationJobMutation) AddSectionsAnalyzed(i int) {
	if m.addsections_analyzed != nil {
		*m.addsections_analyzed += i
	} else {
		m.addsections_analyzed = &i
	}
}

// AddedSectionsAnalyzed returns the value that was added to the "sections_analyzed" field in this mutation.
func (m *EvaluationJobMutation) AddedSectionsAnalyzed() (r int, exists bool) {
	v := m.addsections_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSectionsAnalyzed resets all changes to the "sections_analyzed" field.
func (m *EvaluationJobMutation) ResetSectionsAnalyzed() {
	m.sections_analyzed = nil
	m.addsections_analyzed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *EvaluationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EvaluationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EvaluationJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *EvaluationJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *EvaluationJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the EvaluationJob entity.
// If the EvaluationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *EvaluationJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[evaluationjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *EvaluationJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[evaluationjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *EvaluationJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, evaluationjob.FieldFinishedAt)
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (m *EvaluationJobMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[evaluationjob.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the BusinessPlan entity was cleared.
func (m *EvaluationJobMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *EvaluationJobMutation) PlanIDs() (ids []uuid.UUID) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *EvaluationJobMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// SetReportID sets the "report" edge to the EvaluationReport entity by id.
func (m *EvaluationJobMutation) SetReportID(id uuid.UUID) {
	m.report = &id
}

// ClearReport clears the "report" edge to the EvaluationReport entity.
func (m *EvaluationJobMutation) ClearReport() {
	m.clearedreport = true
}

// ReportCleared reports if the "report" edge to the EvaluationReport entity was cleared.
func (m *EvaluationJobMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportID returns the "report" edge ID in the mutation.
func (m *EvaluationJobMutation) ReportID() (id uuid.UUID, exists bool) {
	if m.report != nil {
		return *m.report, true
	}
	return
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *EvaluationJobMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *EvaluationJobMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the EvaluationJobMutation builder.
func (m *EvaluationJobMutation) Where(ps ...predicate.EvaluationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationJob).
func (m *EvaluationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.plan != nil {
		fields = append(fields, evaluationjob.FieldPlanID)
	}
	if m.status != nil {
		fields = append(fields, evaluationjob.FieldStatus)
	}
	if m.error_kind != nil {
		fields = append(fields, evaluationjob.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, evaluationjob.FieldErrorMessage)
	}
	if m.model_name != nil {
		fields = append(fields, evaluationjob.FieldModelName)
	}
	if m.sections_analyzed != nil {
		fields = append(fields, evaluationjob.FieldSectionsAnalyzed)
	}
	if m.started_at != nil {
		fields = append(fields, evaluationjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, evaluationjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationjob.FieldPlanID:
		return m.PlanID()
	case evaluationjob.FieldStatus:
		return m.Status()
	case evaluationjob.FieldErrorKind:
		return m.ErrorKind()
	case evaluationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case evaluationjob.FieldModelName:
		return m.ModelName()
	case evaluationjob.FieldSectionsAnalyzed:
		return m.SectionsAnalyzed()
	case evaluationjob.FieldStartedAt:
		return m.StartedAt()
	case evaluationjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationjob.FieldPlanID:
		return m.OldPlanID(ctx)
	case evaluationjob.FieldStatus:
		return m.OldStatus(ctx)
	case evaluationjob.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case evaluationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case evaluationjob.FieldModelName:
		return m.OldModelName(ctx)
	case evaluationjob.FieldSectionsAnalyzed:
		return m.OldSectionsAnalyzed(ctx)
	case evaluationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case evaluationjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationjob.FieldPlanID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case evaluationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evaluationjob.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case evaluationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case evaluationjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case evaluationjob.FieldSectionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionsAnalyzed(v)
		return nil
	case evaluationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case evaluationjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationJobMutation) AddedFields() []string {
	var fields []string
	if m.addsections_analyzed != nil {
		fields = append(fields, evaluationjob.FieldSectionsAnalyzed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationjob.FieldSectionsAnalyzed:
		return m.AddedSectionsAnalyzed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationjob.FieldSectionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionsAnalyzed(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationjob.FieldErrorKind) {
		fields = append(fields, evaluationjob.FieldErrorKind)
	}
	if m.FieldCleared(evaluationjob.FieldErrorMessage) {
		fields = append(fields, evaluationjob.FieldErrorMessage)
	}
	if m.FieldCleared(evaluationjob.FieldModelName) {
		fields = append(fields, evaluationjob.FieldModelName)
	}
	if m.FieldCleared(evaluationjob.FieldFinishedAt) {
		fields = append(fields, evaluationjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationJobMutation) ClearField(name string) error {
	switch name {
	case evaluationjob.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case evaluationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case evaluationjob.FieldModelName:
		m.ClearModelName()
		return nil
	case evaluationjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationJobMutation) ResetField(name string) error {
	switch name {
	case evaluationjob.FieldPlanID:
		m.ResetPlanID()
		return nil
	case evaluationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case evaluationjob.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case evaluationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case evaluationjob.FieldModelName:
		m.ResetModelName()
		return nil
	case evaluationjob.FieldSectionsAnalyzed:
		m.ResetSectionsAnalyzed()
		return nil
	case evaluationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case evaluationjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.plan != nil {
		edges = append(edges, evaluationjob.EdgePlan)
	}
	if m.report != nil {
		edges = append(edges, evaluationjob.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationjob.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	case evaluationjob.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedplan {
		edges = append(edges, evaluationjob.EdgePlan)
	}
	if m.clearedreport {
		edges = append(edges, evaluationjob.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationjob.EdgePlan:
		return m.clearedplan
	case evaluationjob.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationJobMutation) ClearEdge(name string) error {
	switch name {
	case evaluationjob.EdgePlan:
		m.ClearPlan()
		return nil
	case evaluationjob.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationJobMutation) ResetEdge(name string) error {
	switch name {
	case evaluationjob.EdgePlan:
		m.ResetPlan()
		return nil
	case evaluationjob.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown EvaluationJob edge %s", name)
}

// EvaluationReportMutation represents an operation that mutates the EvaluationReport nodes in the graph.
type EvaluationReportMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	total_score                   *float64
	addtotal_score                *float64
	overall_assessment            *string
	risk_of_rejection             *bool
	failed_categories             *[]string
	appendfailed_categories       []string
	category_results              *json.RawMessage
	appendcategory_results        json.RawMessage
	section_scores                *json.RawMessage
	appendsection_scores          json.RawMessage
	strengths                     *[]string
	appendstrengths               []string
	weaknesses                    *[]string
	appendweaknesses              []string
	improvement_suggestions       *[]string
	appendimprovement_suggestions []string
	raw_report                    *json.RawMessage
	appendraw_report              json.RawMessage
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	plan                          *uuid.UUID
	clearedplan                   bool
	job                           *uuid.UUID
	clearedjob                    bool
	done                          bool
	oldValue                      func(context.Context) (*EvaluationReport, error)
	predicates                    []predicate.EvaluationReport
}

var _ ent.Mutation = (*EvaluationReportMutation)(nil)

// evaluationreportOption allows management of the mutation configuration using functional options.
type evaluationreportOption func(*EvaluationReportMutation)

// newEvaluationReportMutation creates new mutation for the EvaluationReport entity.
func newEvaluationReportMutation(c config, op Op, opts ...evaluationreportOption) *EvaluationReportMutation {
	m := &EvaluationReportMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationReportID sets the ID field of the mutation.
func withEvaluationReportID(id uuid.UUID) evaluationreportOption {
	return func(m *EvaluationReportMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationReport
		)
		m.oldValue = func(ctx context.Context) (*EvaluationReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationReport sets the old EvaluationReport of the mutation.
func withEvaluationReport(node *EvaluationReport) evaluationreportOption {
	return func(m *EvaluationReportMutation) {
		m.oldValue = func(context.Context) (*EvaluationReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationReport entities.
func (m *EvaluationReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *EvaluationReportMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EvaluationReportMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EvaluationReportMutation) ResetJobID() {
	m.job = nil
}

// SetPlanID sets the "plan_id" field.
func (m *EvaluationReportMutation) SetPlanID(u uuid.UUID) {
	m.plan = &u
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *EvaluationReportMutation) PlanID() (r uuid.UUID, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldPlanID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *EvaluationReportMutation) ResetPlanID() {
	m.plan = nil
}

// SetTotalScore sets the "total_score" field.
func (m *EvaluationReportMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *EvaluationReportMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *EvaluationReportMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *EvaluationReportMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *EvaluationReportMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetOverallAssessment sets the "overall_assessment" field.
func (m *EvaluationReportMutation) SetOverallAssessment(s string) {
	m.overall_assessment = &s
}

// OverallAssessment returns the value of the "overall_assessment" field in the mutation.
func (m *EvaluationReportMutation) OverallAssessment() (r string, exists bool) {
	v := m.overall_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallAssessment returns the old "overall_assessment" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldOverallAssessment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallAssessment: %w", err)
	}
	return oldValue.OverallAssessment, nil
}

// ResetOverallAssessment resets all changes to the "overall_assessment" field.
func (m *EvaluationReportMutation) ResetOverallAssessment() {
	m.overall_assessment = nil
}

// SetRiskOfRejection sets the "risk_of_rejection" field.
func (m *EvaluationReportMutation) SetRiskOfRejection(b bool) {
	m.risk_of_rejection = &b
}

// RiskOfRejection returns the value of the "risk_of_rejection" field in the mutation.
func (m *EvaluationReportMutation) RiskOfRejection() (r bool, exists bool) {
	v := m.risk_of_rejection
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskOfRejection returns the old "risk_of_rejection" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldRiskOfRejection(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskOfRejection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskOfRejection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskOfRejection: %w", err)
	}
	return oldValue.RiskOfRejection, nil
}

// ResetRiskOfRejection resets all changes to the "risk_of_rejection" field.
func (m *EvaluationReportMutation) ResetRiskOfRejection() {
	m.risk_of_rejection = nil
}

// SetFailedCategories sets the "failed_categories" field.
func (m *EvaluationReportMutation) SetFailedCategories(s []string) {
	m.failed_categories = &s
	m.appendfailed_categories = nil
}

// FailedCategories returns the value of the "failed_categories" field in the mutation.
func (m *EvaluationReportMutation) FailedCategories() (r []string, exists bool) {
	v := m.failed_categories
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCategories returns the old "failed_categories" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldFailedCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCategories: %w", err)
	}
	return oldValue.FailedCategories, nil
}

// AppendFailedCategories adds s to the "failed_categories" field.
func (m *EvaluationReportMutation) AppendFailedCategories(s []string) {
	m.appendfailed_categories = append(m.appendfailed_categories, s...)
}

// AppendedFailedCategories returns the list of values that were appended to the "failed_categories" field in this mutation.
func (m *EvaluationReportMutation) AppendedFailedCategories() ([]string, bool) {
	if len(m.appendfailed_categories) == 0 {
		return nil, false
	}
	return m.appendfailed_categories, true
}

// ClearFailedCategories clears the value of the "failed_categories" field.
func (m *EvaluationReportMutation) ClearFailedCategories() {
	m.failed_categories = nil
	m.appendfailed_categories = nil
	m.clearedFields[evaluationreport.FieldFailedCategories] = struct{}{}
}

// FailedCategoriesCleared returns if the "failed_categories" field was cleared in this mutation.
func (m *EvaluationReportMutation) FailedCategoriesCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldFailedCategories]
	return ok
}

// ResetFailedCategories resets all changes to the "failed_categories" field.
func (m *EvaluationReportMutation) ResetFailedCategories() {
	m.failed_categories = nil
	m.appendfailed_categories = nil
	delete(m.clearedFields, evaluationreport.FieldFailedCategories)
}

// SetCategoryResults sets the "category_results" field.
func (m *EvaluationReportMutation) SetCategoryResults(jm json.RawMessage) {
	m.category_results = &jm
	m.appendcategory_results = nil
}

// CategoryResults returns the value of the "category_results" field in the mutation.
func (m *EvaluationReportMutation) CategoryResults() (r json.RawMessage, exists bool) {
	v := m.category_results
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResults returns the old "category_results" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldCategoryResults(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResults: %w", err)
	}
	return oldValue.CategoryResults, nil
}

// AppendCategoryResults adds jm to the "category_results" field.
func (m *EvaluationReportMutation) AppendCategoryResults(jm json.RawMessage) {
	m.appendcategory_results = append(m.appendcategory_results, jm...)
}

// AppendedCategoryResults returns the list of values that were appended to the "category_results" field in this mutation.
func (m *EvaluationReportMutation) AppendedCategoryResults() (json.RawMessage, bool) {
	if len(m.appendcategory_results) == 0 {
		return nil, false
	}
	return m.appendcategory_results, true
}

// ResetCategoryResults resets all changes to the "category_results" field.
func (m *EvaluationReportMutation) ResetCategoryResults() {
	m.category_results = nil
	m.appendcategory_results = nil
}

// SetSectionScores sets the "section_scores" field.
func (m *EvaluationReportMutation) SetSectionScores(jm json.RawMessage) {
	m.section_scores = &jm
	m.appendsection_scores = nil
}

// SectionScores returns the value of the "section_scores" field in the mutation.
func (m *EvaluationReportMutation) SectionScores() (r json.RawMessage, exists bool) {
	v := m.section_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionScores returns the old "section_scores" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldSectionScores(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionScores: %w", err)
	}
	return oldValue.SectionScores, nil
}

// AppendSectionScores adds jm to the "section_scores" field.
func (m *EvaluationReportMutation) AppendSectionScores(jm json.RawMessage) {
	m.appendsection_scores = append(m.appendsection_scores, jm...)
}

// AppendedSectionScores returns the list of values that were appended to the "section_scores" field in this mutation.
func (m *EvaluationReportMutation) AppendedSectionScores() (json.RawMessage, bool) {
	if len(m.appendsection_scores) == 0 {
		return nil, false
	}
	return m.appendsection_scores, true
}

// ClearSectionScores clears the value of the "section_scores" field.
func (m *EvaluationReportMutation) ClearSectionScores() {
	m.section_scores = nil
	m.appendsection_scores = nil
	m.clearedFields[evaluationreport.FieldSectionScores] = struct{}{}
}

// SectionScoresCleared returns if the "section_scores" field was cleared in this mutation.
func (m *EvaluationReportMutation) SectionScoresCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldSectionScores]
	return ok
}

// ResetSectionScores resets all changes to the "section_scores" field.
func (m *EvaluationReportMutation) ResetSectionScores() {
	m.section_scores = nil
	m.appendsection_scores = nil
	delete(m.clearedFields, evaluationreport.FieldSectionScores)
}

// SetStrengths sets the "strengths" field.
func (m *EvaluationReportMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *EvaluationReportMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *EvaluationReportMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *EvaluationReportMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *EvaluationReportMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[evaluationreport.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *EvaluationReportMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *EvaluationReportMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, evaluationreport.FieldStrengths)
}

// SetWeaknesses sets the "weaknesses" field.
func (m *EvaluationReportMutation) SetWeaknesses(s []string) {
	m.weaknesses = &s
	m.appendweaknesses = nil
}

// Weaknesses returns the value of the "weaknesses" field in the mutation.
func (m *EvaluationReportMutation) Weaknesses() (r []string, exists bool) {
	v := m.weaknesses
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknesses returns the old "weaknesses" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldWeaknesses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknesses: %w", err)
	}
	return oldValue.Weaknesses, nil
}

// AppendWeaknesses adds s to the "weaknesses" field.
func (m *EvaluationReportMutation) AppendWeaknesses(s []string) {
	m.appendweaknesses = append(m.appendweaknesses, s...)
}

// AppendedWeaknesses returns the list of values that were appended to the "weaknesses" field in this mutation.
func (m *EvaluationReportMutation) AppendedWeaknesses() ([]string, bool) {
	if len(m.appendweaknesses) == 0 {
		return nil, false
	}
	return m.appendweaknesses, true
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (m *EvaluationReportMutation) ClearWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	m.clearedFields[evaluationreport.FieldWeaknesses] = struct{}{}
}

// WeaknessesCleared returns if the "weaknesses" field was cleared in this mutation.
func (m *EvaluationReportMutation) WeaknessesCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldWeaknesses]
	return ok
}

// ResetWeaknesses resets all changes to the "weaknesses" field.
func (m *EvaluationReportMutation) ResetWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	delete(m.clearedFields, evaluationreport.FieldWeaknesses)
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (m *EvaluationReportMutation) SetImprovementSuggestions(s []string) {
	m.improvement_suggestions = &s
	m.appendimprovement_suggestions = nil
}

// ImprovementSuggestions returns the value of the "improvement_suggestions" field in the mutation.
func (m *EvaluationReportMutation) ImprovementSuggestions() (r []string, exists bool) {
	v := m.improvement_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementSuggestions returns the old "improvement_suggestions" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldImprovementSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementSuggestions: %w", err)
	}
	return oldValue.ImprovementSuggestions, nil
}

// AppendImprovementSuggestions adds s to the "improvement_suggestions" field.
func (m *EvaluationReportMutation) AppendImprovementSuggestions(s []string) {
	m.appendimprovement_suggestions = append(m.appendimprovement_suggestions, s...)
}

// AppendedImprovementSuggestions returns the list of values that were appended to the "improvement_suggestions" field in this mutation.
func (m *EvaluationReportMutation) AppendedImprovementSuggestions() ([]string, bool) {
	if len(m.appendimprovement_suggestions) == 0 {
		return nil, false
	}
	return m.appendimprovement_suggestions, true
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (m *EvaluationReportMutation) ClearImprovementSuggestions() {
	m.improvement_suggestions = nil
	m.appendimprovement_suggestions = nil
	m.clearedFields[evaluationreport.FieldImprovementSuggestions] = struct{}{}
}

// ImprovementSuggestionsCleared returns if the "improvement_suggestions" field was cleared in this mutation.
func (m *EvaluationReportMutation) ImprovementSuggestionsCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldImprovementSuggestions]
	return ok
}

// ResetImprovementSuggestions resets all changes to the "improvement_suggestions" field.
func (m *EvaluationReportMutation) ResetImprovementSuggestions() {
	m.improvement_suggestions = nil
	m.appendimprovement_suggestions = nil
	delete(m.clearedFields, evaluationreport.FieldImprovementSuggestions)
}

// SetRawReport sets the "raw_report" field.
func (m *EvaluationReportMutation) SetRawReport(jm json.RawMessage) {
	m.raw_report = &jm
	m.appendraw_report = nil
}

// RawReport returns the value of the "raw_report" field in the mutation.
func (m *EvaluationReportMutation) RawReport() (r json.RawMessage, exists bool) {
	v := m.raw_report
	if v == nil {
		return
	}
	return *v, true
}

// OldRawReport returns the old "raw_report" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldRawReport(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawReport: %w", err)
	}
	return oldValue.RawReport, nil
}

// AppendRawReport adds jm to the "raw_report" field.
func (m *EvaluationReportMutation) AppendRawReport(jm json.RawMessage) {
	m.appendraw_report = append(m.appendraw_report, jm...)
}

// AppendedRawReport returns the list of values that were appended to the "raw_report" field in this mutation.
func (m *EvaluationReportMutation) AppendedRawReport() (json.RawMessage, bool) {
	if len(m.appendraw_report) == 0 {
		return nil, false
	}
	return m.appendraw_report, true
}

// ClearRawReport clears the value of the "raw_report" field.
func (m *EvaluationReportMutation) ClearRawReport() {
	m.raw_report = nil
	m.appendraw_report = nil
	m.clearedFields[evaluationreport.FieldRawReport] = struct{}{}
}

// RawReportCleared returns if the "raw_report" field was cleared in this mutation.
func (m *EvaluationReportMutation) RawReportCleared() bool {
	_, ok := m.clearedFields[evaluationreport.FieldRawReport]
	return ok
}

// ResetRawReport resets all changes to the "raw_report" field.
func (m *EvaluationReportMutation) ResetRawReport() {
	m.raw_report = nil
	m.appendraw_report = nil
	delete(m.clearedFields, evaluationreport.FieldRawReport)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (m *EvaluationReportMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[evaluationreport.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the BusinessPlan entity was cleared.
func (m *EvaluationReportMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *EvaluationReportMutation) PlanIDs() (ids []uuid.UUID) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *EvaluationReportMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// ClearJob clears the "job" edge to the EvaluationJob entity.
func (m *EvaluationReportMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[evaluationreport.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the EvaluationJob entity was cleared.
func (m *EvaluationReportMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *EvaluationReportMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *EvaluationReportMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the EvaluationReportMutation builder.
func (m *EvaluationReportMutation) Where(ps ...predicate.EvaluationReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationReport).
func (m *EvaluationReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationReportMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, evaluationreport.FieldJobID)
	}
	if m.plan != nil {
		fields = append(fields, evaluationreport.FieldPlanID)
	}
	if m.total_score != nil {
		fields = append(fields, evaluationreport.FieldTotalScore)
	}
	if m.overall_assessment != nil {
		fields = append(fields, evaluationreport.FieldOverallAssessment)
	}
	if m.risk_of_rejection != nil {
		fields = append(fields, evaluationreport.FieldRiskOfRejection)
	}
	if m.failed_categories != nil {
		fields = append(fields, evaluationreport.FieldFailedCategories)
	}
	if m.category_results != nil {
		fields = append(fields, evaluationreport.FieldCategoryResults)
	}
	if m.section_scores != nil {
		fields = append(fields, evaluationreport.FieldSectionScores)
	}
	if m.strengths != nil {
		fields = append(fields, evaluationreport.FieldStrengths)
	}
	if m.weaknesses != nil {
		fields = append(fields, evaluationreport.FieldWeaknesses)
	}
	if m.improvement_suggestions != nil {
		fields = append(fields, evaluationreport.FieldImprovementSuggestions)
	}
	if m.raw_report != nil {
		fields = append(fields, evaluationreport.FieldRawReport)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationreport.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationreport.FieldJobID:
		return m.JobID()
	case evaluationreport.FieldPlanID:
		return m.PlanID()
	case evaluationreport.FieldTotalScore:
		return m.TotalScore()
	case evaluationreport.FieldOverallAssessment:
		return m.OverallAssessment()
	case evaluationreport.FieldRiskOfRejection:
		return m.RiskOfRejection()
	case evaluationreport.FieldFailedCategories:
		return m.FailedCategories()
	case evaluationreport.FieldCategoryResults:
		return m.CategoryResults()
	case evaluationreport.FieldSectionScores:
		return m.SectionScores()
	case evaluationreport.FieldStrengths:
		return m.Strengths()
	case evaluationreport.FieldWeaknesses:
		return m.Weaknesses()
	case evaluationreport.FieldImprovementSuggestions:
		return m.ImprovementSuggestions()
	case evaluationreport.FieldRawReport:
		return m.RawReport()
	case evaluationreport.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationreport.FieldJobID:
		return m.OldJobID(ctx)
	case evaluationreport.FieldPlanID:
		return m.OldPlanID(ctx)
	case evaluationreport.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case evaluationreport.FieldOverallAssessment:
		return m.OldOverallAssessment(ctx)
	case evaluationreport.FieldRiskOfRejection:
		return m.OldRiskOfRejection(ctx)
	case evaluationreport.FieldFailedCategories:
		return m.OldFailedCategories(ctx)
	case evaluationreport.FieldCategoryResults:
		return m.OldCategoryResults(ctx)
	case evaluationreport.FieldSectionScores:
		return m.OldSectionScores(ctx)
	case evaluationreport.FieldStrengths:
		return m.OldStrengths(ctx)
	case evaluationreport.FieldWeaknesses:
		return m.OldWeaknesses(ctx)
	case evaluationreport.FieldImprovementSuggestions:
		return m.OldImprovementSuggestions(ctx)
	case evaluationreport.FieldRawReport:
		return m.OldRawReport(ctx)
	case evaluationreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationreport.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case evaluationreport.FieldPlanID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case evaluationreport.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case evaluationreport.FieldOverallAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallAssessment(v)
		return nil
	case evaluationreport.FieldRiskOfRejection:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskOfRejection(v)
		return nil
	case evaluationreport.FieldFailedCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCategories(v)
		return nil
	case evaluationreport.FieldCategoryResults:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResults(v)
		return nil
	case evaluationreport.FieldSectionScores:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionScores(v)
		return nil
	case evaluationreport.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case evaluationreport.FieldWeaknesses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknesses(v)
		return nil
	case evaluationreport.FieldImprovementSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementSuggestions(v)
		return nil
	case evaluationreport.FieldRawReport:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawReport(v)
		return nil
	case evaluationreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationReportMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, evaluationreport.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationreport.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationreport.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationreport.FieldFailedCategories) {
		fields = append(fields, evaluationreport.FieldFailedCategories)
	}
	if m.FieldCleared(evaluationreport.FieldSectionScores) {
		fields = append(fields, evaluationreport.FieldSectionScores)
	}
	if m.FieldCleared(evaluationreport.FieldStrengths) {
		fields = append(fields, evaluationreport.FieldStrengths)
	}
	if m.FieldCleared(evaluationreport.FieldWeaknesses) {
		fields = append(fields, evaluationreport.FieldWeaknesses)
	}
	if m.FieldCleared(evaluationreport.FieldImprovementSuggestions) {
		fields = append(fields, evaluationreport.FieldImprovementSuggestions)
	}
	if m.FieldCleared(evaluationreport.FieldRawReport) {
		fields = append(fields, evaluationreport.FieldRawReport)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationReportMutation) ClearField(name string) error {
	switch name {
	case evaluationreport.FieldFailedCategories:
		m.ClearFailedCategories()
		return nil
	case evaluationreport.FieldSectionScores:
		m.ClearSectionScores()
		return nil
	case evaluationreport.FieldStrengths:
		m.ClearStrengths()
		return nil
	case evaluationreport.FieldWeaknesses:
		m.ClearWeaknesses()
		return nil
	case evaluationreport.FieldImprovementSuggestions:
		m.ClearImprovementSuggestions()
		return nil
	case evaluationreport.FieldRawReport:
		m.ClearRawReport()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationReportMutation) ResetField(name string) error {
	switch name {
	case evaluationreport.FieldJobID:
		m.ResetJobID()
		return nil
	case evaluationreport.FieldPlanID:
		m.ResetPlanID()
		return nil
	case evaluationreport.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case evaluationreport.FieldOverallAssessment:
		m.ResetOverallAssessment()
		return nil
	case evaluationreport.FieldRiskOfRejection:
		m.ResetRiskOfRejection()
		return nil
	case evaluationreport.FieldFailedCategories:
		m.ResetFailedCategories()
		return nil
	case evaluationreport.FieldCategoryResults:
		m.ResetCategoryResults()
		return nil
	case evaluationreport.FieldSectionScores:
		m.ResetSectionScores()
		return nil
	case evaluationreport.FieldStrengths:
		m.ResetStrengths()
		return nil
	case evaluationreport.FieldWeaknesses:
		m.ResetWeaknesses()
		return nil
	case evaluationreport.FieldImprovementSuggestions:
		m.ResetImprovementSuggestions()
		return nil
	case evaluationreport.FieldRawReport:
		m.ResetRawReport()
		return nil
	case evaluationreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.plan != nil {
		edges = append(edges, evaluationreport.EdgePlan)
	}
	if m.job != nil {
		edges = append(edges, evaluationreport.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationreport.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	case evaluationreport.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedplan {
		edges = append(edges, evaluationreport.EdgePlan)
	}
	if m.clearedjob {
		edges = append(edges, evaluationreport.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationReportMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationreport.EdgePlan:
		return m.clearedplan
	case evaluationreport.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationReportMutation) ClearEdge(name string) error {
	switch name {
	case evaluationreport.EdgePlan:
		m.ClearPlan()
		return nil
	case evaluationreport.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationReportMutation) ResetEdge(name string) error {
	switch name {
	case evaluationreport.EdgePlan:
		m.ResetPlan()
		return nil
	case evaluationreport.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport edge %s", name)
}
