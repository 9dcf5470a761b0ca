package database

import (
	"errors"
	"sync"

	"github.com/opencampus/campus-backend/internal/model"
)

// ErrNotFound is returned by repositories in strict mode when an update or
// delete targets an id that does not exist. In default mode those calls are
// silent no-ops.
var ErrNotFound = errors.New("record not found")

// Data holds every record collection. It is the single source of truth for
// the whole process; views and handlers never keep private copies. Access
// only happens inside MemDB.View or MemDB.Update.
type Data struct {
	Users       []model.User
	Courses     []model.Course
	Assignments []model.Assignment
	Submissions []model.Submission
	Fees        []model.Fee
	FeePayments []model.FeePayment
	Timetables  []model.ClassTimeTable

	seq map[string]int
}

// Collection sequence names for NextID.
const (
	SeqCourses     = "courses"
	SeqAssignments = "assignments"
	SeqSubmissions = "submissions"
	SeqFees        = "fees"
	SeqFeePayments = "fee_payments"
)

// NextID returns a fresh id for the named collection. Only call inside
// MemDB.Update; the counters share the store's write lock.
func (d *Data) NextID(collection string) int {
	d.seq[collection]++
	return d.seq[collection]
}

// BumpSeq raises a collection's counter so generated ids stay above ids
// already present (used when seeding fixtures with fixed ids).
func (d *Data) BumpSeq(collection string, floor int) {
	if d.seq[collection] < floor {
		d.seq[collection] = floor
	}
}

// MemDB is the in-memory record store. It is constructed once at process
// start and injected into every repository, so ownership and test resets are
// explicit: tests build a fresh MemDB each.
//
// Record collections live only for the process lifetime and re-seed from
// fixtures on restart; there is no persistence and no cross-process sync.
// The RWMutex serializes writers, which preserves the source model of
// single-writer-at-a-time mutation ordering under a concurrent HTTP host:
// every mutation reads the current state and writes back inside one
// uninterrupted Update call.
type MemDB struct {
	mu     sync.RWMutex
	strict bool
	data   Data
}

// Option configures a MemDB.
type Option func(*MemDB)

// Strict makes missing update/delete targets surface ErrNotFound instead of
// being silently ignored.
func Strict() Option {
	return func(db *MemDB) { db.strict = true }
}

// NewMemDB creates an empty store. Call Seed to load the demo fixtures.
func NewMemDB(opts ...Option) *MemDB {
	db := &MemDB{
		data: Data{seq: make(map[string]int)},
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// IsStrict reports whether missing update/delete targets are errors.
func (db *MemDB) IsStrict() bool {
	return db.strict
}

// View runs fn with shared (read) access to the collections. fn must not
// mutate anything it is handed.
func (db *MemDB) View(fn func(*Data)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(&db.data)
}

// Update runs fn with exclusive access to the collections. The whole
// read-modify-write of a mutation belongs in a single Update call.
func (db *MemDB) Update(fn func(*Data)) {
	db.mu.Lock()
	defer db.mu.Unlock()
	fn(&db.data)
}
