package database

import (
	"sync"
	"testing"
)

func TestNextIDMonotonic(t *testing.T) {
	db := NewMemDB()

	var first, second int
	db.Update(func(d *Data) {
		first = d.NextID(SeqCourses)
		second = d.NextID(SeqCourses)
	})

	if second != first+1 {
		t.Fatalf("expected consecutive ids, got %d then %d", first, second)
	}
}

func TestBumpSeqSkipsSeededIDs(t *testing.T) {
	db := NewMemDB()

	var next int
	db.Update(func(d *Data) {
		d.BumpSeq(SeqAssignments, 5)
		next = d.NextID(SeqAssignments)
	})

	if next != 6 {
		t.Fatalf("expected next id 6 after bump to 5, got %d", next)
	}
}

func TestSeedPopulatesCollections(t *testing.T) {
	db := NewMemDB()
	Seed(db, "test-hash")

	db.View(func(d *Data) {
		if len(d.Users) != 5 {
			t.Errorf("expected 5 seeded users, got %d", len(d.Users))
		}
		if len(d.Courses) != 3 {
			t.Errorf("expected 3 seeded courses, got %d", len(d.Courses))
		}
		if len(d.Assignments) != 5 {
			t.Errorf("expected 5 seeded assignments, got %d", len(d.Assignments))
		}
		if len(d.Submissions) != 4 {
			t.Errorf("expected 4 seeded submissions, got %d", len(d.Submissions))
		}
		if len(d.Fees) != 4 {
			t.Errorf("expected 4 seeded fees, got %d", len(d.Fees))
		}
		if len(d.FeePayments) != 3 {
			t.Errorf("expected 3 seeded payments, got %d", len(d.FeePayments))
		}
		if len(d.Timetables) != 3 {
			t.Errorf("expected 3 seeded timetables, got %d", len(d.Timetables))
		}
		for i := range d.Users {
			if d.Users[i].PasswordHash != "test-hash" {
				t.Errorf("user %s missing seed hash", d.Users[i].ID)
			}
		}
	})
}

func TestSeedIDsDoNotCollideWithNew(t *testing.T) {
	db := NewMemDB()
	Seed(db, "h")

	db.Update(func(d *Data) {
		id := d.NextID(SeqCourses)
		for i := range d.Courses {
			if d.Courses[i].ID == id {
				t.Fatalf("new course id %d collides with a seeded course", id)
			}
		}
	})
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	db := NewMemDB()

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				db.Update(func(d *Data) {
					d.NextID(SeqSubmissions)
				})
			}
		}()
	}
	wg.Wait()

	var final int
	db.Update(func(d *Data) {
		final = d.NextID(SeqSubmissions)
	})
	if final != writers*perWriter+1 {
		t.Fatalf("lost updates: expected %d, got %d", writers*perWriter+1, final)
	}
}

func TestStrictOption(t *testing.T) {
	if NewMemDB().IsStrict() {
		t.Error("default store should not be strict")
	}
	if !NewMemDB(Strict()).IsStrict() {
		t.Error("Strict() option not applied")
	}
}
