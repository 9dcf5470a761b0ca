package repository

import (
	"context"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// TimetableRepository handles read-only access to the static class
// timetables.
type TimetableRepository struct {
	db *database.MemDB
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(db *database.MemDB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// List retrieves all class timetables.
func (r *TimetableRepository) List(ctx context.Context) ([]model.ClassTimeTable, error) {
	var tables []model.ClassTimeTable
	r.db.View(func(d *database.Data) {
		tables = append(tables, d.Timetables...)
	})
	return tables, nil
}

// GetByClass retrieves the timetable for a (class name, section) pair.
func (r *TimetableRepository) GetByClass(ctx context.Context, className, section string) (*model.ClassTimeTable, error) {
	var found *model.ClassTimeTable
	r.db.View(func(d *database.Data) {
		for i := range d.Timetables {
			if d.Timetables[i].ClassName == className && d.Timetables[i].Section == section {
				t := d.Timetables[i]
				found = &t
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}
