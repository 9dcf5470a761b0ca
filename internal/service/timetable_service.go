package service

import (
	"context"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// TimetableService serves class timetables.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(timetableRepo *repository.TimetableRepository) *TimetableService {
	return &TimetableService{timetableRepo: timetableRepo}
}

// List returns every class timetable.
func (s *TimetableService) List(ctx context.Context) ([]model.ClassTimeTable, error) {
	return s.timetableRepo.List(ctx)
}

// ForClass returns the timetable for one class section.
func (s *TimetableService) ForClass(ctx context.Context, className, section string) (*model.ClassTimeTable, error) {
	return s.timetableRepo.GetByClass(ctx, className, section)
}
