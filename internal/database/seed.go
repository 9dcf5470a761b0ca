package database

import (
	"time"

	"github.com/opencampus/campus-backend/internal/model"
)

// Seed loads the demo fixtures into the store. Every account gets the same
// bcrypt hash (demo password), supplied by the caller so the cost factor
// stays configurable. Seed replaces whatever is in the store.
func Seed(db *MemDB, passwordHash string) {
	db.Update(func(d *Data) {
		d.Users = seedUsers(passwordHash)
		d.Courses = seedCourses()
		d.Assignments = seedAssignments()
		d.Submissions = seedSubmissions()
		d.Fees = seedFees()
		d.FeePayments = seedFeePayments()
		d.Timetables = seedTimetables()

		d.BumpSeq(SeqCourses, 103)
		d.BumpSeq(SeqAssignments, 5)
		d.BumpSeq(SeqSubmissions, 4)
		d.BumpSeq(SeqFees, 4)
		d.BumpSeq(SeqFeePayments, 3)
	})
}

func seedUsers(passwordHash string) []model.User {
	return []model.User{
		{
			ID:           "student1",
			Name:         "Alex Johnson",
			Email:        "alex.j@school.edu",
			Role:         model.RoleStudent,
			Avatar:       "https://picsum.photos/seed/alex/200",
			SchoolID:     "S-ALJ-001",
			Contact:      "123-456-7890",
			PasswordHash: passwordHash,
			Student:      &model.StudentProfile{GradeLevel: 10, CourseIDs: []int{101, 102}},
		},
		{
			ID:           "student2",
			Name:         "Maria Garcia",
			Email:        "maria.g@school.edu",
			Role:         model.RoleStudent,
			Avatar:       "https://picsum.photos/seed/maria/200",
			SchoolID:     "S-MGA-002",
			Contact:      "234-567-8901",
			PasswordHash: passwordHash,
			Student:      &model.StudentProfile{GradeLevel: 11, CourseIDs: []int{102, 103}},
		},
		{
			ID:           "teacher1",
			Name:         "Dr. Evelyn Reed",
			Email:        "e.reed@school.edu",
			Role:         model.RoleTeacher,
			Avatar:       "https://picsum.photos/seed/reed/200",
			SchoolID:     "T-ERD-001",
			Contact:      "345-678-9012",
			PasswordHash: passwordHash,
		},
		{
			ID:           "teacher2",
			Name:         "Mr. David Chen",
			Email:        "d.chen@school.edu",
			Role:         model.RoleTeacher,
			Avatar:       "https://picsum.photos/seed/chen/200",
			SchoolID:     "T-DCH-002",
			Contact:      "456-789-0123",
			PasswordHash: passwordHash,
		},
		{
			ID:           "admin1",
			Name:         "Principal Thompson",
			Email:        "admin@school.edu",
			Role:         model.RoleAdmin,
			Avatar:       "https://picsum.photos/seed/thompson/200",
			SchoolID:     "A-PTH-001",
			Contact:      "567-890-1234",
			PasswordHash: passwordHash,
		},
	}
}

func seedCourses() []model.Course {
	return []model.Course{
		{
			ID:          101,
			Title:       "Physics",
			Description: "Explore the fundamental principles of classical mechanics, thermodynamics, and electromagnetism.",
			ClassName:   "Grade 10",
			Section:     "A",
			CreatorID:   "teacher1",
			TeacherIDs:  []string{"teacher1"},
			Materials: []model.CourseMaterial{
				{ID: 1, Type: model.MaterialVideo, Title: "Lecture 1: Kinematics", URL: "#"},
				{ID: 2, Type: model.MaterialDocument, Title: "Syllabus", URL: "#"},
				{ID: 3, Type: model.MaterialSlides, Title: "Chapter 1 Slides", Content: []string{
					"https://picsum.photos/seed/physics-slide1/800/600",
					"https://picsum.photos/seed/physics-slide2/800/600",
					"https://picsum.photos/seed/physics-slide3/800/600",
					"https://picsum.photos/seed/physics-slide4/800/600",
				}},
			},
			StudentIDs: []string{"student1"},
			Announcements: []model.Announcement{
				{ID: 1, CourseID: 101, Title: "Welcome!", Content: "Welcome to Physics 101. Please review the syllabus.", Date: date(2024, 9, 1)},
			},
		},
		{
			ID:          102,
			Title:       "World History",
			Description: "A survey of major world civilizations from prehistory to the medieval period.",
			ClassName:   "Grade 10",
			Section:     "B",
			TeacherIDs:  []string{"teacher2"},
			Materials: []model.CourseMaterial{
				{ID: 1, Type: model.MaterialVideo, Title: "Lecture 1: Mesopotamia", URL: "#"},
				{ID: 2, Type: model.MaterialDocument, Title: "Reading List", URL: "#"},
			},
			StudentIDs: []string{"student1", "student2"},
			Announcements: []model.Announcement{
				{ID: 1, CourseID: 102, Title: "Midterm Exam Schedule", Content: "The midterm will be on October 15th.", Date: date(2024, 9, 10)},
			},
		},
		{
			ID:          103,
			Title:       "Calculus I",
			Description: "Introduction to differential and integral calculus.",
			ClassName:   "Grade 11",
			Section:     "A",
			CreatorID:   "teacher1",
			TeacherIDs:  []string{"teacher1", "teacher2"},
			Materials: []model.CourseMaterial{
				{ID: 1, Type: model.MaterialVideo, Title: "Lecture 1: Limits", URL: "#"},
			},
			StudentIDs:    []string{"student2"},
			Announcements: []model.Announcement{},
		},
	}
}

func seedAssignments() []model.Assignment {
	return []model.Assignment{
		{ID: 1, CourseID: 101, Title: "Physics Lab Report 1", Description: "Complete a full lab report on the kinematics experiment.", DueDate: ts(2024, 9, 15)},
		{ID: 2, CourseID: 101, Title: "Problem Set 1", Description: "Solve problems 1-10 from chapter 1 of the textbook.", DueDate: ts(2024, 9, 20)},
		{ID: 3, CourseID: 102, Title: "Essay: The Code of Hammurabi", Description: "Write a 5-page essay on the societal impact of the Code of Hammurabi.", DueDate: ts(2024, 9, 22)},
		{ID: 4, CourseID: 103, Title: "Calculus Worksheet 1", Description: "Complete the provided worksheet on limits and continuity.", DueDate: ts(2024, 9, 18)},
		{ID: 5, CourseID: 102, Title: "Map Quiz: Ancient Egypt", Description: "Label the major cities and geographical features of Ancient Egypt on the provided map.", DueDate: ts(2024, 9, 30)},
	}
}

func seedSubmissions() []model.Submission {
	return []model.Submission{
		{ID: 1, AssignmentID: 1, StudentID: "student1", SubmittedAt: time.Date(2024, 9, 14, 18, 30, 0, 0, time.UTC), Grade: intPtr(95), Feedback: "Excellent work, Alex! Your analysis was spot on."},
		{ID: 2, AssignmentID: 3, StudentID: "student1", SubmittedAt: time.Date(2024, 9, 21, 10, 0, 0, 0, time.UTC), Grade: intPtr(85), Feedback: "Good essay, but try to expand more on the societal impact in your conclusion."},
		{ID: 3, AssignmentID: 3, StudentID: "student2", SubmittedAt: time.Date(2024, 9, 20, 14, 0, 0, 0, time.UTC), Grade: intPtr(88), Feedback: "Well-structured and clearly written. Great job, Maria."},
		{ID: 4, AssignmentID: 4, StudentID: "student2", SubmittedAt: time.Date(2024, 9, 17, 12, 0, 0, 0, time.UTC), Grade: intPtr(100), Feedback: "Perfect score! Keep up the great work."},
	}
}

func seedFees() []model.Fee {
	return []model.Fee{
		{ID: 1, StudentID: "student1", Amount: 1500, Description: "Fall 2024 Tuition Fee", DueDate: ts(2024, 9, 1), Paid: true},
		{ID: 2, StudentID: "student1", Amount: 75, Description: "Physics Lab Fee", DueDate: ts(2024, 9, 10), Paid: false},
		{ID: 3, StudentID: "student2", Amount: 1500, Description: "Fall 2024 Tuition Fee", DueDate: ts(2024, 9, 1), Paid: true},
		{ID: 4, StudentID: "student2", Amount: 50, Description: "History Textbook Fee", DueDate: ts(2024, 9, 5), Paid: true},
	}
}

func seedFeePayments() []model.FeePayment {
	return []model.FeePayment{
		{ID: 1, FeeID: 1, Amount: 1500, PaymentDate: time.Date(2024, 8, 25, 10, 0, 0, 0, time.UTC), Method: model.PaymentCreditCard},
		{ID: 2, FeeID: 3, Amount: 1500, PaymentDate: time.Date(2024, 8, 28, 14, 30, 0, 0, time.UTC), Method: model.PaymentBankTransfer},
		{ID: 3, FeeID: 4, Amount: 50, PaymentDate: time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC), Method: model.PaymentCreditCard},
	}
}

func seedTimetables() []model.ClassTimeTable {
	return []model.ClassTimeTable{
		{
			ClassName: "Grade 10",
			Section:   "A",
			Schedule: []model.TimeTableEntry{
				{Day: "Monday", Time: "09:00 - 10:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
				{Day: "Monday", Time: "10:00 - 11:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
				{Day: "Monday", Time: "11:00 - 12:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
				{Day: "Tuesday", Time: "09:00 - 10:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
				{Day: "Tuesday", Time: "11:00 - 12:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
				{Day: "Wednesday", Time: "10:00 - 11:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
				{Day: "Thursday", Time: "09:00 - 10:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
				{Day: "Thursday", Time: "10:00 - 11:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
				{Day: "Friday", Time: "11:00 - 12:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
			},
		},
		{
			ClassName: "Grade 10",
			Section:   "B",
			Schedule: []model.TimeTableEntry{
				{Day: "Monday", Time: "09:00 - 10:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
				{Day: "Monday", Time: "10:00 - 11:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
				{Day: "Tuesday", Time: "10:00 - 11:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
				{Day: "Wednesday", Time: "09:00 - 10:00", Subject: "Physics", Teacher: "Dr. Evelyn Reed", Room: "101"},
				{Day: "Wednesday", Time: "11:00 - 12:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
				{Day: "Friday", Time: "09:00 - 10:00", Subject: "World History", Teacher: "Mr. David Chen", Room: "201"},
			},
		},
		{
			ClassName: "Grade 11",
			Section:   "A",
			Schedule: []model.TimeTableEntry{
				{Day: "Monday", Time: "13:00 - 14:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
				{Day: "Tuesday", Time: "14:00 - 15:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
				{Day: "Thursday", Time: "13:00 - 14:00", Subject: "Calculus I", Teacher: "Mr. David Chen", Room: "102"},
			},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

func intPtr(n int) *int { return &n }
