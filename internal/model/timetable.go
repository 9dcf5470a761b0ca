package model

// TimeTableEntry is one scheduled period in a class week.
type TimeTableEntry struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// ClassTimeTable is the weekly schedule for a (class name, section) pair.
// Timetables are static fixture data and read-only.
type ClassTimeTable struct {
	ClassName string           `json:"class_name"`
	Section   string           `json:"section"`
	Schedule  []TimeTableEntry `json:"schedule"`
}
