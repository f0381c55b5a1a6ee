// Package data holds the compiled-in timetable, section catalogue and
// devotional content.
package data

import "github.com/Abdullah-819/786Times/internal/models"

// DefaultTimetable returns a fresh copy of the built-in weekly timetable.
func DefaultTimetable() models.Timetable {
	return clone(builtin)
}

var builtin = models.Timetable{
	models.SectionBSE: {
		models.Monday: {
			{ID: "bse-m1", Title: "Database Systems", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "D8", Teacher: "Ms. Afia Afzaal", Slot: "2nd Slot"},
			{ID: "bse-m2", Title: "Database Systems", Type: models.LectureTypeLab, Start: "11:00 AM", End: "01:00 PM", Venue: "CLab-9", Teacher: "Ms. Afia Afzaal", Slot: "4th Slot"},
			{ID: "bse-m3", Title: "Database Systems", Type: models.LectureTypeLab, Start: "01:00 PM", End: "02:00 PM", Venue: "CLab-9", Teacher: "Ms. Afia Afzaal", Slot: "5th Slot"},
		},
		models.Tuesday: {
			{ID: "bse-t1", Title: "Software Engineering", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "D2", Teacher: "Ms. Abida Kausar", Slot: "1st Slot"},
			{ID: "bse-t2", Title: "Fundamentals of Digital Logic Design", Type: models.LectureTypeLab, Start: "09:00 AM", End: "10:00 AM", Venue: "DLD Lab", Teacher: "Mr. Kashif", Slot: "2nd Slot"},
			{ID: "bse-t3", Title: "Data Structures", Type: models.LectureTypeLecture, Start: "11:00 AM", End: "12:00 PM", Venue: "C1.1", Teacher: "Dr. Muhammad Shoaib", Slot: "4th Slot"},
		},
		models.Wednesday: {
			{ID: "bse-w1", Title: "Calculus and Analytic Geometry", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "D4", Teacher: "Dr. Amar Rauf", Slot: "1st Slot"},
			{ID: "bse-w2", Title: "Data Structures", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "C1.4", Teacher: "Dr. Muhammad Shoaib", Slot: "2nd Slot"},
			{ID: "bse-w3", Title: "Software Engineering", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "W2", Teacher: "Ms. Abida Kausar", Slot: "3rd Slot"},
			{ID: "bse-w4", Title: "Database Systems", Type: models.LectureTypeLecture, Start: "11:00 AM", End: "12:00 PM", Venue: "D4", Teacher: "Ms. Afia Afzaal", Slot: "4th Slot"},
			{ID: "bse-w5", Title: "Fundamentals of Digital Logic Design", Type: models.LectureTypeLecture, Start: "01:00 PM", End: "02:00 PM", Venue: "D9", Teacher: "Mr. Khalid Majeed", Slot: "5th Slot"},
		},
		models.Thursday: {
			{ID: "bse-th1", Title: "Calculus and Analytic Geometry", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "C2.5", Teacher: "Dr. Amar Rauf", Slot: "1st Slot"},
			{ID: "bse-th2", Title: "Data Structures", Type: models.LectureTypeLab, Start: "09:00 AM", End: "10:00 AM", Venue: "CLab-3", Teacher: "Mr. Shehzad Ali", Slot: "2nd Slot"},
			{ID: "bse-th3", Title: "Fundamentals of Digital Logic Design", Type: models.LectureTypeLecture, Start: "11:00 AM", End: "12:00 PM", Venue: "D9", Teacher: "Mr. Khalid Majeed", Slot: "4th Slot"},
		},
		models.Friday: {},
	},
	models.SectionBCS: {
		models.Monday: {
			{ID: "bcs-m1", Title: "Computer Networks", Type: models.LectureTypeLab, Start: "09:00 AM", End: "10:00 AM", Venue: "CLab-11", Teacher: "Mr. Muhammad Usman Nasir", Slot: "2nd Slot"},
			{ID: "bcs-m2", Title: "Information Security", Type: models.LectureTypeLecture, Start: "01:00 PM", End: "02:00 PM", Venue: "C1", Teacher: "Mr. Muhammad Umar", Slot: "5th Slot"},
		},
		models.Tuesday: {},
		models.Wednesday: {
			{ID: "bcs-w1", Title: "Computer Networks", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "D9", Teacher: "Mr. Muhammad Usman Nasir", Slot: "2nd Slot"},
			{ID: "bcs-w2", Title: "Artificial Intelligence", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "D1", Teacher: "Ms. Rimsha Rafiq", Slot: "3rd Slot"},
			{ID: "bcs-w3", Title: "Multivariable Calculus", Type: models.LectureTypeLecture, Start: "11:00 AM", End: "12:00 PM", Venue: "C1.3", Teacher: "Dr. Asma", Slot: "4th Slot"},
			{ID: "bcs-w4", Title: "Information Security", Type: models.LectureTypeLecture, Start: "01:00 PM", End: "02:00 PM", Venue: "C1.1", Teacher: "Mr. Muhammad Umar", Slot: "5th Slot"},
		},
		models.Thursday: {
			{ID: "bcs-th1", Title: "Information Security", Type: models.LectureTypeLab, Start: "08:00 AM", End: "09:00 AM", Venue: "CLab-9", Teacher: "Ms. Nusra Rehman", Slot: "1st Slot"},
			{ID: "bcs-th2", Title: "Multivariable Calculus", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "B7", Teacher: "Dr. Asma", Slot: "3rd Slot"},
			{ID: "bcs-th3", Title: "Artificial Intelligence", Type: models.LectureTypeLab, Start: "11:00 AM", End: "12:00 PM", Venue: "CLab-2", Teacher: "Ms. Rimsha Rafiq", Slot: "4th Slot"},
			{ID: "bcs-th4", Title: "Artificial Intelligence", Type: models.LectureTypeLab, Start: "01:00 PM", End: "02:00 PM", Venue: "CLab-2", Teacher: "Ms. Rimsha Rafiq", Slot: "5th Slot"},
		},
		models.Friday: {
			{ID: "bcs-f1", Title: "Artificial Intelligence", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "C4", Teacher: "Ms. Rimsha Rafiq", Slot: "2nd Slot"},
			{ID: "bcs-f2", Title: "Computer Networks", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "D1", Teacher: "Mr. Muhammad Usman Nasir", Slot: "3rd Slot"},
		},
	},
	models.SectionBCSAlt: {
		models.Monday: {
			{ID: "bcs-alt-m1", Title: "Artificial Intelligence", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "B13", Teacher: "Mr. Manzar Abbas", Slot: "3rd Slot"},
			{ID: "bcs-alt-m2", Title: "Information Security", Type: models.LectureTypeLab, Start: "11:00 AM", End: "12:00 PM", Venue: "CLab-4", Teacher: "Ms. Nusra Rehman", Slot: "4th Slot"},
			{ID: "bcs-alt-m3", Title: "Information Security", Type: models.LectureTypeLab, Start: "01:00 PM", End: "02:00 PM", Venue: "CLab-4", Teacher: "Ms. Nusra Rehman", Slot: "5th Slot"},
		},
		models.Tuesday: {
			{ID: "bcs-alt-t1", Title: "Computer Networks", Type: models.LectureTypeLab, Start: "08:00 AM", End: "09:00 AM", Venue: "Networking Lab", Teacher: "Ms. Sameen Fatima", Slot: "1st Slot"},
			{ID: "bcs-alt-t2", Title: "Information Security", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "C1", Teacher: "Mr. Muhammad Umar", Slot: "3rd Slot"},
			{ID: "bcs-alt-t3", Title: "Artificial Intelligence", Type: models.LectureTypeLecture, Start: "11:00 AM", End: "12:00 PM", Venue: "D1", Teacher: "Mr. Manzar Abbas", Slot: "4th Slot"},
		},
		models.Wednesday: {
			{ID: "bcs-alt-w1", Title: "Information Security", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "C5", Teacher: "Mr. Muhammad Umar", Slot: "1st Slot"},
			{ID: "bcs-alt-w2", Title: "Multivariable Calculus", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "D1", Teacher: "Dr. Misbah Arshad", Slot: "2nd Slot"},
			{ID: "bcs-alt-w3", Title: "Computer Networks", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "B3", Teacher: "Ms. Sameen Fatima", Slot: "3rd Slot"},
		},
		models.Thursday: {
			{ID: "bcs-alt-th1", Title: "Artificial Intelligence", Type: models.LectureTypeLab, Start: "08:00 AM", End: "09:00 AM", Venue: "CLab-2", Teacher: "Mr. Manzar Abbas", Slot: "1st Slot"},
			{ID: "bcs-alt-th2", Title: "Multivariable Calculus", Type: models.LectureTypeLecture, Start: "10:00 AM", End: "11:00 AM", Venue: "W4", Teacher: "Dr. Misbah Arshad", Slot: "3rd Slot"},
			{ID: "bcs-alt-th3", Title: "Computer Networks", Type: models.LectureTypeLecture, Start: "01:00 PM", End: "02:00 PM", Venue: "W4", Teacher: "Ms. Sameen Fatima", Slot: "5th Slot"},
		},
		models.Friday: {},
	},
}

func clone(src models.Timetable) models.Timetable {
	out := make(models.Timetable, len(src))
	for section, week := range src {
		days := make(models.WeekSchedule, len(week))
		for day, lectures := range week {
			days[day] = append([]models.Lecture(nil), lectures...)
		}
		out[section] = days
	}
	return out
}
