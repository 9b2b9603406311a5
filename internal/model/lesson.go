package model

import "time"

// Lesson is the durable record of a booked lesson. It is created only when
// the gateway approves the payment; prepare never writes durable rows, so
// abandoned or failed flows leave no lesson behind.
//
// Fields:
//  ID           – primary key identifier.
//  TeamID       – team providing the lesson.
//  InstructorID – designated instructor, nil when none was requested.
//  UserID       – user who booked and paid for the lesson.
//  Status       – booking state (CREATED, CANCELLED).
//  CreatedAt    – creation timestamp.
type Lesson struct {
	ID           uint64    // lessons.id
	TeamID       uint64    // lessons.team_id
	InstructorID *uint64   // lessons.instructor_id (nullable)
	UserID       uint64    // lessons.user_id
	Status       string    // lessons.status
	CreatedAt    time.Time // lessons.created_at
}

// Lesson status values.
const (
	LessonStatusCreated   = "CREATED"
	LessonStatusCancelled = "CANCELLED"
)

// LessonDetails holds the schedule facts of a lesson, one-to-one with
// Lesson. The lesson date drives the refund tier on cancellation.
type LessonDetails struct {
	LessonID     uint64    // lesson_details.lesson_id (PK, FK to lessons)
	LessonDate   time.Time // lesson_details.lesson_date (date only)
	StartTime    string    // lesson_details.start_time (HH:MM)
	Duration     int       // lesson_details.duration in hours
	LessonType   string    // lesson_details.lesson_type
	StudentCount int       // lesson_details.student_count
}

// StudentRosterEntry is one student attending a lesson. A lesson has one
// roster entry per student descriptor supplied at prepare time.
type StudentRosterEntry struct {
	ID         uint64 // student_roster.id
	LessonID   uint64 // student_roster.lesson_id
	Name       string // student_roster.name
	Height     int    // student_roster.height in cm
	Weight     int    // student_roster.weight in kg
	FootSize   int    // student_roster.foot_size in mm
	Experience string // student_roster.experience level label
}

// LessonPaymentBreakdown records the four fee components of a lesson's
// price, one-to-one with Lesson. The components must sum to the
// TotalAmount recorded on the associated Payment.
type LessonPaymentBreakdown struct {
	LessonID        uint64 // lesson_payment_breakdown.lesson_id (PK, FK)
	BasicFee        int    // lesson_payment_breakdown.basic_fee
	DesignatedFee   int    // lesson_payment_breakdown.designated_fee
	PeopleOptionFee int    // lesson_payment_breakdown.people_option_fee
	LevelOptionFee  int    // lesson_payment_breakdown.level_option_fee
}

// Total returns the sum of the four fee components.
func (b LessonPaymentBreakdown) Total() int {
	return b.BasicFee + b.DesignatedFee + b.PeopleOptionFee + b.LevelOptionFee
}
