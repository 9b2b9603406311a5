package model

import (
	"errors"
	"time"
)

// Draft validation errors.
var (
	ErrNegativeFee  = errors.New("fee components must be non-negative")
	ErrEmptyRoster  = errors.New("student roster must not be empty")
	ErrBadLessonDay = errors.New("lesson date is required")
)

// StudentDescriptor describes one student in a reservation request before
// anything is persisted.
type StudentDescriptor struct {
	Name       string `json:"name"`
	Height     int    `json:"height"`
	Weight     int    `json:"weight"`
	FootSize   int    `json:"foot_size"`
	Experience string `json:"experience"`
}

// ReservationDraft is the transient reservation produced by prepare. It is
// never stored durably; it travels through the pending payment store until
// the gateway approves or the TTL expires.
type ReservationDraft struct {
	UserID          uint64              `json:"user_id"`
	TeamID          uint64              `json:"team_id"`
	InstructorID    *uint64             `json:"instructor_id,omitempty"`
	Students        []StudentDescriptor `json:"students"`
	LessonDate      time.Time           `json:"lesson_date"`
	StartTime       string              `json:"start_time"`
	Duration        int                 `json:"duration"`
	LessonType      string              `json:"lesson_type"`
	BasicFee        int                 `json:"basic_fee"`
	DesignatedFee   int                 `json:"designated_fee"`
	PeopleOptionFee int                 `json:"people_option_fee"`
	LevelOptionFee  int                 `json:"level_option_fee"`
}

// NewReservationDraft builds a validated draft. Fee components must be
// non-negative, the roster non-empty and a lesson date present; the total
// is always the exact sum of the four components.
func NewReservationDraft(userID, teamID uint64, instructorID *uint64, students []StudentDescriptor,
	lessonDate time.Time, startTime string, duration int, lessonType string,
	basicFee, designatedFee, peopleOptionFee, levelOptionFee int) (ReservationDraft, error) {

	if basicFee < 0 || designatedFee < 0 || peopleOptionFee < 0 || levelOptionFee < 0 {
		return ReservationDraft{}, ErrNegativeFee
	}
	if len(students) == 0 {
		return ReservationDraft{}, ErrEmptyRoster
	}
	if lessonDate.IsZero() {
		return ReservationDraft{}, ErrBadLessonDay
	}
	return ReservationDraft{
		UserID:          userID,
		TeamID:          teamID,
		InstructorID:    instructorID,
		Students:        students,
		LessonDate:      lessonDate,
		StartTime:       startTime,
		Duration:        duration,
		LessonType:      lessonType,
		BasicFee:        basicFee,
		DesignatedFee:   designatedFee,
		PeopleOptionFee: peopleOptionFee,
		LevelOptionFee:  levelOptionFee,
	}, nil
}

// Breakdown returns the fee breakdown carried by the draft.
func (d ReservationDraft) Breakdown() LessonPaymentBreakdown {
	return LessonPaymentBreakdown{
		BasicFee:        d.BasicFee,
		DesignatedFee:   d.DesignatedFee,
		PeopleOptionFee: d.PeopleOptionFee,
		LevelOptionFee:  d.LevelOptionFee,
	}
}

// TotalFee is the amount quoted to the gateway: the sum of the four fee
// components.
func (d ReservationDraft) TotalFee() int { return d.Breakdown().Total() }
