package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/skilodge/lesson-booking/internal/model"
)

// LessonRepo provides data access to the lessons, lesson_details and
// student_roster tables. All writes run inside a caller-supplied
// transaction so the approve flow can commit them as one unit; the caller
// must commit or roll back. Timestamps are UTC throughout.
type LessonRepo struct {
	db *sql.DB
}

// NewLessonRepo returns a new LessonRepo bound to the provided database.
func NewLessonRepo(db *sql.DB) *LessonRepo { return &LessonRepo{db: db} }

// CreateTx inserts a lesson row and sets l.ID from the generated key.
func (r *LessonRepo) CreateTx(ctx context.Context, tx *sql.Tx, l *model.Lesson) error {
	const q = `INSERT INTO lessons (team_id, instructor_id, user_id, status) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, l.TeamID, l.InstructorID, l.UserID, l.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// CreateDetailsTx inserts the one-to-one lesson_details row. The lesson
// date is stored as a civil date.
func (r *LessonRepo) CreateDetailsTx(ctx context.Context, tx *sql.Tx, d *model.LessonDetails) error {
	const q = `INSERT INTO lesson_details (lesson_id, lesson_date, start_time, duration, lesson_type, student_count)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		d.LessonID, d.LessonDate.UTC().Format("2006-01-02"), d.StartTime, d.Duration, d.LessonType, d.StudentCount)
	return err
}

// CreateRosterTx bulk-inserts one student_roster row per entry. Passing an
// empty slice has no effect and returns nil.
func (r *LessonRepo) CreateRosterTx(ctx context.Context, tx *sql.Tx, entries []model.StudentRosterEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `INSERT INTO student_roster (lesson_id, name, height, weight, foot_size, experience) VALUES `
	args := make([]interface{}, 0, len(entries)*6)
	for i, e := range entries {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?)"
		args = append(args, e.LessonID, e.Name, e.Height, e.Weight, e.FootSize, e.Experience)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// DetailsByLessonID loads the schedule facts of a lesson. Returns
// ErrLessonNotFound when no details row exists.
func (r *LessonRepo) DetailsByLessonID(ctx context.Context, lessonID uint64) (*model.LessonDetails, error) {
	const q = `SELECT lesson_id, lesson_date, start_time, duration, lesson_type, student_count
	           FROM lesson_details WHERE lesson_id = ?`
	var d model.LessonDetails
	var day string
	err := r.db.QueryRowContext(ctx, q, lessonID).
		Scan(&d.LessonID, &day, &d.StartTime, &d.Duration, &d.LessonType, &d.StudentCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	// lesson_date is a DATE column; parseTime only converts DATETIME.
	d.LessonDate, err = time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// MarkCancelledTx flips a lesson's status to CANCELLED. The row itself is
// retained for audit and history queries.
func (r *LessonRepo) MarkCancelledTx(ctx context.Context, tx *sql.Tx, lessonID uint64) error {
	const q = `UPDATE lessons SET status = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, model.LessonStatusCancelled, lessonID)
	return err
}

// PaymentHistory is one row of a payment history projection, shared by the
// user, owner and team views.
type PaymentHistory struct {
	LessonID     uint64 `json:"lesson_id"`
	TeamID       uint64 `json:"team_id"`
	TeamName     string `json:"team_name"`
	LessonDate   string `json:"lesson_date"`
	StudentCount int    `json:"student_count"`
	TotalAmount  int    `json:"total_amount"`
	ChargeID     int    `json:"charge_id"`
	PaymentDate  string `json:"payment_date"`
	Status       string `json:"status"`
}

const historySelect = `
	SELECT l.id, t.id, t.name, DATE_FORMAT(ld.lesson_date, '%Y-%m-%d'), ld.student_count,
	       p.total_amount, p.charge_id, DATE_FORMAT(p.payment_date, '%Y-%m-%d'), l.status
	FROM lessons l
	JOIN teams t           ON t.id = l.team_id
	JOIN lesson_details ld ON ld.lesson_id = l.id
	JOIN payments p        ON p.lesson_id = l.id`

// UserPaymentHistories lists payments for lessons the given user booked,
// newest first.
func (r *LessonRepo) UserPaymentHistories(ctx context.Context, userID uint64) ([]PaymentHistory, error) {
	return r.histories(ctx, historySelect+` WHERE l.user_id = ? ORDER BY p.id DESC`, userID)
}

// OwnerPaymentHistories lists payments across every team the given owner
// manages, newest first.
func (r *LessonRepo) OwnerPaymentHistories(ctx context.Context, ownerID uint64) ([]PaymentHistory, error) {
	return r.histories(ctx, historySelect+` WHERE t.owner_id = ? ORDER BY p.id DESC`, ownerID)
}

// TeamPaymentHistories lists payments for a single team, newest first.
// Ownership of the team is checked by the caller.
func (r *LessonRepo) TeamPaymentHistories(ctx context.Context, teamID uint64) ([]PaymentHistory, error) {
	return r.histories(ctx, historySelect+` WHERE t.id = ? ORDER BY p.id DESC`, teamID)
}

func (r *LessonRepo) histories(ctx context.Context, q string, arg uint64) ([]PaymentHistory, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PaymentHistory{}
	for rows.Next() {
		var h PaymentHistory
		if err := rows.Scan(&h.LessonID, &h.TeamID, &h.TeamName, &h.LessonDate, &h.StudentCount,
			&h.TotalAmount, &h.ChargeID, &h.PaymentDate, &h.Status); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
