package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/pkg/dbmetrics"
	"github.com/avergne/CFD-RdvService/pkg/psqlbuilder"
)

// pq error code для unique_violation
const pqUniqueViolation = "23505"

// appointmentColumns колонки таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"appointment_type",
	"appointment_date",
	"appointment_time",
	"duration_minutes",
	"status",
	"name",
	"email",
	"phone",
	"subject",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с рендез-вус
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рендез-вус
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый рендез-вус в статусе pending
//
// Частичный уникальный индекс на (appointment_type, appointment_date,
// appointment_time) WHERE status IN ('pending', 'confirmed') гарантирует,
// что из двух конкурентных вставок на один слот пройдёт ровно одна:
// проигравшая получает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"appointment_type",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"name",
			"email",
			"phone",
			"subject",
			"notes",
		).
		Values(
			appt.Type,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
			appt.Name,
			appt.Email,
			appt.Phone,
			appt.Subject,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает рендез-вус по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// FindBlocking получает все рендез-вус, занимающие слоты на указанную дату
// и тип (статусы pending и confirmed)
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания рендез-вус
// блокирует конкурентные вставки на ту же дату до конца транзакции
func (r *Repository) FindBlocking(ctx context.Context, date time.Time, typ domain.AppointmentType) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockingStatuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"appointment_type": typ,
			"appointment_date": domain.DateOnly(date),
			"status":           blockingStatuses,
		}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBlocking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBlocking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// List получает рендез-вус с фильтрацией по типу и статусу (дашборд)
// Порядок: по дате и времени по возрастанию
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("appointment_date ASC, appointment_time ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus переводит рендез-вус из статуса from в статус to
//
// Optimistic update: WHERE id AND status = from. Если статус успел
// измениться конкурентным действием сотрудника, обновление не затронет
// ни одной строки и вернётся ErrStatusConflict (или ErrAppointmentNotFound,
// если записи нет вовсе)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "запись не найдена" и "статус изменился конкурентно"
		if _, getErr := r.GetByID(ctx, id); errors.Is(getErr, ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// scanAppointment сканирует одну строку в рендез-вус
func (r *Repository) scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Type,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.Name,
		&appt.Email,
		&appt.Phone,
		&appt.Subject,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс рендез-вус
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Type,
			&appt.Date,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.Status,
			&appt.Name,
			&appt.Email,
			&appt.Phone,
			&appt.Subject,
			&appt.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
