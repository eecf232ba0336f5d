package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kmalt/EMS-EventService/internal/domain"
	"github.com/kmalt/EMS-EventService/pkg/dbmetrics"
	"github.com/kmalt/EMS-EventService/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"title",
	"client_id",
	"start_date",
	"end_date",
	"room_id",
	"venue_id",
	"is_full_venue",
	"status",
	"color_code",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с событиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"title",
			"client_id",
			"start_date",
			"end_date",
			"room_id",
			"venue_id",
			"is_full_venue",
			"status",
			"color_code",
			"notes",
		).
		Values(
			event.Title,
			event.ClientID,
			event.Interval.Start,
			event.Interval.End,
			event.RoomID,
			event.VenueID,
			event.IsFullVenue,
			event.Status,
			event.ColorCode,
			event.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает событие по ID
// Внутри транзакции выполняет SELECT ... FOR UPDATE, чтобы сериализовать
// конкурентные запуски синхронизации по одному событию
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEventRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// ListByResource получает бронирования ресурса за период
// Возвращает ВСЕ строки, включая отменённые: фильтрация по статусу -
// обязанность проверки доступности, а не хранилища
func (r *Repository) ListByResource(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"title",
		"start_date",
		"end_date",
		"status",
	).
		From("events").
		OrderBy("start_date ASC")

	switch filter.ResourceKind {
	case domain.ResourceKindRoom:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.ResourceID})
	case domain.ResourceKindVenue:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": filter.ResourceID})
	default:
		return nil, fmt.Errorf("%w: ListByResource - unknown resource kind %q", ErrInvalidResource, filter.ResourceKind)
	}

	// Отбираем только строки, пересекающие период (полуоткрытые интервалы)
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_date": *filter.From})
	}

	// Блокируем строки ресурса при проверке внутри транзакции создания/редактирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.Title,
			&booking.Interval.Start,
			&booking.Interval.End,
			&booking.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByResource - scan row: %v", ErrScanRow, err)
		}
		booking.ResourceID = filter.ResourceID
		booking.ResourceKind = filter.ResourceKind
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByResource - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListWithFilter получает события с гибкой фильтрацией для календаря
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		OrderBy("start_date ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date": *filter.To})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.EventStatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Update обновляет изменяемые атрибуты события
func (r *Repository) Update(ctx context.Context, id int64, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("title", event.Title).
		Set("client_id", event.ClientID).
		Set("start_date", event.Interval.Start).
		Set("end_date", event.Interval.End).
		Set("room_id", event.RoomID).
		Set("venue_id", event.VenueID).
		Set("is_full_venue", event.IsFullVenue).
		Set("status", event.Status).
		Set("color_code", event.ColorCode).
		Set("notes", event.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	event.ID = id
	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// UpdateStatus обновляет статус события вместе с цветом отображения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus, colorCode string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("status", status).
		Set("color_code", colorCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return ErrEventNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEventRow(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.ClientID,
		&event.Interval.Start,
		&event.Interval.End,
		&event.RoomID,
		&event.VenueID,
		&event.IsFullVenue,
		&event.Status,
		&event.ColorCode,
		&event.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

// scanEvents сканирует результаты запроса в слайс событий
func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)

	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
