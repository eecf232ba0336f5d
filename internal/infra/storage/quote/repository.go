package quote

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kmalt/EMS-EventService/internal/domain"
	"github.com/kmalt/EMS-EventService/pkg/dbmetrics"
	"github.com/kmalt/EMS-EventService/pkg/psqlbuilder"
)

var quoteColumns = []string{
	"id",
	"event_id",
	"quote_number",
	"tracking_token",
	"status",
	"total",
	"valid_until",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с коммерческими предложениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предложений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое предложение
func (r *Repository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("quotes").
		Columns(
			"event_id",
			"quote_number",
			"tracking_token",
			"status",
			"total",
			"valid_until",
		).
		Values(
			quote.EventID,
			quote.QuoteNumber,
			quote.TrackingToken,
			quote.Status,
			quote.Total,
			quote.ValidUntil,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&quote.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	quote.CreatedAt = createdAt.Time
	quote.UpdatedAt = updatedAt.Time

	return quote, nil
}

// GetByID получает предложение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByTrackingToken получает предложение по публичному токену отслеживания
func (r *Repository) GetByTrackingToken(ctx context.Context, token string) (*domain.Quote, error) {
	return r.getOne(ctx, squirrel.Eq{"tracking_token": token})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(quoteColumns...).
		From("quotes").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	quote, err := scanQuoteRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan quote: %v", ErrScanRow, err)
	}

	return quote, nil
}

// ListByEventID получает все предложения события в порядке создания
// Внутри транзакции блокирует строки (FOR UPDATE) для движка синхронизации
func (r *Repository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(quoteColumns...).
		From("quotes").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEventID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEventID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// UpdateStatus обновляет статус одного предложения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("quotes").
		Set("status", status).
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
		return ErrQuoteNotFound
	}

	return nil
}

// UpdateStatusBatch обновляет статус набора предложений одним запросом
// Возвращает количество фактически обновлённых строк
func (r *Repository) UpdateStatusBatch(ctx context.Context, ids []int64, status domain.QuoteStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("quotes").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusBatch - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusBatch - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// ListExpired получает предложения с истёкшим сроком действия
// в нетерминальных статусах (кандидаты на принудительный EXPIRED)
func (r *Repository) ListExpired(ctx context.Context, now time.Time) ([]*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(quoteColumns...).
		From("quotes").
		Where(squirrel.Lt{"valid_until": now}).
		Where(squirrel.Eq{"status": []domain.QuoteStatus{
			domain.QuoteStatusDraft,
			domain.QuoteStatusSent,
			domain.QuoteStatusViewed,
		}}).
		OrderBy("valid_until ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListExpired - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExpired - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// CountCreatedInYear считает предложения, созданные в указанном году
// Используется для генерации порядкового номера предложения
func (r *Repository) CountCreatedInYear(ctx context.Context, year int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("quotes").
		Where(squirrel.Expr("EXTRACT(YEAR FROM created_at) = ?", year)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedInYear - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedInYear - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuoteRow(row rowScanner) (*domain.Quote, error) {
	var quote domain.Quote
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&quote.ID,
		&quote.EventID,
		&quote.QuoteNumber,
		&quote.TrackingToken,
		&quote.Status,
		&quote.Total,
		&quote.ValidUntil,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	quote.CreatedAt = createdAt.Time
	quote.UpdatedAt = updatedAt.Time

	return &quote, nil
}

// scanQuotes сканирует результаты запроса в слайс предложений
func scanQuotes(rows *sql.Rows) ([]*domain.Quote, error) {
	quotes := make([]*domain.Quote, 0)

	for rows.Next() {
		quote, err := scanQuoteRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanQuotes - scan row: %v", ErrScanRow, err)
		}
		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanQuotes - rows error: %v", ErrScanRow, err)
	}

	return quotes, nil
}
