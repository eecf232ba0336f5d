package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kmalt/EMS-EventService/internal/domain"
	"github.com/kmalt/EMS-EventService/pkg/dbmetrics"
	"github.com/kmalt/EMS-EventService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий залов и площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoom получает зал по ID
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"name",
		"min_capacity",
		"max_capacity",
		"created_at",
		"updated_at",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.VenueID,
		&room.Name,
		&room.MinCapacity,
		&room.MaxCapacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// GetVenue получает площадку по ID
func (r *Repository) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenue - build select query: %v", ErrBuildQuery, err)
	}

	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenue - scan venue: %v", ErrScanRow, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

// GetLocation получает сводную информацию о ресурсе любого типа
func (r *Repository) GetLocation(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Location, error) {
	switch kind {
	case domain.ResourceKindRoom:
		room, err := r.GetRoom(ctx, id)
		if err != nil {
			return nil, err
		}
		return &domain.Location{
			Kind:     domain.ResourceKindRoom,
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.MaxCapacity,
		}, nil

	case domain.ResourceKindVenue:
		venue, err := r.GetVenue(ctx, id)
		if err != nil {
			return nil, err
		}
		return &domain.Location{
			Kind:     domain.ResourceKindVenue,
			ID:       venue.ID,
			Name:     venue.Name,
			Capacity: venue.Capacity,
			Address:  venue.Address,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
