package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/gen/ent"
	"github.com/arnav-deshpande/kalakaar/gen/ent/artist"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

// ArtistRepository is the persistence surface the pipeline and the HTTP
// layer depend on.
type ArtistRepository interface {
	Create(ctx context.Context, rec *entity.ArtistRecord) (*entity.ArtistRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ArtistRecord, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.ArtistRecord, int, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile *entity.ArtistProfile, status constants.ExtractionStatus) (*entity.ArtistRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type artistRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewArtistRepository(client *ent.Client, logger *slog.Logger) ArtistRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &artistRepository{client: client, logger: logger}
}

func (r *artistRepository) Create(ctx context.Context, rec *entity.ArtistRecord) (*entity.ArtistRecord, error) {
	create := r.client.Artist.Create().
		SetArtistName(rec.ArtistName).
		SetOriginalFilename(rec.OriginalFilename).
		SetExtractedText(rec.ExtractedText).
		SetStatus(string(rec.Status)).
		SetExtractionMethod(rec.Method).
		SetProfile(rec.Profile)
	if rec.Profile != nil {
		create.SetNillableGuruName(rec.Profile.GuruName)
		if rec.Profile.GharanaDetails != nil {
			create.SetNillableGharanaName(rec.Profile.GharanaDetails.GharanaName)
		}
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("repo.artist.create_failed", "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to create artist", err)
	}
	r.logger.Info("repo.artist.created", "artist_id", row.ID, "artist_name", row.ArtistName)
	return toRecord(row), nil
}

func (r *artistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ArtistRecord, error) {
	row, err := r.client.Artist.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
		}
		r.logger.Error("repo.artist.get_failed", "artist_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to load artist", err)
	}
	return toRecord(row), nil
}

// List returns a page of records plus the total match count. An empty
// search returns everything, newest first. Search covers the denormalized
// name columns, not the whole profile document.
func (r *artistRepository) List(ctx context.Context, search string, limit, offset int) ([]*entity.ArtistRecord, int, error) {
	q := r.client.Artist.Query()
	if search != "" {
		q = q.Where(artist.Or(
			artist.ArtistNameContainsFold(search),
			artist.GuruNameContainsFold(search),
			artist.GharanaNameContainsFold(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("repo.artist.count_failed", "error", err)
		return nil, 0, common.NewAppError("DB_ERROR", "failed to count artists", err)
	}

	rows, err := q.
		Order(ent.Desc(artist.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		r.logger.Error("repo.artist.list_failed", "error", err)
		return nil, 0, common.NewAppError("DB_ERROR", "failed to list artists", err)
	}

	out := make([]*entity.ArtistRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out, total, nil
}

func (r *artistRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profile *entity.ArtistProfile, status constants.ExtractionStatus) (*entity.ArtistRecord, error) {
	update := r.client.Artist.UpdateOneID(id).
		SetProfile(profile).
		SetStatus(string(status))
	if profile != nil {
		update.SetArtistName(profile.ArtistName)
		update.ClearGuruName()
		update.SetNillableGuruName(profile.GuruName)
		update.ClearGharanaName()
		if profile.GharanaDetails != nil {
			update.SetNillableGharanaName(profile.GharanaDetails.GharanaName)
		}
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
		}
		r.logger.Error("repo.artist.update_failed", "artist_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to update artist", err)
	}
	r.logger.Info("repo.artist.updated", "artist_id", row.ID, "status", row.Status)
	return toRecord(row), nil
}

func (r *artistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Artist.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
		}
		r.logger.Error("repo.artist.delete_failed", "artist_id", id, "error", err)
		return common.NewAppError("DB_ERROR", "failed to delete artist", err)
	}
	r.logger.Info("repo.artist.deleted", "artist_id", id)
	return nil
}

func toRecord(row *ent.Artist) *entity.ArtistRecord {
	return &entity.ArtistRecord{
		ID:               row.ID,
		ArtistName:       row.ArtistName,
		OriginalFilename: row.OriginalFilename,
		ExtractedText:    row.ExtractedText,
		Status:           constants.ExtractionStatus(row.Status),
		Method:           row.ExtractionMethod,
		Profile:          row.Profile,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
