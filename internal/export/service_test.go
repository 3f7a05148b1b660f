package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

type stubRepo struct {
	records []*entity.ArtistRecord
}

func (s *stubRepo) Create(context.Context, *entity.ArtistRecord) (*entity.ArtistRecord, error) {
	panic("not used")
}

func (s *stubRepo) GetByID(context.Context, uuid.UUID) (*entity.ArtistRecord, error) {
	panic("not used")
}

func (s *stubRepo) List(_ context.Context, _ string, limit, offset int) ([]*entity.ArtistRecord, int, error) {
	if offset >= len(s.records) {
		return nil, len(s.records), nil
	}
	end := offset + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[offset:end], len(s.records), nil
}

func (s *stubRepo) UpdateProfile(context.Context, uuid.UUID, *entity.ArtistProfile, constants.ExtractionStatus) (*entity.ArtistRecord, error) {
	panic("not used")
}

func (s *stubRepo) Delete(context.Context, uuid.UUID) error {
	panic("not used")
}

func TestExportArtistsXLSX(t *testing.T) {
	guru := "Ustad Ali Khan"
	email := "jane@example.com"
	repo := &stubRepo{records: []*entity.ArtistRecord{
		{
			ID:               uuid.New(),
			ArtistName:       "Jane Doe",
			OriginalFilename: "jane_doe.pdf",
			Status:           constants.StatusCompleted,
			Profile: &entity.ArtistProfile{
				ArtistName: "Jane Doe",
				GuruName:   &guru,
				ContactDetails: &entity.ContactDetails{
					ContactInfo: entity.ContactInfo{Email: &email},
				},
				Achievements: []entity.Achievement{
					{Type: "recognition", Title: "National Award"},
					{Type: "recognition", Title: "Saptak Festival"},
				},
			},
		},
		{
			ID:         uuid.New(),
			ArtistName: "Ravi Shankar",
			Status:     constants.StatusEnhanced,
		},
	}}

	data, err := NewService(repo, nil).ExportArtistsXLSX(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Artists")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Artist Name", rows[0][0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Ustad Ali Khan", rows[1][1])
	assert.Equal(t, "jane@example.com", rows[1][4])
	assert.Equal(t, "National Award; Saptak Festival", rows[1][6])
	assert.Equal(t, "Ravi Shankar", rows[2][0])
}
