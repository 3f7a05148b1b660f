// Package export produces XLSX workbooks of stored artist records.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/repository"
)

// exportPageSize bounds one repository read while paging through records.
const exportPageSize = 500

type Service struct {
	repo   repository.ArtistRepository
	logger *slog.Logger
}

func NewService(repo repository.ArtistRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportArtistsXLSX returns a workbook of all records matching search (all
// records when search is empty).
func (s *Service) ExportArtistsXLSX(ctx context.Context, search string) ([]byte, error) {
	start := time.Now()

	var all []*entity.ArtistRecord
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.repo.List(ctx, search, exportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("query artists: %w", err)
		}
		all = append(all, page...)
		if offset+exportPageSize >= total || len(page) == 0 {
			break
		}
	}

	f := excelize.NewFile()
	const sheet = "Artists"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Artist Name",
		"Guru",
		"Gharana",
		"Phone",
		"Email",
		"Website",
		"Achievements",
		"Summary",
		"Confidence",
		"Status",
		"Source File",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range all {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.ArtistName)
		p := rec.Profile
		if p != nil {
			write(2, deref(p.GuruName))
			if p.GharanaDetails != nil {
				write(3, deref(p.GharanaDetails.GharanaName))
			}
			if p.ContactDetails != nil {
				write(4, deref(p.ContactDetails.ContactInfo.Phone))
				write(5, deref(p.ContactDetails.ContactInfo.Email))
				write(6, deref(p.ContactDetails.ContactInfo.Website))
			}
			write(7, achievementTitles(p.Achievements))
			write(8, deref(p.Summary))
			write(9, deref(p.ExtractionConfidence))
		}
		write(10, string(rec.Status))
		write(11, rec.OriginalFilename)
		write(12, rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.done",
		"rows", len(all),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func achievementTitles(in []entity.Achievement) string {
	if len(in) == 0 {
		return ""
	}
	titles := make([]string, 0, len(in))
	for _, a := range in {
		titles = append(titles, a.Title)
	}
	return strings.Join(titles, "; ")
}
