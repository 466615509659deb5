package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"bookmanager-backend/internal/domains/book"
)

// importService implements book.ImportService. Parsing happens here;
// validation and the atomic insert happen in the repository, inside one
// transaction.
type importService struct {
	repo book.Repository
}

// NewImportService creates the bulk import pipeline.
func NewImportService(repo book.Repository) book.ImportService {
	return &importService{repo: repo}
}

// Import runs the pipeline: parse by declared content type, reject empty or
// oversized batches, then insert all rows or none of them.
func (s *importService) Import(ctx context.Context, data []byte, contentType string) (int, error) {
	var rows []book.ImportRow
	var err error

	switch contentType {
	case book.ContentTypeJSON:
		rows, err = parseJSONRows(data)
	case book.ContentTypeCSV:
		rows, err = parseCSVRows(data)
	default:
		return 0, book.ErrUnsupportedFileType
	}
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, book.ErrEmptyImport
	}
	if len(rows) > book.MaxImportRows {
		return 0, book.ErrTooManyRows
	}

	log.Info().
		Int("total_rows", len(rows)).
		Str("content_type", contentType).
		Msg("Starting bulk book import")

	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		log.Warn().Err(err).Msg("Bulk import aborted, batch rolled back")
		return 0, err
	}

	log.Info().Int("imported", len(rows)).Msg("Bulk import committed")
	return len(rows), nil
}

// parseJSONRows decodes a JSON array of row objects. Any decode error fails
// the whole upload before a single row is touched.
func parseJSONRows(data []byte) ([]book.ImportRow, error) {
	var rows []book.ImportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, book.ErrInvalidJSON
	}

	for i := range rows {
		rows[i].Row = i + 1
	}

	return rows, nil
}

// parseCSVRows decodes a header-driven CSV table. The header must name the
// title, genre, published_year and author_id columns; extra columns are
// ignored. Unparseable numeric cells are a parse failure, not a row
// validation failure.
func parseCSVRows(data []byte) ([]book.ImportRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, book.ErrInvalidCSV
	}

	if len(records) == 0 {
		return []book.ImportRow{}, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, required := range []string{"title", "genre", "published_year", "author_id"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", book.ErrInvalidCSV, required)
		}
	}

	rows := make([]book.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 1

		year, err := strconv.Atoi(strings.TrimSpace(record[columns["published_year"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: published_year is not an integer", book.ErrInvalidCSV, rowNum)
		}

		authorID, err := strconv.ParseInt(strings.TrimSpace(record[columns["author_id"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: author_id is not an integer", book.ErrInvalidCSV, rowNum)
		}

		rows = append(rows, book.ImportRow{
			Row:           rowNum,
			Title:         strings.TrimSpace(record[columns["title"]]),
			Genre:         strings.TrimSpace(record[columns["genre"]]),
			PublishedYear: year,
			AuthorID:      authorID,
		})
	}

	return rows, nil
}
