package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookmanager-backend/internal/domains/book"
	"bookmanager-backend/pkg/database"
)

// postgresRepository implements book.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new book and returns the generated row.
func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO book (title, genre, published_year, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, genre, published_year, author_id
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Genre, b.PublishedYear, b.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.Genre,
		&created.PublishedYear,
		&created.AuthorID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a book by id.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `
        SELECT id, title, genre, published_year, author_id
        FROM book
        WHERE id = $1
    `

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&b.PublishedYear,
		&b.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// List builds the filtered query. Omitted filters add no constraint. SortBy
// and SortOrder were validated against the allow-list at the boundary; the
// switch below keeps unknown values out of the ORDER BY clause regardless.
func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, title, genre, published_year, author_id
        FROM book
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Title+"%")
		argPos++
	}

	if filter.Genre != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND genre = $%d", argPos))
		args = append(args, filter.Genre)
		argPos++
	}

	if filter.AuthorID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	sortColumn := "title"
	switch filter.SortBy {
	case "published_year":
		sortColumn = "published_year"
	case "author_id":
		sortColumn = "author_id"
	}

	sortOrder := "ASC"
	if filter.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortOrder))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Genre, &b.PublishedYear, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// Update rewrites all fields of a book.
func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE book
        SET title = $1, genre = $2, published_year = $3, author_id = $4
        WHERE id = $5
        RETURNING id, title, genre, published_year, author_id
    `

	var updated book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Genre, b.PublishedYear, b.AuthorID, b.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Genre,
		&updated.PublishedYear,
		&updated.AuthorID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

// Delete removes a book by id.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM book WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// BulkInsert commits all rows or none of them. The author-id snapshot is
// read inside the same transaction as the inserts; the book.author_id
// foreign key re-validates each row at insert time, so an author deleted by
// a concurrent request still fails the batch instead of leaving a dangling
// reference.
func (r *postgresRepository) BulkInsert(ctx context.Context, rows []book.ImportRow) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return insertBooks(ctx, tx, rows)
	})
}

// insertBooks runs the snapshot, validate and insert sequence against tx.
// Rows are processed in input order and the first failure wins; the returned
// error makes the surrounding transaction roll back everything staged so far.
func insertBooks(ctx context.Context, tx pgx.Tx, rows []book.ImportRow) error {
	authorIDs, err := snapshotAuthorIDs(ctx, tx)
	if err != nil {
		return err
	}

	insertQuery := `
        INSERT INTO book (title, genre, published_year, author_id)
        VALUES ($1, $2, $3, $4)
    `

	for _, row := range rows {
		if rowErr := book.ValidateImportRow(row, authorIDs); rowErr != nil {
			return rowErr
		}

		if _, err := tx.Exec(ctx, insertQuery, row.Title, row.Genre, row.PublishedYear, row.AuthorID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return &book.RowError{
					Row:     row.Row,
					Field:   "author_id",
					Message: fmt.Sprintf("author ID %d does not exist", row.AuthorID),
				}
			}
			return fmt.Errorf("failed to insert book at row %d: %w", row.Row, err)
		}
	}

	return nil
}

func snapshotAuthorIDs(ctx context.Context, tx pgx.Tx) (map[int64]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM author`)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot author ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author ids: %w", err)
	}

	return ids, nil
}
