package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieGenreRepository interface {
	ReplaceForMovie(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error
	FindGenresByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error)
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

// ReplaceForMovie swaps the movie's genre set atomically.
func (r *movieGenreRepository) ReplaceForMovie(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin movie genre replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		r.log.Error("Failed to clear movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("clear genres for movie %s: %w", movieID.String(), err)
	}

	now := time.Now()
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_genres (id, movie_id, genre_id, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New(), movieID, genreID, now,
		)
		if err != nil {
			r.log.Error("Failed to link movie genre",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("link movie %s genre %s: %w", movieID.String(), genreID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit movie genre replace: %w", err)
	}

	return nil
}

func (r *movieGenreRepository) FindGenresByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.created_at, g.updated_at
		FROM genres g
		INNER JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1 AND g.deleted_at IS NULL
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find genres by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find genres by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt, &genre.UpdatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *movieGenreRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM movie_genres WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete genres for movie %s: %w", movieID.String(), err)
	}

	return nil
}
