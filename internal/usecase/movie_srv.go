package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/request"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest, titleSearch *string, status *string) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error

	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest, titleSearch *string, status *string) (*response.PaginatedResponse[response.MovieResponse], error) {
	var statusFilter *entity.MovieStatus
	if status != nil && *status != "" {
		mv := entity.MovieStatus(*status)
		statusFilter = &mv
	}

	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset(), titleSearch, statusFilter)
	if err != nil {
		s.log.Error("Failed to get movies from repository", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx, titleSearch, statusFilter)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie, s.genreNames(ctx, movie.ID))
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, apperr.New(apperr.KindNotFound, "movie %s not found", movieID)
	}

	resp := response.MovieToResponse(movie, s.genreNames(ctx, movie.ID))
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	releaseDate, err := parseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.parseGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Description:       req.Description,
		PosterURL:         req.PosterURL,
		ReleaseDate:       releaseDate,
		DurationInMinutes: req.DurationInMinutes,
		Status:            entity.MovieStatus(req.Status),
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	if len(genreIDs) > 0 {
		if err := s.repo.MovieGenre.ReplaceForMovie(ctx, movie.ID, genreIDs); err != nil {
			s.log.Error("Failed to attach genres", zap.Error(err), zap.String("movie_id", movie.ID.String()))
			return nil, fmt.Errorf("attach genres to movie %s: %w", movie.ID.String(), err)
		}
	}

	s.log.Info("Movie created", zap.String("movie_id", movie.ID.String()), zap.String("title", movie.Title))

	resp := response.MovieToResponse(movie, s.genreNames(ctx, movie.ID))
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, apperr.New(apperr.KindNotFound, "movie %s not found", movieID)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.ReleaseDate != nil {
		releaseDate, err := parseDate(*req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		movie.ReleaseDate = releaseDate
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.Status != nil {
		movie.Status = entity.MovieStatus(*req.Status)
	}

	movie.UpdatedAt = time.Now().UTC()
	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("update movie %s: %w", movieID, err)
	}

	if req.GenreIDs != nil {
		genreIDs, err := s.parseGenreIDs(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.MovieGenre.ReplaceForMovie(ctx, movie.ID, genreIDs); err != nil {
			return nil, fmt.Errorf("replace genres for movie %s: %w", movieID, err)
		}
	}

	resp := response.MovieToResponse(movie, s.genreNames(ctx, movie.ID))
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return apperr.New(apperr.KindNotFound, "movie %s not found", movieID)
	}

	if err := s.repo.MovieGenre.DeleteByMovieID(ctx, id); err != nil {
		return fmt.Errorf("detach genres from movie %s: %w", movieID, err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie %s: %w", movieID, err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return genreResponses, nil
}

func (s *movieService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	taken, err := s.repo.Genre.ExistsName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check genre name %s: %w", req.Name, err)
	}
	if taken {
		return nil, apperr.New(apperr.KindConflict, "genre %s already exists", req.Name)
	}

	now := time.Now().UTC()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *movieService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid genre ID format %s", genreID)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get genre %s: %w", genreID, err)
	}
	if genre == nil {
		return apperr.New(apperr.KindNotFound, "genre %s not found", genreID)
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("genre_id", genreID))
		return fmt.Errorf("delete genre %s: %w", genreID, err)
	}

	return nil
}

// parseGenreIDs validates that every referenced genre exists.
func (s *movieService) parseGenreIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	genreIDs := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		genreUUID, err := uuid.Parse(value)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid genre ID format %s", value)
		}
		genre, err := s.repo.Genre.FindByID(ctx, genreUUID)
		if err != nil {
			return nil, fmt.Errorf("get genre %s: %w", value, err)
		}
		if genre == nil {
			return nil, apperr.New(apperr.KindNotFound, "genre %s not found", value)
		}
		genreIDs = append(genreIDs, genreUUID)
	}
	return genreIDs, nil
}

func (s *movieService) genreNames(ctx context.Context, movieID uuid.UUID) []string {
	genres, err := s.repo.MovieGenre.FindGenresByMovieID(ctx, movieID)
	if err != nil {
		s.log.Warn("Failed to get genres for movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil
	}
	names := make([]string, len(genres))
	for i, genre := range genres {
		names[i] = genre.Name
	}
	return names
}
