package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"questboard/backend/apperror"
	"questboard/backend/models"
	"questboard/backend/repository"
)

type BoardService struct {
	boards *repository.BoardRepository
}

func NewBoardService(boards *repository.BoardRepository) *BoardService {
	if boards == nil {
		panic("BoardRepository cannot be nil for BoardService")
	}
	return &BoardService{boards: boards}
}

func checkContent(content string) error {
	if content == "" {
		return apperror.NewValidation("content is required", nil)
	}
	if utf8.RuneCountInString(content) > models.MaxBoardContentLength {
		return apperror.NewValidation(fmt.Sprintf("content must be at most %d characters", models.MaxBoardContentLength), nil)
	}
	return nil
}

func (s *BoardService) Create(ctx context.Context, userID uint, content string) (*models.Board, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	post := &models.Board{UserID: userID, Content: content}
	if err := s.boards.Create(ctx, post); err != nil {
		return nil, mapRepoError(err, "board post")
	}
	return post, nil
}

// List returns one page of posts, newest first, with author names.
func (s *BoardService) List(ctx context.Context, page, pageSize int) ([]models.BoardView, int64, error) {
	posts, total, err := s.boards.ListWithAuthor(ctx, page, pageSize)
	if err != nil {
		return nil, 0, mapRepoError(err, "board post")
	}
	return posts, total, nil
}

func (s *BoardService) Update(ctx context.Context, id uint, patch models.BoardPatch) (*models.Board, error) {
	if patch.Content != nil {
		if err := checkContent(*patch.Content); err != nil {
			return nil, err
		}
	}
	post, err := s.boards.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, "board post")
	}
	return post, nil
}

func (s *BoardService) Delete(ctx context.Context, id uint) (*models.Board, error) {
	post, err := s.boards.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "board post")
	}
	return post, nil
}
