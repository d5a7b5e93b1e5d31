package service

import (
	"context"

	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/transport"
)

type TodoService struct {
	Repo *repo.GormRepo
}

func (s *TodoService) List(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	return s.Repo.ListTodos(ctx, ownerID)
}

func (s *TodoService) Get(ctx context.Context, ownerID, id int64) (*models.Todo, error) {
	todo, err := s.Repo.GetTodo(ctx, ownerID, id)
	if err != nil {
		return nil, translate(err)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, req transport.TodoRequest) (*models.Todo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	todo := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}
	if err := s.Repo.CreateTodo(ctx, todo); err != nil {
		return nil, translate(err)
	}
	return todo, nil
}

// Update replaces every editable field.
func (s *TodoService) Update(ctx context.Context, ownerID, id int64, req transport.TodoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return translate(s.Repo.UpdateTodo(ctx, ownerID, id, func(t *models.Todo) {
		t.Title = req.Title
		t.Description = req.Description
		t.Priority = req.Priority
		t.Complete = req.Complete
	}))
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id int64) error {
	return translate(s.Repo.DeleteTodo(ctx, ownerID, id))
}

func (s *TodoService) Duplicate(ctx context.Context, ownerID, id int64) (*models.Todo, error) {
	todo, err := s.Repo.DuplicateTodo(ctx, ownerID, id)
	if err != nil {
		return nil, translate(err)
	}
	return todo, nil
}
