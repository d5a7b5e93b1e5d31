package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/models"
)

// Every todo query is scoped by owner_id.

func (r *GormRepo) ListTodos(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	items := make([]models.Todo, 0)
	if err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetTodo(ctx context.Context, ownerID, id int64) (*models.Todo, error) {
	return getTodo(r.DB.WithContext(ctx), ownerID, id)
}

func getTodo(db *gorm.DB, ownerID, id int64) (*models.Todo, error) {
	var todo models.Todo
	if err := db.Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *GormRepo) CreateTodo(ctx context.Context, todo *models.Todo) error {
	return r.DB.WithContext(ctx).Create(todo).Error
}

func (r *GormRepo) UpdateTodo(ctx context.Context, ownerID, id int64, apply func(*models.Todo)) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		todo, err := getTodo(tx, ownerID, id)
		if err != nil {
			return err
		}
		apply(todo)
		return tx.Save(todo).Error
	})
}

func (r *GormRepo) DeleteTodo(ctx context.Context, ownerID, id int64) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DuplicateTodo(ctx context.Context, ownerID, id int64) (*models.Todo, error) {
	var dup *models.Todo
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orig, err := getTodo(tx, ownerID, id)
		if err != nil {
			return err
		}
		dup = &models.Todo{
			Title:       orig.Title,
			Description: orig.Description,
			Priority:    orig.Priority,
			Complete:    orig.Complete,
			OwnerID:     ownerID,
		}
		return tx.Create(dup).Error
	})
	if err != nil {
		return nil, err
	}
	return dup, nil
}
