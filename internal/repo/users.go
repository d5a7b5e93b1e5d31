package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/models"
)

// FindUserByUsername is an exact, case-sensitive match.
func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return r.updateUserColumn(ctx, id, "hashed_password", hashed)
}

func (r *GormRepo) UpdatePhoneNumber(ctx context.Context, id int64, phone string) error {
	return r.updateUserColumn(ctx, id, "phone_number", phone)
}

func (r *GormRepo) updateUserColumn(ctx context.Context, id int64, column string, value any) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
