package repo

import (
	"context"

	"gorm.io/gorm"
)

// Table is the CRUD surface shared by the hospital resources.
type Table[M any] struct {
	DB *gorm.DB
}

func NewTable[M any](db *gorm.DB) *Table[M] {
	return &Table[M]{DB: db}
}

// List returns every row when limit is zero.
func (t *Table[M]) List(ctx context.Context, offset, limit int) (int64, []M, error) {
	var total int64
	if err := t.DB.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	q := t.DB.WithContext(ctx).Model(new(M)).Order("id ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	items := make([]M, 0)
	if err := q.Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (t *Table[M]) Get(ctx context.Context, id int64) (*M, error) {
	m := new(M)
	if err := t.DB.WithContext(ctx).First(m, id).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (t *Table[M]) Create(ctx context.Context, m *M) error {
	return t.DB.WithContext(ctx).Create(m).Error
}

func (t *Table[M]) Update(ctx context.Context, id int64, apply func(*M)) (*M, error) {
	m := new(M)
	err := t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(m, id).Error; err != nil {
			return err
		}
		apply(m)
		return tx.Save(m).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (t *Table[M]) Delete(ctx context.Context, id int64) error {
	res := t.DB.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
