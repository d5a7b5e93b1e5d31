package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/transport"
)

type ResourceService[M any, C transport.CreateRequest[M], U transport.UpdateRequest[M]] struct {
	Table *repo.Table[M]

	// Resource names the table in published events.
	Resource string
	Events   mykafka.Publisher
}

func NewResourceService[M any, C transport.CreateRequest[M], U transport.UpdateRequest[M]](db *gorm.DB) *ResourceService[M, C, U] {
	return &ResourceService[M, C, U]{Table: repo.NewTable[M](db)}
}

type identified interface {
	GetID() int64
}

func idOf(m any) int64 {
	if v, ok := m.(identified); ok {
		return v.GetID()
	}
	return 0
}

func (s *ResourceService[M, C, U]) emit(ctx context.Context, typ string, id int64, data any) {
	publish(ctx, s.Events, mykafka.TopicHospitalEvents, s.Resource, mykafka.Event{
		Type:     typ,
		Resource: s.Resource,
		ID:       id,
		Data:     data,
	})
}

func (s *ResourceService[M, C, U]) List(ctx context.Context, offset, limit int) (int64, []M, error) {
	return s.Table.List(ctx, offset, limit)
}

func (s *ResourceService[M, C, U]) Get(ctx context.Context, id int64) (*M, error) {
	m, err := s.Table.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (s *ResourceService[M, C, U]) Create(ctx context.Context, req C) (*M, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.Model()
	if err := s.Table.Create(ctx, m); err != nil {
		return nil, translate(err)
	}
	s.emit(ctx, "created", idOf(m), m)
	return m, nil
}

// Update changes only the fields present in req.
func (s *ResourceService[M, C, U]) Update(ctx context.Context, id int64, req U) (*M, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.Table.Update(ctx, id, req.Apply)
	if err != nil {
		return nil, translate(err)
	}
	s.emit(ctx, "updated", id, m)
	return m, nil
}

// Delete reports rows still referenced by children as a conflict.
func (s *ResourceService[M, C, U]) Delete(ctx context.Context, id int64) error {
	err := s.Table.Delete(ctx, id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrInUse
	}
	if err != nil {
		return translate(err)
	}
	s.emit(ctx, "deleted", id, nil)
	return nil
}
