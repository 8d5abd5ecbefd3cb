package repository

import "drainsim/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint, uid string) (*entities.Field, error)
	ListByUser(uid string) ([]entities.Field, error)
}
