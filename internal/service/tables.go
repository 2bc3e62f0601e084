package service

import (
	"database/sql"
	"errors"

	"pub-manager/internal/domain"
)

type TableService struct {
	repository TableRepository
}

func NewTableService(repository TableRepository) *TableService {
	return &TableService{repository: repository}
}

func (s *TableService) validate(table *domain.Table) error {
	if table.Number <= 0 {
		return ErrNumberNotPositive
	}
	if table.Seats <= 0 {
		return ErrSeatsNotPositive
	}
	return nil
}

func (s *TableService) Create(table *domain.Table) error {
	if err := s.validate(table); err != nil {
		return err
	}
	if _, err := s.repository.GetTableByNumber(table.Number); err == nil {
		return ErrDuplicateNumber
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return s.repository.CreateTable(table)
}

func (s *TableService) List() ([]domain.Table, error) {
	return s.repository.ListTables()
}

func (s *TableService) Get(id int) (*domain.Table, error) {
	table, err := s.repository.GetTable(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return table, err
}

func (s *TableService) Update(table *domain.Table) error {
	if err := s.validate(table); err != nil {
		return err
	}
	if existing, err := s.repository.GetTableByNumber(table.Number); err == nil && existing.ID != table.ID {
		return ErrDuplicateNumber
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err := s.repository.UpdateTable(table); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTableNotFound
		}
		return err
	}
	return nil
}

func (s *TableService) Delete(id int) error {
	affected, err := s.repository.DeleteTable(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTableNotFound
	}
	return nil
}
