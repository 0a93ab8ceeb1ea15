// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/models"
)

// categoryRepository is the SQLite-backed [CategoryRepository]. Deleting a
// category relies on the schema's ON DELETE actions: child categories cascade
// and notes are detached.
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] on db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *categoryRepository) CreateCategory(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, createCategory,
		category.ID,
		category.Name,
		nullString(category.ParentID),
		category.CreatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.CreateCategory").
			Str("category_id", category.ID).
			Msg("failed to insert category")
		return classifySQLiteError(err, ErrExecutingStatement, ErrCategoryNotFound)
	}

	return nil
}

func (c *categoryRepository) GetCategory(ctx context.Context, id string) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := scanCategory(c.DB.QueryRowContext(ctx, getCategory, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.GetCategory").
			Str("category_id", id).
			Msg("failed to scan category row")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return category, nil
}

func (c *categoryRepository) ListCategories(ctx context.Context, parentID *string) ([]models.Category, error) {
	query, args, err := buildListCategoriesQuery(parentID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.ListCategories").
			Msg("failed to create query")
		return nil, err
	}

	return c.queryCategories(ctx, "categoryRepository.ListCategories", query, args...)
}

func (c *categoryRepository) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	query, args, err := buildListAllCategoriesQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.ListAllCategories").
			Msg("failed to create query")
		return nil, err
	}

	return c.queryCategories(ctx, "categoryRepository.ListAllCategories", query, args...)
}

func (c *categoryRepository) queryCategories(ctx context.Context, fn, query string, args ...any) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

func (c *categoryRepository) RenameCategory(ctx context.Context, id, name string) error {
	return c.execByID(ctx, "categoryRepository.RenameCategory", id, renameCategory, name, id)
}

func (c *categoryRepository) MoveCategory(ctx context.Context, id string, parentID *string) error {
	return c.execByID(ctx, "categoryRepository.MoveCategory", id, moveCategory, nullString(parentID), id)
}

func (c *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return c.execByID(ctx, "categoryRepository.DeleteCategory", id, deleteCategory, id)
}

// execByID runs a single-row statement and maps zero affected rows to
// [ErrCategoryNotFound].
func (c *categoryRepository) execByID(ctx context.Context, fn, id, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("category_id", id).Msg("failed to execute statement")
		return classifySQLiteError(err, ErrExecutingStatement, ErrCategoryNotFound)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("category_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
