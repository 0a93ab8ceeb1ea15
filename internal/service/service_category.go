// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/store"
	"github.com/MKhiriev/go-notebook/internal/validators"
	"github.com/MKhiriev/go-notebook/models"
)

type categoryService struct {
	categories store.CategoryRepository
	broker     *Broker
	// moveMu makes the cycle check and the move one step.
	moveMu sync.Mutex

	options
}

// NewCategoryService constructs a [CategoryService] on categories. Changes
// are published to broker.
func NewCategoryService(categories store.CategoryRepository, broker *Broker, opts ...Option) CategoryService {
	return &categoryService{
		categories: categories,
		broker:     broker,
		options:    buildOptions(opts),
	}
}

func (c *categoryService) Create(ctx context.Context, name string, parentID *string) (models.Category, error) {
	category := models.Category{
		ID:        c.ids.Generate(),
		Name:      strings.TrimSpace(name),
		ParentID:  parentID,
		CreatedAt: c.timestamp(),
	}
	if err := c.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("validate category: %w", err)
	}

	if parentID != nil {
		if _, err := c.categories.GetCategory(ctx, *parentID); err != nil {
			return models.Category{}, fmt.Errorf("get parent category: %w", err)
		}
	}

	if err := c.categories.CreateCategory(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "categoryService.Create").
		Str("category_id", category.ID).
		Msg("category created")
	c.broker.Publish(models.Event{Kind: models.EventCategoryCreated, ID: category.ID})

	return category, nil
}

func (c *categoryService) Get(ctx context.Context, id string) (models.Category, error) {
	category, err := c.categories.GetCategory(ctx, id)
	if err != nil {
		return models.Category{}, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (c *categoryService) Roots(ctx context.Context) ([]models.Category, error) {
	roots, err := c.categories.ListCategories(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	return roots, nil
}

func (c *categoryService) Children(ctx context.Context, id string) ([]models.Category, error) {
	if _, err := c.categories.GetCategory(ctx, id); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	children, err := c.categories.ListCategories(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("list child categories: %w", err)
	}
	return children, nil
}

func (c *categoryService) Tree(ctx context.Context) ([]models.CategoryNode, error) {
	all, err := c.categories.ListAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	// all is sorted by name, so appending keeps siblings sorted
	children := make(map[string][]models.Category, len(all))
	var roots []models.Category
	for _, category := range all {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		children[*category.ParentID] = append(children[*category.ParentID], category)
	}

	var build func(categories []models.Category) []models.CategoryNode
	build = func(categories []models.Category) []models.CategoryNode {
		nodes := make([]models.CategoryNode, 0, len(categories))
		for _, category := range categories {
			nodes = append(nodes, models.CategoryNode{
				Category: category,
				Children: build(children[category.ID]),
			})
		}
		return nodes
	}

	return build(roots), nil
}

func (c *categoryService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	err := c.validator.Validate(ctx, models.Category{ID: id, Name: name}, validators.FieldID, validators.FieldName)
	if err != nil {
		return fmt.Errorf("validate category: %w", err)
	}

	if err = c.categories.RenameCategory(ctx, id, name); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}

	c.broker.Publish(models.Event{Kind: models.EventCategoryRenamed, ID: id})
	return nil
}

func (c *categoryService) Move(ctx context.Context, id string, parentID *string) error {
	err := c.validator.Validate(ctx, models.Category{ID: id}, validators.FieldID)
	if err != nil {
		return fmt.Errorf("validate category: %w", err)
	}

	c.moveMu.Lock()
	defer c.moveMu.Unlock()

	if _, err = c.categories.GetCategory(ctx, id); err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if parentID != nil {
		if err = c.checkNotDescendant(ctx, id, *parentID); err != nil {
			return err
		}
	}

	if err = c.categories.MoveCategory(ctx, id, parentID); err != nil {
		return fmt.Errorf("move category: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "categoryService.Move").
		Str("category_id", id).
		Msg("category moved")
	c.broker.Publish(models.Event{Kind: models.EventCategoryMoved, ID: id})

	return nil
}

// checkNotDescendant walks from parentID up to its root and fails with
// ErrCategoryCycle when it meets id.
func (c *categoryService) checkNotDescendant(ctx context.Context, id, parentID string) error {
	seen := make(map[string]struct{})
	for cur := &parentID; cur != nil; {
		if *cur == id {
			return ErrCategoryCycle
		}
		if _, ok := seen[*cur]; ok {
			return fmt.Errorf("%w: loop above %s", ErrCategoryCycle, parentID)
		}
		seen[*cur] = struct{}{}

		ancestor, err := c.categories.GetCategory(ctx, *cur)
		if err != nil {
			return fmt.Errorf("get parent category: %w", err)
		}
		cur = ancestor.ParentID
	}
	return nil
}

func (c *categoryService) Delete(ctx context.Context, id string) error {
	if err := c.categories.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "categoryService.Delete").
		Str("category_id", id).
		Msg("category deleted")
	c.broker.Publish(models.Event{Kind: models.EventCategoryDeleted, ID: id})

	return nil
}
