// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is a node of the category tree.
type Category struct {
	ID        string
	Name      string
	ParentID  *string
	CreatedAt time.Time
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category with its subtree, as returned by a tree walk.
type CategoryNode struct {
	Category Category
	Children []CategoryNode
}
