package catalog

import (
	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
)

// EventTypeCategoryCreated is published when a category is created
const EventTypeCategoryCreated = "catalog.category.created"

// CategoryCreatedEvent is published when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	CategoryID uuid.UUID `json:"category_id"`
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, "Category", category.ID),
		CategoryID:      category.ID,
		Slug:            category.Slug,
		Name:            category.Name,
	}
}
