package catalog

import (
	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
)

// Event types for variant aggregate
const (
	EventTypeVariantCreated  = "catalog.variant.created"
	EventTypeVariantArchived = "catalog.variant.archived"
)

// VariantCreatedEvent is published when a variant is created
type VariantCreatedEvent struct {
	shared.BaseDomainEvent
	VariantID uuid.UUID `json:"variant_id"`
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Size      string    `json:"size"`
}

// NewVariantCreatedEvent creates a new VariantCreatedEvent
func NewVariantCreatedEvent(variant *Variant) *VariantCreatedEvent {
	return &VariantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantCreated, "Variant", variant.ID),
		VariantID:       variant.ID,
		ProductID:       variant.ProductID,
		SKU:             variant.SKU,
		Size:            variant.Size,
	}
}

// VariantArchivedEvent is published when a variant is soft-archived instead
// of deleted because order history references it
type VariantArchivedEvent struct {
	shared.BaseDomainEvent
	VariantID uuid.UUID `json:"variant_id"`
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
}

// NewVariantArchivedEvent creates a new VariantArchivedEvent
func NewVariantArchivedEvent(variant *Variant) *VariantArchivedEvent {
	return &VariantArchivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantArchived, "Variant", variant.ID),
		VariantID:       variant.ID,
		ProductID:       variant.ProductID,
		SKU:             variant.SKU,
	}
}
