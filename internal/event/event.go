package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Garden analytics event types. The names mirror the analytics counters
// incremented alongside each mutation.
const (
	PlotClaimed    Type = "plot_claimed"
	SeedPurchased  Type = "seedsPurchased"
	SeedPlanted    Type = "seedsPlanted"
	PlantHarvested Type = "plantsHarvested"
	PlantsGrown    Type = "plantsGrown"
	PlantsRemoved  Type = "plantsRemoved"
)

// Typed event payloads for type safety

// PlotClaimedPayloadV1 is the typed payload for plot claim events
type PlotClaimedPayloadV1 struct {
	VisitorID   string `json:"visitor_id"`
	ProfileID   string `json:"profile_id"`
	PlotAssetID string `json:"plot_asset_id"`
	Timestamp   int64  `json:"timestamp"`
}

// SeedPurchasedPayloadV1 is the typed payload for seed purchase events
type SeedPurchasedPayloadV1 struct {
	VisitorID      string `json:"visitor_id"`
	SeedID         int    `json:"seed_id"`
	SeedName       string `json:"seed_name"`
	Cost           int    `json:"cost"`
	CoinsRemaining int    `json:"coins_remaining"`
	Timestamp      int64  `json:"timestamp"`
}

// SeedPlantedPayloadV1 is the typed payload for plant drop events
type SeedPlantedPayloadV1 struct {
	VisitorID   string `json:"visitor_id"`
	PlantID     string `json:"plant_id"`
	SeedID      int    `json:"seed_id"`
	SquareIndex int    `json:"square_index"`
	Timestamp   int64  `json:"timestamp"`
}

// PlantHarvestedPayloadV1 is the typed payload for harvest events
type PlantHarvestedPayloadV1 struct {
	VisitorID      string `json:"visitor_id"`
	PlantID        string `json:"plant_id"`
	SeedID         int    `json:"seed_id"`
	Reward         int    `json:"reward"`
	CoinsAvailable int    `json:"coins_available"`
	Timestamp      int64  `json:"timestamp"`
}

// PlantsGrownPayloadV1 is the typed payload for lazy growth refresh events
type PlantsGrownPayloadV1 struct {
	VisitorID    string `json:"visitor_id"`
	UpdatedCount int    `json:"updated_count"`
	Timestamp    int64  `json:"timestamp"`
}

// PlantsRemovedPayloadV1 is the typed payload for garden reset events
type PlantsRemovedPayloadV1 struct {
	VisitorID    string `json:"visitor_id"`
	RemovedCount int    `json:"removed_count"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewPlotClaimedEvent creates a new plot claim event
func NewPlotClaimedEvent(visitorID, profileID, plotAssetID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlotClaimed,
		Payload: PlotClaimedPayloadV1{
			VisitorID:   visitorID,
			ProfileID:   profileID,
			PlotAssetID: plotAssetID,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSeedPurchasedEvent creates a new seed purchase event
func NewSeedPurchasedEvent(visitorID string, seedID int, seedName string, cost, coinsRemaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedPurchased,
		Payload: SeedPurchasedPayloadV1{
			VisitorID:      visitorID,
			SeedID:         seedID,
			SeedName:       seedName,
			Cost:           cost,
			CoinsRemaining: coinsRemaining,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSeedPlantedEvent creates a new plant drop event
func NewSeedPlantedEvent(visitorID, plantID string, seedID, squareIndex int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedPlanted,
		Payload: SeedPlantedPayloadV1{
			VisitorID:   visitorID,
			PlantID:     plantID,
			SeedID:      seedID,
			SquareIndex: squareIndex,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlantHarvestedEvent creates a new harvest event
func NewPlantHarvestedEvent(visitorID, plantID string, seedID, reward, coinsAvailable int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantHarvested,
		Payload: PlantHarvestedPayloadV1{
			VisitorID:      visitorID,
			PlantID:        plantID,
			SeedID:         seedID,
			Reward:         reward,
			CoinsAvailable: coinsAvailable,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlantsGrownEvent creates a new growth refresh event
func NewPlantsGrownEvent(visitorID string, updatedCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantsGrown,
		Payload: PlantsGrownPayloadV1{
			VisitorID:    visitorID,
			UpdatedCount: updatedCount,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlantsRemovedEvent creates a new garden reset event
func NewPlantsRemovedEvent(visitorID string, removedCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantsRemoved,
		Payload: PlantsRemovedPayloadV1{
			VisitorID:    visitorID,
			RemovedCount: removedCount,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
