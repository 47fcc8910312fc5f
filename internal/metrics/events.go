package metrics

import (
	"context"
	"strconv"

	"github.com/verdantgames/GardenGrove_Go/internal/event"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
)

// EventMetricsCollector subscribes to garden events and records business
// metrics from their payloads.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PlotClaimed,
		event.SeedPurchased,
		event.SeedPlanted,
		event.PlantHarvested,
		event.PlantsGrown,
		event.PlantsRemoved,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PlotClaimed:
		PlotsClaimed.Inc()

	case event.SeedPurchased:
		payload, err := event.DecodePayload[event.SeedPurchasedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SeedsPurchased.WithLabelValues(payload.SeedName).Inc()
		CoinsSpent.Add(float64(payload.Cost))

	case event.SeedPlanted:
		payload, err := event.DecodePayload[event.SeedPlantedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SeedsPlanted.WithLabelValues(strconv.Itoa(payload.SeedID)).Inc()

	case event.PlantHarvested:
		payload, err := event.DecodePayload[event.PlantHarvestedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PlantsHarvested.WithLabelValues(strconv.Itoa(payload.SeedID)).Inc()
		CoinsEarned.Add(float64(payload.Reward))

	case event.PlantsGrown:
		payload, err := event.DecodePayload[event.PlantsGrownPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PlantsGrown.Add(float64(payload.UpdatedCount))

	case event.PlantsRemoved:
		payload, err := event.DecodePayload[event.PlantsRemovedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PlantsRemoved.Add(float64(payload.RemovedCount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
