package eventstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/EventStore/EventStore-Client-Go/v4/esdb"
	log "github.com/sirupsen/logrus"

	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/models"
)

// PositionStore persists position fill histories to EventStoreDB, one
// stream per position id. A position is reconstructed by replaying its
// stream through a fresh reducer.
type PositionStore struct {
	db *esdb.Client
}

func NewPositionStore(connectionString string) (*PositionStore, error) {
	settings, err := esdb.ParseConnectionString(connectionString)
	if err != nil {
		return nil, fmt.Errorf("NewPositionStore: failed to parse connection string: %w", err)
	}

	db, err := esdb.NewClient(settings)
	if err != nil {
		return nil, fmt.Errorf("NewPositionStore: failed to create client: %w", err)
	}

	return &PositionStore{db: db}, nil
}

func streamName(id eventmodels.PositionID) string {
	return fmt.Sprintf("position-%s", id)
}

// AppendFill appends one fill event to the position's stream.
func (s *PositionStore) AppendFill(ctx context.Context, positionID eventmodels.PositionID, ev eventmodels.OrderFillEvent) error {
	dto := eventmodels.NewFillEventDTO(ev)

	data, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("AppendFill: failed to marshal event: %w", err)
	}

	eventData := esdb.EventData{
		ContentType: esdb.ContentTypeJson,
		EventType:   dto.EventType,
		Data:        data,
	}

	if _, err := s.db.AppendToStream(ctx, streamName(positionID), esdb.AppendToStreamOptions{}, eventData); err != nil {
		return fmt.Errorf("AppendFill: failed to append to stream %s: %w", streamName(positionID), err)
	}

	return nil
}

// SavePosition appends the position's full event history to its stream.
// Used to checkpoint a position built in memory.
func (s *PositionStore) SavePosition(ctx context.Context, position *models.Position) error {
	for _, ev := range position.GetEvents() {
		if err := s.AppendFill(ctx, position.ID(), ev); err != nil {
			return fmt.Errorf("SavePosition: %w", err)
		}
	}

	log.Infof("saved %d events for position %s", position.EventCount(), position.ID())
	return nil
}

// LoadFills reads a position's stream back as fill events in stored order.
func (s *PositionStore) LoadFills(ctx context.Context, positionID eventmodels.PositionID) ([]eventmodels.OrderFillEvent, error) {
	readOptions := esdb.ReadStreamOptions{
		Direction: esdb.Forwards,
		From:      esdb.Start{},
	}

	stream, err := s.db.ReadStream(ctx, streamName(positionID), readOptions, 4096)
	if err != nil {
		return nil, fmt.Errorf("LoadFills: failed to read stream %s: %w", streamName(positionID), err)
	}
	defer stream.Close()

	var fills []eventmodels.OrderFillEvent
	for {
		resolved, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			if esdbErr, ok := esdb.FromError(err); !ok && esdbErr.Code() == esdb.ErrorCodeResourceNotFound {
				return nil, fmt.Errorf("LoadFills: stream %s not found: %w", streamName(positionID), err)
			}

			return nil, fmt.Errorf("LoadFills: failed to read event from stream: %w", err)
		}

		var dto eventmodels.FillEventDTO
		if err := json.Unmarshal(resolved.Event.Data, &dto); err != nil {
			return nil, fmt.Errorf("LoadFills: failed to unmarshal event data: %w", err)
		}

		fill, err := dto.ToModel()
		if err != nil {
			return nil, fmt.Errorf("LoadFills: %w", err)
		}

		fills = append(fills, fill)
	}

	return fills, nil
}

// LoadPosition rebuilds a position by replaying its stream through a fresh
// reducer.
func (s *PositionStore) LoadPosition(ctx context.Context, positionID eventmodels.PositionID, accountID eventmodels.AccountID, symbol eventmodels.Symbol) (*models.Position, error) {
	fills, err := s.LoadFills(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("LoadPosition: %w", err)
	}

	position, err := models.NewPosition(positionID, accountID, symbol)
	if err != nil {
		return nil, fmt.Errorf("LoadPosition: %w", err)
	}

	for _, fill := range fills {
		if err := position.Apply(fill); err != nil {
			return nil, fmt.Errorf("LoadPosition: replay failed: %w", err)
		}
	}

	return position, nil
}

func (s *PositionStore) Close() error {
	return s.db.Close()
}
