package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/orchestrators/generation"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
)

// Request and response field names
const (
	FieldSeedName   = "seed_name"
	FieldPlayer     = "player"
	FieldPlayerName = "player_name"
	FieldGame       = "game"
	FieldCreatedAt  = "created_at"
	FieldSlotData   = "slot_data"
	FieldSlots      = "slots"
)

// HandlerConfig holds dependencies for the slot data handler
type HandlerConfig struct {
	GenerationService generation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GenerationService == nil {
		return errors.InvalidArgument("generation service is required")
	}
	return nil
}

// Handler implements SlotDataServiceServer
type Handler struct {
	generationService generation.Service
}

// NewHandler creates a slot data handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{generationService: cfg.GenerationService}, nil
}

var _ SlotDataServiceServer = (*Handler)(nil)

// GetSlotData returns one player's slot data
func (h *Handler) GetSlotData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	seedName := req.GetFields()[FieldSeedName].GetStringValue()
	if seedName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("seed_name is required"))
	}
	player, err := playerField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.generationService.GetSlotData(ctx, &generation.GetSlotDataInput{
		SeedName: seedName,
		Player:   player,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := RecordToStruct(out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ListSlots returns every stored slot of a seed
func (h *Handler) ListSlots(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	seedName := req.GetFields()[FieldSeedName].GetStringValue()
	if seedName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("seed_name is required"))
	}

	out, err := h.generationService.ListSlots(ctx, &generation.ListSlotsInput{SeedName: seedName})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slots := make([]*structpb.Value, 0, len(out.Records))
	for _, record := range out.Records {
		s, err := RecordToStruct(record)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		slots = append(slots, structpb.NewStructValue(s))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSeedName: structpb.NewStringValue(seedName),
		FieldSlots:    structpb.NewListValue(&structpb.ListValue{Values: slots}),
	}}, nil
}

func playerField(req *structpb.Struct) (int, error) {
	v, ok := req.GetFields()[FieldPlayer]
	if !ok {
		return 0, errors.InvalidArgument("player is required")
	}
	n := v.GetNumberValue()
	if n < 1 || n != float64(int(n)) {
		return 0, errors.InvalidArgumentf("player must be a positive whole number, got %v", n)
	}
	return int(n), nil
}

// RecordToStruct converts a stored record to its wire form
func RecordToStruct(r *slotdata.Record) (*structpb.Struct, error) {
	if r == nil {
		return nil, errors.Internal("record is nil")
	}
	data, err := slotdata.ToStruct(r.Data)
	if err != nil {
		return nil, err
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSeedName:   structpb.NewStringValue(r.SeedName),
		FieldPlayer:     structpb.NewNumberValue(float64(r.Player)),
		FieldPlayerName: structpb.NewStringValue(r.PlayerName),
		FieldGame:       structpb.NewStringValue(r.Game),
		FieldCreatedAt:  structpb.NewStringValue(r.CreatedAt.UTC().Format(time.RFC3339Nano)),
		FieldSlotData:   structpb.NewStructValue(data),
	}}, nil
}

// RecordFromStruct converts the wire form back to a record
func RecordFromStruct(s *structpb.Struct) (*slotdata.Record, error) {
	fields := s.GetFields()

	data, err := slotdata.FromStruct(fields[FieldSlotData].GetStructValue())
	if err != nil {
		return nil, err
	}

	var createdAt time.Time
	if raw := fields[FieldCreatedAt].GetStringValue(); raw != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid created_at")
		}
	}

	return &slotdata.Record{
		SeedName:   fields[FieldSeedName].GetStringValue(),
		Player:     int(fields[FieldPlayer].GetNumberValue()),
		PlayerName: fields[FieldPlayerName].GetStringValue(),
		Game:       fields[FieldGame].GetStringValue(),
		Data:       data,
		CreatedAt:  createdAt,
	}, nil
}
