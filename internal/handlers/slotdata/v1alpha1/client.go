package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
)

// Client calls the slot data service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an open connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GetSlotData fetches one player's slot data
func (c *Client) GetSlotData(ctx context.Context, seedName string, player int) (*slotdata.Record, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSeedName: structpb.NewStringValue(seedName),
		FieldPlayer:   structpb.NewNumberValue(float64(player)),
	}}

	resp := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getSlotDataMethod, req, resp); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return RecordFromStruct(resp)
}

// ListSlots fetches every slot of a seed
func (c *Client) ListSlots(ctx context.Context, seedName string) ([]*slotdata.Record, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSeedName: structpb.NewStringValue(seedName),
	}}

	resp := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, listSlotsMethod, req, resp); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	values := resp.GetFields()[FieldSlots].GetListValue().GetValues()
	records := make([]*slotdata.Record, 0, len(values))
	for _, v := range values {
		record, err := RecordFromStruct(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
