package chain

import (
	"context"
	"math/big"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// SubscribeEvents opens a log subscription filtered to the contract address
// and translates raw logs into domain events. The returned channel closes
// when the context is cancelled or the subscription errors out. Logs that
// fail to decode are skipped, not fatal: events are triggers, not state.
func (c *Client) SubscribeEvents(ctx context.Context) (<-chan domain.Event, error) {
	logs := make(chan types.Log, 64)
	sub, err := c.eth.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
	}, logs)
	if err != nil {
		return nil, apperror.ErrRemoteCallFailed("subscribeLogs", err)
	}

	events := make(chan domain.Event, 64)
	go func() {
		defer close(events)
		defer sub.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				c.log.Warn().Err(err).Msg("log subscription terminated")
				return
			case lg := <-logs:
				ev, ok := c.decodeLog(lg)
				if !ok {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// decodeLog maps a raw log onto a domain event using the loaded schema.
func (c *Client) decodeLog(lg types.Log) (domain.Event, bool) {
	if len(lg.Topics) == 0 {
		return domain.Event{}, false
	}
	evDef, err := c.schema.EventByID(lg.Topics[0])
	if err != nil {
		return domain.Event{}, false // not one of ours
	}

	args := map[string]interface{}{}
	indexed := indexedArguments(evDef.Inputs)
	if len(indexed) > 0 {
		if err := abi.ParseTopicsIntoMap(args, indexed, lg.Topics[1:]); err != nil {
			c.log.Warn().Err(err).Str("event", evDef.Name).Msg("failed to parse indexed event args")
			return domain.Event{}, false
		}
	}
	if len(lg.Data) > 0 {
		if err := evDef.Inputs.NonIndexed().UnpackIntoMap(args, lg.Data); err != nil {
			c.log.Warn().Err(err).Str("event", evDef.Name).Msg("failed to unpack event data")
			return domain.Event{}, false
		}
	}

	ev := domain.Event{
		Kind:       domain.EventKind(evDef.Name),
		CampaignID: argUint64(args, "campaignId", "id"),
		TxHash:     lg.TxHash.Hex(),
	}

	switch ev.Kind {
	case domain.EventCampaignCreated:
		ev.Actor = argAddress(args, "creator")
	case domain.EventDonationReceived:
		ev.Actor = argAddress(args, "donor")
		ev.Amount = argBig(args, "amount")
	case domain.EventDisbursed:
		ev.Actor = argAddress(args, "recipient")
		ev.Amount = argBig(args, "amount")
	case domain.EventCommentAdded:
		ev.Actor = argAddress(args, "commenter")
		ev.Text = argString(args, "text")
	case domain.EventLiked, domain.EventUnliked:
		ev.Actor = argAddress(args, "liker")
	default:
		return domain.Event{}, false
	}

	return ev, true
}

func indexedArguments(inputs abi.Arguments) abi.Arguments {
	var indexed abi.Arguments
	for _, in := range inputs {
		if in.Indexed {
			indexed = append(indexed, in)
		}
	}
	return indexed
}

func argUint64(args map[string]interface{}, names ...string) uint64 {
	for _, n := range names {
		if v, ok := args[n]; ok {
			if b, ok := v.(*big.Int); ok {
				return b.Uint64()
			}
		}
	}
	return 0
}

func argBig(args map[string]interface{}, name string) *big.Int {
	if v, ok := args[name]; ok {
		if b, ok := v.(*big.Int); ok {
			return b
		}
	}
	return nil
}

func argAddress(args map[string]interface{}, name string) common.Address {
	if v, ok := args[name]; ok {
		if a, ok := v.(common.Address); ok {
			return a
		}
	}
	return common.Address{}
}

func argString(args map[string]interface{}, name string) string {
	if v, ok := args[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
