package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"affinity_server/models"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// defaultPollInterval paces the change-record polling loop
const defaultPollInterval = 2 * time.Second

// SubscriptionFeed is the live-subscription surface consumed by the dashboard
// and the reactive pipeline. Every delivery carries the FULL current result
// set of the watched collection, newest first — not a delta. Deliveries stop
// when the context is canceled; the three streams are causally independent.
type SubscriptionFeed interface {
	SubscribeActivity(ctx context.Context) <-chan []models.ActivityEvent
	SubscribeFeedback(ctx context.Context) <-chan []models.FeedbackItem
	SubscribeAssistance(ctx context.Context) <-chan []models.AssistanceRequest
}

// StreamService implements live subscriptions over DynamoDB Streams: a
// watcher polls the table's change stream, and any detected change re-runs
// the full read and re-delivers the whole set.
type StreamService struct {
	Dynamo       *DynamoService
	Streams      *dynamodbstreams.Client
	PollInterval time.Duration
}

// InitializeStreamsClient initializes the DynamoDB Streams client
func InitializeStreamsClient() *dynamodbstreams.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodbstreams.NewFromConfig(cfg)
}

// SubscribeActivity delivers the full customer-activity set on every change
func (ss *StreamService) SubscribeActivity(ctx context.Context) <-chan []models.ActivityEvent {
	ch := make(chan []models.ActivityEvent, 1)
	deliver := func(deliverCtx context.Context) {
		var events []models.ActivityEvent
		if err := ss.Dynamo.ScanAllItems(deliverCtx, models.CustomerActivityTable, &events); err != nil {
			log.Printf("❌ Failed to read customer activity for delivery: %v", err)
			return
		}
		sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp > events[j].Timestamp })
		replaceDelivery(ch, events)
	}
	go ss.run(ctx, models.CustomerActivityTable, deliver, func() { close(ch) })
	return ch
}

// SubscribeFeedback delivers the full feedback set on every change
func (ss *StreamService) SubscribeFeedback(ctx context.Context) <-chan []models.FeedbackItem {
	ch := make(chan []models.FeedbackItem, 1)
	deliver := func(deliverCtx context.Context) {
		var items []models.FeedbackItem
		if err := ss.Dynamo.ScanAllItems(deliverCtx, models.CustomerFeedbackTable, &items); err != nil {
			log.Printf("❌ Failed to read customer feedback for delivery: %v", err)
			return
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].Timestamp > items[j].Timestamp })
		replaceDelivery(ch, items)
	}
	go ss.run(ctx, models.CustomerFeedbackTable, deliver, func() { close(ch) })
	return ch
}

// SubscribeAssistance delivers the full assistance-request set on every change
func (ss *StreamService) SubscribeAssistance(ctx context.Context) <-chan []models.AssistanceRequest {
	ch := make(chan []models.AssistanceRequest, 1)
	deliver := func(deliverCtx context.Context) {
		var requests []models.AssistanceRequest
		if err := ss.Dynamo.ScanAllItems(deliverCtx, models.AssistanceRequestsTable, &requests); err != nil {
			log.Printf("❌ Failed to read assistance requests for delivery: %v", err)
			return
		}
		sort.SliceStable(requests, func(i, j int) bool { return requests[i].Timestamp > requests[j].Timestamp })
		replaceDelivery(ch, requests)
	}
	go ss.run(ctx, models.AssistanceRequestsTable, deliver, func() { close(ch) })
	return ch
}

// replaceDelivery pushes the latest result set, displacing an unconsumed
// older delivery. Only the newest full set matters to a subscriber.
func replaceDelivery[T any](ch chan []T, items []T) {
	select {
	case ch <- items:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- items:
		default:
		}
	}
}

// run performs the initial delivery, then re-delivers on every change signal
func (ss *StreamService) run(ctx context.Context, table string, deliver func(context.Context), done func()) {
	defer done()

	deliver(ctx)
	changes := ss.watchChanges(ctx, table)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			deliver(ctx)
		}
	}
}

// watchChanges signals whenever change records appear on the table's stream.
// The watcher re-resolves the stream when shards close or calls fail.
func (ss *StreamService) watchChanges(ctx context.Context, table string) <-chan struct{} {
	sig := make(chan struct{}, 1)
	go func() {
		defer close(sig)
		for ctx.Err() == nil {
			if err := ss.followStream(ctx, table, sig); err != nil && ctx.Err() == nil {
				log.Printf("⚠️ Stream watch for '%s' interrupted: %v", table, err)
			}
			if !sleepCtx(ctx, ss.pollInterval()) {
				return
			}
		}
	}()
	return sig
}

func (ss *StreamService) followStream(ctx context.Context, table string, sig chan<- struct{}) error {
	desc, err := ss.Dynamo.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: &table})
	if err != nil {
		return fmt.Errorf("failed to describe table '%s': %w", table, err)
	}
	if desc.Table == nil || desc.Table.LatestStreamArn == nil {
		return fmt.Errorf("table '%s' has no change stream", table)
	}
	streamArn := *desc.Table.LatestStreamArn

	streamDesc, err := ss.Streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{StreamArn: &streamArn})
	if err != nil {
		return fmt.Errorf("failed to describe stream for '%s': %w", table, err)
	}

	iterators := make(map[string]string)
	for _, shard := range streamDesc.StreamDescription.Shards {
		output, err := ss.Streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
			StreamArn:         &streamArn,
			ShardId:           shard.ShardId,
			ShardIteratorType: streamtypes.ShardIteratorTypeLatest,
		})
		if err != nil {
			log.Printf("⚠️ Failed to open shard %s on '%s': %v", *shard.ShardId, table, err)
			continue
		}
		if output.ShardIterator != nil {
			iterators[*shard.ShardId] = *output.ShardIterator
		}
	}

	// Poll every open shard; when all shards close the caller re-describes
	// the stream and picks up their successors.
	for len(iterators) > 0 {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for shardID, iterator := range iterators {
			output, err := ss.Streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{ShardIterator: &iterator})
			if err != nil {
				delete(iterators, shardID)
				continue
			}
			if len(output.Records) > 0 {
				select {
				case sig <- struct{}{}:
				default:
				}
			}
			if output.NextShardIterator == nil {
				delete(iterators, shardID)
			} else {
				iterators[shardID] = *output.NextShardIterator
			}
		}
		if !sleepCtx(ctx, ss.pollInterval()) {
			return ctx.Err()
		}
	}
	return nil
}

func (ss *StreamService) pollInterval() time.Duration {
	if ss.PollInterval > 0 {
		return ss.PollInterval
	}
	return defaultPollInterval
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
