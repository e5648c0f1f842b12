package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/teamswap/teamswap/internal/config"
	"github.com/teamswap/teamswap/pkg/logger"
)

const (
	TaskTypeNotify = "notification:deliver"

	// Dedicated asynq queue for notification delivery.
	notifyQueue = "notifications"
)

// DeliveryTask carries a stored notification id to the delivery worker,
// which loads the row and pushes it to the recipient's event streams.
type DeliveryTask struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
}

// TaskQueue hands notification delivery off the request path. The async
// implementation goes through Redis; the sync one delivers in-process.
type TaskQueue interface {
	Enqueue(task *DeliveryTask) error
	IsAsync() bool
	Close() error
}

var (
	globalTaskQueue TaskQueue
	taskQueueOnce   sync.Once
)

// InitTaskQueue picks the queue implementation once. Redis being configured
// but unreachable degrades to sync delivery instead of failing startup.
func InitTaskQueue(cfg *config.Config) TaskQueue {
	taskQueueOnce.Do(func() {
		if !cfg.Redis.Enabled {
			logger.Info().Msg("notification delivery: sync mode")
			globalTaskQueue = NewSyncQueue()
			return
		}
		queue, err := NewAsyncQueue(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, notification delivery degraded to sync mode")
			globalTaskQueue = NewSyncQueue()
			return
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("notification delivery: async mode")
		globalTaskQueue = queue
	})
	return globalTaskQueue
}

func GetTaskQueue() TaskQueue {
	return globalTaskQueue
}

// AsyncQueue enqueues delivery tasks into Redis via asynq.
type AsyncQueue struct {
	client *asynq.Client
}

func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Probe the connection now so a bad Redis address degrades to sync
	// mode at startup instead of failing every enqueue later.
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) Enqueue(task *DeliveryTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	info, err := q.client.Enqueue(
		asynq.NewTask(TaskTypeNotify, payload),
		asynq.Queue(notifyQueue),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("task_id", info.ID).
		Str("notification_id", task.NotificationID).
		Msg("delivery task enqueued")
	return nil
}

func (q *AsyncQueue) IsAsync() bool { return true }

func (q *AsyncQueue) Close() error { return q.client.Close() }

// SyncQueue delivers in-process. Used when Redis is disabled or unreachable.
type SyncQueue struct {
	processor func(context.Context, *DeliveryTask) error
}

func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessor wires the delivery function. Tasks enqueued before this is
// called are dropped.
func (q *SyncQueue) SetProcessor(processor func(context.Context, *DeliveryTask) error) {
	q.processor = processor
}

// Enqueue delivers on a fresh goroutine so the transaction that created the
// notification is never blocked on stream writes.
func (q *SyncQueue) Enqueue(task *DeliveryTask) error {
	if q.processor == nil {
		logger.Warn().Str("notification_id", task.NotificationID).Msg("no delivery processor, task dropped")
		return nil
	}

	go func() {
		if err := q.processor(context.Background(), task); err != nil {
			logger.Error().Err(err).Str("notification_id", task.NotificationID).Msg("sync delivery failed")
		}
	}()

	return nil
}

func (q *SyncQueue) IsAsync() bool { return false }

func (q *SyncQueue) Close() error { return nil }
