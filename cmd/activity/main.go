// Job - обработка активности на сайте
// Опрос Kafka -> начисление баллов за действия (вакансии, обучение, заказы)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/aksisonline/mockify/points/internal/db"
	kafka "github.com/aksisonline/mockify/points/internal/external/kafka"
	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	services "github.com/aksisonline/mockify/points/internal/services"
	"go.uber.org/zap"
)

// Событие активности
type ActivityEvent struct {
	UserId   string `json:"userId"`
	Activity string `json:"activity"` // имя категории: jobs, training, ekart
	Points   int64  `json:"points"`
	RefId    string `json:"refId"`
	Reason   string `json:"reason"`
}

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("activity")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// database
	dt, err := db.NewPointsDB(logger)
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// services
	serv := services.NewTransactionService(logger, dt, dt, cache)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("POINTS_ACTIVITY_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			event, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(event string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				if err := process(ctx, serv, event); err != nil {
					logger.Error(err.Error())
					return
				}
			}(event)
		}
	}
	wg.Wait()
}

// разбор события и начисление
func process(ctx context.Context, serv *services.TransactionService, eventJson string) error {
	event := &ActivityEvent{}
	if err := json.Unmarshal([]byte(eventJson), event); err != nil {
		return err
	}
	if event.UserId == "" {
		return fmt.Errorf("invalid event: userId field is required")
	}
	if event.Points <= 0 {
		return fmt.Errorf("invalid event: points must be positive")
	}

	reason := event.Reason
	if reason == "" {
		reason = "Activity: " + event.Activity
	}
	result := serv.CreateTransaction(ctx, services.TransactionRequest{
		Kind:      services.KindPoints,
		User:      event.UserId,
		Amount:    event.Points,
		Direction: "earn",
		Reason:    reason,
		Category:  event.Activity,
		Metadata:  map[string]string{"ref": event.RefId},
	})
	if !result.Success {
		return fmt.Errorf("activity award failed: %s (%s)", result.Error, result.ErrorCode)
	}
	return nil
}
