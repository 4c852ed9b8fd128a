package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotify/config"
	"slotify/services/tasks"
	"slotify/services/token"

	"github.com/hibiken/asynq"
)

// sweepInterval controls how often a refresh sweep is enqueued.
const sweepInterval = 10 * time.Minute

// InitTokenRefreshWorker runs the async worker in background and enqueues a
// periodic sweep that refreshes Google credentials before they expire.
func InitTokenRefreshWorker(tokenSvc token.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTokenRefreshSweep, handleRefreshSweep(tokenSvc))

	go func() {
		log.Println("[TokenWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TokenWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TokenWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go enqueueSweeps(asynq.NewClient(redisOpts))
}

// enqueueSweeps schedules a sweep immediately and then on every tick.
func enqueueSweeps(client *asynq.Client) {
	enqueue := func() {
		horizon := config.AppConfig.TokenRefreshHorizonMin
		task, err := tasks.NewTokenRefreshSweepTask(horizon)
		if err != nil {
			log.Printf("[TokenWorker] Failed to build sweep task: %v", err)
			return
		}
		if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
			log.Printf("[TokenWorker] Failed to enqueue sweep: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		enqueue()
	}
}

func handleRefreshSweep(tokenSvc token.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RefreshSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TokenWorker] Invalid payload: %v", err)
			return err
		}

		horizon := time.Duration(p.HorizonMinutes) * time.Minute
		if horizon <= 0 {
			horizon = 30 * time.Minute
		}

		refreshed, err := tokenSvc.RefreshExpiring(ctx, horizon)
		if err != nil {
			log.Printf("[TokenWorker] Sweep failed: %v", err)
			return err
		}
		if refreshed > 0 {
			log.Printf("[TokenWorker] Refreshed %d expiring credentials", refreshed)
		}
		return nil
	}
}
