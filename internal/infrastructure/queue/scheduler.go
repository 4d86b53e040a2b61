package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	artworkModel "artichoke-backend/internal/domains/artwork/model"
)

// Scheduler registers recurring maintenance tasks.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr string) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{Addr: redisAddr},
			&asynq.SchedulerOpts{},
		),
	}
}

// RegisterMaintenanceJobs wires the cron entries. The orphan purge runs
// nightly when traffic is low.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	payload, err := json.Marshal(artworkModel.PurgeOrphansPayload{})
	if err != nil {
		return fmt.Errorf("marshal purge payload: %w", err)
	}

	entryID, err := s.scheduler.Register(
		"0 3 * * *",
		asynq.NewTask(artworkModel.TaskPurgeOrphans, payload),
		asynq.Queue("low"),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", artworkModel.TaskPurgeOrphans, err)
	}

	log.Info().
		Str("entry_id", entryID).
		Str("task", artworkModel.TaskPurgeOrphans).
		Msg("Registered nightly orphan purge")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
