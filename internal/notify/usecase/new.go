package usecase

import (
	"insights-srv/internal/notify"
	"insights-srv/pkg/discord"
	"insights-srv/pkg/log"
	"insights-srv/pkg/redis"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
	redis   redis.IRedis
	stream  notify.UserStream
}

// New builds the alert dispatcher. Any sink may be nil; a nil sink is
// skipped at dispatch time.
func New(logger log.Logger, discord discord.IDiscord, redis redis.IRedis, stream notify.UserStream) notify.UseCase {
	return &implUseCase{
		logger:  logger,
		discord: discord,
		redis:   redis,
		stream:  stream,
	}
}
