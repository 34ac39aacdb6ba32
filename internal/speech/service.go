package speech

import (
	"context"
	"fmt"
	"time"

	"wayfinder/internal/shared/constants"
	"wayfinder/pkg/cache"
	"wayfinder/pkg/logger"
)

type Service interface {
	TextToSpeech(ctx context.Context, text, voiceID string) ([]byte, error)
}

type service struct {
	client *ElevenLabsClient
	cache  cache.Service
	log    *logger.Logger
}

func NewService(client *ElevenLabsClient, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		client: client,
		cache:  cacheService,
		log:    log,
	}
}

func (s *service) TextToSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	start := time.Now()
	cacheKey := constants.TTSAudioKey(voiceID, text)

	var audio []byte
	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_TTS_AUDIO, func() (interface{}, error) {
		return s.client.Synthesize(ctx, text, voiceID)
	}, &audio)

	s.log.LogSpeechRequest(ctx, voiceID, len(text), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return audio, nil
}
