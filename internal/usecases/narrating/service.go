package narrating

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/cache"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/integrator/anthropic"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/metrics"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/analyzing"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
)

type Narrator interface {
	Narrate(ctx context.Context, selection domain.PeriodSelection, channel string) (*domain.Narrative, error)
}

type Service struct {
	analyzer      analyzing.Analyzer
	client        anthropic.Client
	cache         cache.NarrativeCache
	metrics       *metrics.Metrics
	includePrompt bool
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCache reaproveita o texto já gerado para o mesmo prompt
func WithCache(c cache.NarrativeCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithPrompt devolve o prompt junto com a narrativa
func WithPrompt() Option {
	return func(s *Service) {
		s.includePrompt = true
	}
}

func NewService(analyzer analyzing.Analyzer, client anthropic.Client, opts ...Option) *Service {
	s := &Service{
		analyzer: analyzer,
		client:   client,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Narrate monta o relatório do canal, formata o prompt e pede o texto ao gerador.
// Falhas do gerador voltam com a mensagem original nos detalhes, sem nova tentativa.
func (s *Service) Narrate(ctx context.Context, selection domain.PeriodSelection, channel string) (*domain.Narrative, error) {
	report, err := s.analyzer.ChannelReport(selection, channel)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(report)

	text, found := s.cached(ctx, prompt)
	if !found {
		started := time.Now()
		text, err = s.client.Complete(ctx, prompt)
		s.metrics.RecordNarrative(started, err)
		if err != nil {
			logrus.WithError(err).WithField("channel", channel).Error("Erro ao gerar narrativa")
			return nil, NewNarrativeError(ErrNarrativeFailed, codeFor(err), err.Error())
		}

		logrus.WithFields(logrus.Fields{
			"channel":  channel,
			"duration": time.Since(started).String(),
		}).Info("Narrativa gerada")

		s.store(ctx, prompt, text)
	}

	narrative := &domain.Narrative{
		Channel: channel,
		Text:    text,
	}
	if s.includePrompt {
		narrative.Prompt = prompt
	}
	return narrative, nil
}

// cached consulta o cache. Falhas do cache viram apenas log.
func (s *Service) cached(ctx context.Context, prompt string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	text, found, err := s.cache.Get(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Warn("Cache de narrativas indisponível")
		return "", false
	}
	if found {
		logrus.Debug("Narrativa servida do cache")
	}
	return text, found
}

func (s *Service) store(ctx context.Context, prompt, text string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, prompt, text); err != nil {
		logrus.WithError(err).Warn("Não foi possível gravar a narrativa no cache")
	}
}

func codeFor(err error) string {
	if errors.Is(err, anthropic.ErrNotConfigured) {
		return apiErrors.ErrNotConfigured
	}
	return apiErrors.ErrExternalService
}
