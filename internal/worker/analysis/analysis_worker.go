package analysis

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
	"github.com/panoprobe/internal/usecase/dto"
	"github.com/panoprobe/internal/worker"
)

// WorkerName - имя воркера в логах и метриках
const WorkerName = "difficulty-analysis"

// Analyzer - анализ одной локации
type Analyzer interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
}

// DifficultyWorker обрабатывает запросы на анализ из stream:difficulty:analyze
// и публикует результаты в stream:difficulty:done
type DifficultyWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	analyzer   Analyzer
}

// NewDifficultyWorker создает новый DifficultyWorker
func NewDifficultyWorker(
	streamRepo repository.StreamRepository,
	analyzer Analyzer,
	consumerGroup string,
	consumerName string,
	logger *zap.Logger,
) *DifficultyWorker {
	return &DifficultyWorker{
		BaseWorker: worker.NewBaseWorker(WorkerName, consumerGroup, consumerName, logger),
		streamRepo: streamRepo,
		analyzer:   analyzer,
	}
}

// Start запускает воркер
func (w *DifficultyWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting DifficultyWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamDifficultyAnalyze, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Чтение останавливается вместе с воркером
	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgChan, err := w.streamRepo.ConsumeStream(
		consumeCtx,
		domain.StreamDifficultyAnalyze,
		w.ConsumerGroup(),
		w.ConsumerName(),
	)
	if err != nil {
		logger.Error("Failed to consume stream", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Warn("Message channel closed")
				return fmt.Errorf("message channel closed")
			}

			w.RecordOutcome(w.processMessage(ctx, msg))

			// Подтверждаем каждое сообщение, включая некорректные
			if err := w.streamRepo.AckMessage(ctx, domain.StreamDifficultyAnalyze, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Error("Failed to acknowledge message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

// processMessage анализирует одну локацию и возвращает исход для метрик
func (w *DifficultyWorker) processMessage(ctx context.Context, msg domain.StreamMessage) string {
	logger := w.Logger()

	var event domain.AnalysisRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to unmarshal event, skipping",
			zap.String("message_id", msg.ID),
			zap.String("raw_data", msg.Data),
			zap.Error(err))
		return metrics.OutcomeRejected
	}

	// Без request_id ответ некому адресовать
	if event.RequestID == uuid.Nil {
		logger.Warn("Event without request_id, skipping",
			zap.String("message_id", msg.ID))
		return metrics.OutcomeRejected
	}

	logger.Info("Processing difficulty analysis",
		zap.String("request_id", event.RequestID.String()),
		zap.Bool("has_coordinates", event.HasCoordinates()),
		zap.Bool("has_pano_id", event.HasPanoID()))

	resp, err := w.analyzer.Analyze(ctx, toRequest(&event))
	if err != nil {
		logger.Error("Analysis failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		w.publish(ctx, &domain.AnalysisDoneEvent{
			RequestID: event.RequestID,
			Error:     err.Error(),
		})
		return metrics.OutcomeError
	}

	result := resp.Result
	w.publish(ctx, &domain.AnalysisDoneEvent{
		RequestID:       event.RequestID,
		AnalysisID:      resp.AnalysisID,
		Difficulty:      result.Difficulty,
		DifficultyLabel: resp.DifficultyLabel,
		Method:          resp.Method,
		Result:          &result,
	})

	logger.Info("Difficulty analysis completed",
		zap.String("request_id", event.RequestID.String()),
		zap.Int("difficulty", int(result.Difficulty)),
		zap.String("method", resp.Method))

	return metrics.OutcomeSuccess
}

func (w *DifficultyWorker) publish(ctx context.Context, event *domain.AnalysisDoneEvent) {
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamDifficultyDone, event); err != nil {
		w.Logger().Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}
}

func toRequest(event *domain.AnalysisRequestEvent) dto.AnalyzeRequest {
	req := dto.AnalyzeRequest{
		Lat:       event.Latitude,
		Lng:       event.Longitude,
		UseVision: event.UseVision,
	}
	if event.HasPanoID() {
		req.PanoID = *event.PanoID
	}
	return req
}
