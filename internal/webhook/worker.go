package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/napmap/internal/config"
	"github.com/shenikar/napmap/internal/models"
	"github.com/sirupsen/logrus"
)

// Заголовки запроса доставки пакета в MapView
const (
	headerSignature = "X-Webhook-Signature"
	headerReason    = "X-Draw-Reason"
	headerCreatedAt = "X-Draw-Created-At"
	headerAttempt   = "X-Draw-Attempt"
)

// errRejected - MapView отклонил пакет (4xx), повтор не поможет
var errRejected = errors.New("draw batch rejected by map view")

// DrawWorker забирает пакеты команд из очереди и доставляет их в MapView
// в порядке публикации
type DrawWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	now         func() time.Time
}

// NewDrawWorker создает новый DrawWorker
func NewDrawWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *DrawWorker {
	return &DrawWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		now: time.Now,
	}
}

// Start запускает горутину обработки очереди
func (w *DrawWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", drawQueueKey).Info("Starting draw batch worker...")
	go func() {
		for ctx.Err() == nil {
			batch, payload, ok := w.next(ctx)
			if !ok {
				continue
			}
			w.Deliver(ctx, batch, payload)
		}
		w.logger.Info("Stopping draw batch worker.")
	}()
}

// next блокируется до появления пакета в очереди
func (w *DrawWorker) next(ctx context.Context) (models.DrawBatch, string, bool) {
	var batch models.DrawBatch

	result, err := w.redisClient.BRPop(ctx, 0, drawQueueKey).Result()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.logger.WithError(err).Error("Failed to pop draw batch from Redis")
			sleepCtx(ctx, w.cfg.WebhookTimeout)
		}
		return batch, "", false
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	if err := json.Unmarshal([]byte(payload), &batch); err != nil {
		w.logger.WithError(err).Error("Dropping malformed draw batch")
		return batch, "", false
	}
	return batch, payload, true
}

// Deliver отправляет пакет в MapView с повторами и экспоненциальной задержкой.
// Ответ 4xx (кроме 429) считается окончательным отказом.
// Возвращает true, если получен ответ 2xx.
func (w *DrawWorker) Deliver(ctx context.Context, batch models.DrawBatch, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"reason":     batch.Reason,
		"created_at": batch.CreatedAt,
		"markers":    len(batch.Markers),
		"boundaries": len(batch.Boundaries),
	})
	if !batch.CreatedAt.IsZero() {
		log = log.WithField("queue_latency", w.now().Sub(batch.CreatedAt))
	}

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping draw batch delivery.")
		return false
	}

	for attempt := 1; attempt <= w.cfg.WebhookMaxRetries; attempt++ {
		err := w.attempt(ctx, batch, rawPayload, attempt)
		if err == nil {
			log.WithField("attempt", attempt).Debug("Draw batch delivered")
			return true
		}
		if errors.Is(err, errRejected) {
			log.WithError(err).Error("Draw batch rejected, not retrying")
			return false
		}

		delay := w.backoff(attempt)
		log.WithError(err).WithFields(logrus.Fields{
			"attempt":  attempt,
			"retry_in": delay,
		}).Warn("Draw batch delivery failed")
		if attempt == w.cfg.WebhookMaxRetries || !sleepCtx(ctx, delay) {
			break
		}
	}

	log.Errorf("Failed to deliver draw batch after %d attempts", w.cfg.WebhookMaxRetries)
	return false
}

func (w *DrawWorker) attempt(ctx context.Context, batch models.DrawBatch, rawPayload string, attempt int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("%w: %v", errRejected, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerReason, batch.Reason)
	req.Header.Set(headerAttempt, strconv.Itoa(attempt))
	if !batch.CreatedAt.IsZero() {
		req.Header.Set(headerCreatedAt, batch.CreatedAt.UTC().Format(time.RFC3339Nano))
	}
	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(headerSignature, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", errRejected, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

// backoff возвращает задержку перед следующей попыткой: base, 2*base, 4*base...
func (w *DrawWorker) backoff(attempt int) time.Duration {
	return w.cfg.WebhookBaseDelay << (attempt - 1)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
