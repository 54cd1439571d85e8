package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
)

// AuditWriter persists scoring decisions asynchronously. Writes are
// best-effort: a full buffer drops the record and a store failure is only
// logged. The serving path never waits on it.
type AuditWriter struct {
	repo repository.PredictionRepository
	in   chan *domain.RiskAssessment
	log  *zap.Logger
}

// NewAuditWriter creates an audit writer with the given buffer size.
func NewAuditWriter(repo repository.PredictionRepository, bufferSize int, log *zap.Logger) *AuditWriter {
	return &AuditWriter{
		repo: repo,
		in:   make(chan *domain.RiskAssessment, bufferSize),
		log:  log,
	}
}

// Record enqueues an assessment for persistence without blocking.
func (w *AuditWriter) Record(assessment *domain.RiskAssessment) {
	select {
	case w.in <- assessment:
	default:
		w.log.Warn("Audit buffer full, dropping assessment",
			zap.String("customer_id", assessment.CustomerID))
	}
}

// Start drains the buffer until ctx is cancelled.
func (w *AuditWriter) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Audit writer shutting down")
			return
		case assessment := <-w.in:
			if err := w.repo.SavePrediction(ctx, assessment); err != nil {
				w.log.Error("Failed to persist prediction audit record",
					zap.String("customer_id", assessment.CustomerID),
					zap.Error(err))
			}
		}
	}
}
