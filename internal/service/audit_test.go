package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

func TestAuditWriter_PersistsRecordedAssessments(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	writer := NewAuditWriter(mockRepo, 10, zap.NewNop())

	done := make(chan struct{})
	mockRepo.On("SavePrediction", mock.Anything, mock.MatchedBy(func(a *domain.RiskAssessment) bool {
		return a.CustomerID == "CUST-000123"
	})).Run(func(args mock.Arguments) {
		close(done)
	}).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go writer.Start(ctx)

	writer.Record(&domain.RiskAssessment{PredictionID: "p1", CustomerID: "CUST-000123"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("assessment was not persisted")
	}
	mockRepo.AssertExpectations(t)
}

func TestAuditWriter_FullBufferDropsWithoutBlocking(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	// Buffer of one and no running Start loop: the second record must not block.
	writer := NewAuditWriter(mockRepo, 1, zap.NewNop())

	finished := make(chan struct{})
	go func() {
		writer.Record(&domain.RiskAssessment{PredictionID: "p1"})
		writer.Record(&domain.RiskAssessment{PredictionID: "p2"})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
}

func TestAuditWriter_StoreFailureIsIsolated(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	writer := NewAuditWriter(mockRepo, 10, zap.NewNop())

	done := make(chan struct{})
	mockRepo.On("SavePrediction", mock.Anything, mock.Anything).
		Return(errors.New("postgres unavailable")).Once()
	mockRepo.On("SavePrediction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(done)
	}).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go writer.Start(ctx)

	writer.Record(&domain.RiskAssessment{PredictionID: "p1"})
	writer.Record(&domain.RiskAssessment{PredictionID: "p2"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer stopped after a store failure")
	}
}
