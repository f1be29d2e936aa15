package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{
		ID:      uuid.New().String(),
		Topic:   "hr.employee.lifecycle.v1",
		Payload: []byte(`{}`),
		Status:  OutboxStatusPending,
	}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, ValidateOutboxEvent(missingID))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	missingPayload := valid
	missingPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(missingPayload))

	badStatus := valid
	badStatus.Status = "done"
	assert.ErrorContains(t, ValidateOutboxEvent(badStatus), "invalid outbox status")
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db)
	err = repo.WithTx(tx).Create(context.Background(), OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "employee",
		AggregateID:   "E100",
		EventType:     "employee.created",
		Topic:         "hr.employee.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        OutboxStatusPending,
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)
	err := repo.Create(context.Background(), OutboxEvent{
		ID:      uuid.New().String(),
		Payload: []byte(`{}`),
		Status:  OutboxStatusPending,
	})
	assert.ErrorContains(t, err, "outbox topic is required")
	// No INSERT was expected; nothing may have reached the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"evt-1", "employee", "E100", "employee.created",
		"hr.employee.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, time.Now(),
	)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "employee.created", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
