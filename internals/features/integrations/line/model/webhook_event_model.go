package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookEventModel merepresentasikan tabel `webhook_events`.
// Log event masuk (LINE webhook) dipersist ke DB supaya bisa di-query,
// bukan ring buffer in-memory yang hilang saat restart.
type WebhookEventModel struct {
	WebhookEventID      uuid.UUID      `json:"webhook_event_id" gorm:"column:webhook_event_id;type:uuid;default:gen_random_uuid();primaryKey"`
	WebhookEventSource  string         `json:"webhook_event_source" gorm:"column:webhook_event_source;type:varchar(20);not null;index"`
	WebhookEventType    *string        `json:"webhook_event_type,omitempty" gorm:"column:webhook_event_type;type:varchar(40)"`
	WebhookEventPayload datatypes.JSON `json:"webhook_event_payload" gorm:"column:webhook_event_payload;type:jsonb;not null"`

	WebhookEventReceivedAt time.Time `json:"webhook_event_received_at" gorm:"column:webhook_event_received_at;type:timestamptz;not null;default:now()"`
}

func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
