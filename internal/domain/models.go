// Package domain defines the persistence models for clients and their
// appointments. These types are mapped with GORM and form the core data
// layer of the salon application.
package domain

import "time"

// AppointmentStatus is the closed set of lifecycle states an appointment
// can be in. It is stored as plain text but validated at the storage
// boundary (typed string + CHECK constraint), so no other value can reach
// the database.
type AppointmentStatus string

const (
	// StatusPending is the initial status of every scheduled appointment.
	// Pending appointments block deletion of their client.
	StatusPending AppointmentStatus = "pending"
	// StatusCompleted marks an appointment that took place.
	StatusCompleted AppointmentStatus = "completed"
	// StatusCancelled marks an appointment that was called off.
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the three allowed statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Client represents a salon customer. A client owns zero or more
// appointments; the owning side of the relation is Appointment via
// ClientID.
//
// Fields:
//   - ID: store-assigned integer primary key, immutable.
//   - FirstName / LastName: required, non-empty.
//   - Phone: optional contact number.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Clients are hard-deleted: removal cascades over the client's
// appointments inside one transaction (see services.ClientService.Delete),
// so no orphaned rows survive.
type Client struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string    `json:"last_name"  gorm:"type:varchar(100);not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Client.
func (Client) TableName() string { return "clients" }

// Appointment represents a scheduled salon visit belonging to exactly one
// client.
//
// Fields:
//   - ID: store-assigned integer primary key.
//   - ClientID: foreign key to the owning client (indexed); referential
//     integrity is checked at creation time.
//   - StartsAt: appointment date-time, minute precision, naive local
//     semantics (no time zone handling by design).
//   - Description: optional free text.
//   - Status: pending/completed/cancelled, default pending, enforced by a
//     DB constraint.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Appointment struct {
	ID          uint              `json:"id"          gorm:"primaryKey"`
	ClientID    uint              `json:"client_id"   gorm:"not null;index:idx_client_appts,priority:1"`
	StartsAt    time.Time         `json:"starts_at"   gorm:"not null;index:idx_client_appts,priority:2"`
	Description string            `json:"description,omitempty" gorm:"type:text"`
	Status      AppointmentStatus `json:"status"      gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','completed','cancelled')"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Client is the owning customer. The association exists for the FK
	// constraint only; lookups are explicit repo calls, never lazy
	// navigation.
	Client Client `json:"-" gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Appointment.
func (Appointment) TableName() string { return "appointments" }
