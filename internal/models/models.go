package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. A user organizes zero or more clubs and
// follows zero or more clubs.
type User struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty" gorm:"type:varchar(32);uniqueIndex"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Club always has exactly one organizer.
type Club struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	OrganizerID string    `json:"organizerId" gorm:"type:varchar(36);index;not null"`
	Registered  bool      `json:"registered" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Organizer *User `json:"-" gorm:"foreignKey:OrganizerID"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Event belongs to exactly one club.
type Event struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date" gorm:"not null"`
	ClubID      string    `json:"clubId" gorm:"type:varchar(36);index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Club *Club `json:"-" gorm:"foreignKey:ClubID"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Following links a user to a club they follow. (UserID, ClubID) is unique.
type Following struct {
	UserID    string    `json:"userId" gorm:"type:varchar(36);primaryKey"`
	ClubID    string    `json:"clubId" gorm:"type:varchar(36);primaryKey;index"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Club *Club `json:"-" gorm:"foreignKey:ClubID"`
}

func (Following) TableName() string { return "club_followings" }

// ClubCategory links a club to a category. (ClubID, CategoryID) is unique.
type ClubCategory struct {
	ClubID     string    `json:"clubId" gorm:"type:varchar(36);primaryKey"`
	CategoryID string    `json:"categoryId" gorm:"type:varchar(36);primaryKey;index"`
	CreatedAt  time.Time `json:"createdAt"`

	Club     *Club     `json:"-" gorm:"foreignKey:ClubID"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

func (ClubCategory) TableName() string { return "club_categories" }

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &Club{}, &Category{}, &Event{}, &Following{}, &ClubCategory{}}
}
