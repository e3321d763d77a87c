package models

import "github.com/google/uuid"

// DefaultTagColor is used when a tag is created without a color
const DefaultTagColor = "#3b82f6"

// Tag is a user-scoped label; the name is unique per user
type Tag struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_tag_name_user"`
	Name   string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tag_name_user"`
	Color  string    `json:"color" db:"color" gorm:"type:text;not null"`

	ApplicationLinks []ApplicationTag `json:"-" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

// ApplicationTag joins an application and a tag. A pair may appear only once.
type ApplicationTag struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ApplicationID uuid.UUID `json:"applicationId" db:"application_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_tag_unique"`
	TagID         uuid.UUID `json:"tagId" db:"tag_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_tag_unique"`

	Tag *Tag `json:"tag,omitempty" gorm:"foreignKey:TagID;references:ID"`
}
