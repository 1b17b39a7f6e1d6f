package model

import (
	"strconv"
	"time"

	"github.com/reusedev/ghibli-detox/internal/consts"
)

// Image is one completed detox: both storage keys, the clinic report and
// the visibility flag. Keys are set once at creation and rows are never
// updated in place.
type Image struct {
	Id                 int       `json:"id" gorm:"primaryKey"`
	OriginalImageKey   string    `json:"original_image_key" gorm:"column:original_image_key;type:varchar(150);not null"`
	DetoxifiedImageKey string    `json:"detoxified_image_key" gorm:"column:detoxified_image_key;type:varchar(150);not null"`
	DiagnosisPoints    []string  `json:"diagnosis_points" gorm:"column:diagnosis_points;serializer:json;type:json"`
	TreatmentPoints    []string  `json:"treatment_points" gorm:"column:treatment_points;serializer:json;type:json"`
	ContaminationLevel int       `json:"contamination_level" gorm:"column:contamination_level;type:int"`
	UserId             *int      `json:"user_id" gorm:"column:user_id"`
	Description        string    `json:"description" gorm:"column:description;type:varchar(5000)"`
	IsPublic           bool      `json:"is_public" gorm:"column:is_public;default:true"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (Image) TableName() string {
	return "images"
}

// Deletable reports whether the record is still inside the delete window.
// created_at is the sole basis for the rule.
func (i Image) Deletable(now time.Time) bool {
	return now.Sub(i.CreatedAt) <= consts.DeleteWindow
}

func (i Image) SharePath() string {
	return consts.SharePathPrefix + strconv.Itoa(i.Id)
}
