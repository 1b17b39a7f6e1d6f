package dao

import (
	"errors"

	"github.com/reusedev/ghibli-detox/internal/components/mysql"
	"github.com/reusedev/ghibli-detox/internal/modules/model"
	"gorm.io/gorm"
)

var ErrImageNotFound = errors.New("image not found")

func CreateImage(image *model.Image) error {
	return mysql.DB.Model(&model.Image{}).Create(image).Error
}

func ImageById(id int) (model.Image, error) {
	var image model.Image
	err := mysql.DB.Model(&model.Image{}).Where("id = ?", id).First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Image{}, ErrImageNotFound
	}
	if err != nil {
		return model.Image{}, err
	}
	return image, nil
}

func PublicImages() ([]model.Image, error) {
	var images []model.Image
	err := mysql.DB.Model(&model.Image{}).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func DeleteImage(id int) error {
	ret := mysql.DB.Where("id = ?", id).Delete(&model.Image{})
	if ret.Error != nil {
		return ret.Error
	}
	if ret.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}

func CountImages() (int64, error) {
	var count int64
	err := mysql.DB.Model(&model.Image{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
