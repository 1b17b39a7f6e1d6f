package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/internal/modules/cache"
	"github.com/reusedev/ghibli-detox/internal/modules/dao"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/model"
	"github.com/reusedev/ghibli-detox/internal/modules/storage/ali"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
)

const (
	statsCountKey    = "images:count"
	statsCountExpire = 30 * time.Second
)

// GetImage returns one record with freshly signed URLs.
func GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	image, err := dao.ImageById(id)
	if errors.Is(err, dao.ErrImageNotFound) {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	if err != nil {
		logs.Logger.Error().Err(err).Int("id", id).Msg("query image")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	expire := config.GConfig.URLExpiresDuration()
	originalURL, err := ali.OssClient.URL(image.OriginalImageKey, expire)
	if err != nil {
		logs.Logger.Error().Err(err).Int("id", id).Msg("sign original url")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	detoxifiedURL, err := ali.OssClient.URL(image.DetoxifiedImageKey, expire)
	if err != nil {
		logs.Logger.Error().Err(err).Int("id", id).Msg("sign detoxified url")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.AnalysisRecord{
		Id:                 image.Id,
		DiagnosisPoints:    image.DiagnosisPoints,
		TreatmentPoints:    image.TreatmentPoints,
		ContaminationLevel: image.ContaminationLevel,
		OriginalImageUrl:   originalURL,
		DetoxifiedImageUrl: detoxifiedURL,
		Description:        image.Description,
		ShareableUrl:       image.SharePath(),
		CreatedAt:          image.CreatedAt.Format(time.RFC3339),
	})
}

// ListImages returns the public gallery, newest first. Detoxified images
// are served from their thumbnails when one was stored, the full-size
// object otherwise; a record whose URLs cannot be signed is dropped
// rather than failing the whole page.
func ListImages(c *gin.Context) {
	images, err := dao.PublicImages()
	if err != nil {
		logs.Logger.Error().Err(err).Msg("query gallery")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	expire := config.GConfig.URLExpiresDuration()
	items := make([]response.GalleryItem, 0, len(images))
	for _, image := range images {
		originalURL, err := ali.OssClient.URL(image.OriginalImageKey, expire)
		if err != nil {
			logs.Logger.Warn().Err(err).Int("id", image.Id).Msg("sign gallery original url")
			continue
		}
		detoxifiedURL, err := galleryDetoxifiedURL(image, expire)
		if err != nil {
			logs.Logger.Warn().Err(err).Int("id", image.Id).Msg("sign gallery detoxified url")
			continue
		}
		items = append(items, response.GalleryItem{
			Id:                 image.Id,
			OriginalImageUrl:   originalURL,
			DetoxifiedImageUrl: detoxifiedURL,
			ContaminationLevel: image.ContaminationLevel,
		})
	}
	c.JSON(http.StatusOK, items)
}

func galleryDetoxifiedURL(image model.Image, expire time.Duration) (string, error) {
	key := galleryDetoxKey(image.DetoxifiedImageKey, ali.OssClient.Exists)
	return ali.OssClient.URL(key, expire)
}

// galleryDetoxKey picks the thumbnail object only when it is actually
// stored. Presigning never fails for a missing key, so a skipped
// thumbnail upload has to be detected with a head request.
func galleryDetoxKey(key string, exists func(string) (bool, error)) string {
	ok, err := exists(ali.ThumbKey(key))
	if err != nil || !ok {
		return key
	}
	return ali.ThumbKey(key)
}

// DeleteImage removes a record inside its delete window, then cleans the
// stored objects best effort.
func DeleteImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	image, err := dao.ImageById(id)
	if errors.Is(err, dao.ErrImageNotFound) {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	if err != nil {
		logs.Logger.Error().Err(err).Int("id", id).Msg("query image")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	if !image.Deletable(time.Now()) {
		c.JSON(http.StatusForbidden, response.ForbiddenWithMessage(response.MsgDeleteWindowElapsed))
		return
	}
	err = dao.DeleteImage(id)
	if errors.Is(err, dao.ErrImageNotFound) {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	if err != nil {
		logs.Logger.Error().Err(err).Int("id", id).Msg("delete image")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	for _, key := range []string{
		image.OriginalImageKey,
		image.DetoxifiedImageKey,
		ali.ThumbKey(image.DetoxifiedImageKey),
	} {
		if err = ali.OssClient.Delete(key); err != nil {
			logs.Logger.Warn().Err(err).Str("key", key).Msg("delete stored object")
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CountImages reports the total number of processed images. The count is
// cached briefly; the gallery landing page polls it.
func CountImages(c *gin.Context) {
	manager := cache.StatsCacheManager()
	count, ok, err := manager.GetValue(statsCountKey)
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("read count cache")
	}
	if !ok {
		count, err = dao.CountImages()
		if err != nil {
			logs.Logger.Error().Err(err).Msg("count images")
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		if err = manager.SetWithExpiration(statsCountKey, count, statsCountExpire); err != nil {
			logs.Logger.Warn().Err(err).Msg("write count cache")
		}
	}
	c.JSON(http.StatusOK, response.Count{Count: count})
}
