package handler

import (
	"bytes"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/internal/modules/ai/genimage"
	"github.com/reusedev/ghibli-detox/internal/modules/dao"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/model"
	"github.com/reusedev/ghibli-detox/internal/modules/storage/ali"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/request"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
	"github.com/reusedev/ghibli-detox/tools"
)

// Generate runs phase 2: produce the detoxified image, store it with a
// gallery thumbnail and persist the record. Only a fully assembled
// record is ever written.
func Generate(c *gin.Context) {
	form := &request.Generate{}
	err := c.ShouldBindJSON(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err = form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	form.FullWithDefault()

	imageURL, err := genimage.Generate(c.Request.Context(), form.PromptForDalle)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("generate detoxified image")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	data, _, err := tools.GetOnlineImage(c.Request.Context(), imageURL)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("download detoxified image")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	key, err := ali.OssClient.UploadImage(data)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("upload detoxified image")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	uploadThumbnail(key, data)

	image := &model.Image{
		OriginalImageKey:   form.OriginalImageKey,
		DetoxifiedImageKey: key,
		DiagnosisPoints:    form.DiagnosisPoints,
		TreatmentPoints:    treatmentPlan(form.ContaminationLevel),
		ContaminationLevel: form.ContaminationLevel,
		Description:        form.Description,
		IsPublic:           true,
	}
	if err = dao.CreateImage(image); err != nil {
		logs.Logger.Error().Err(err).Msg("create image record")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	url, err := ali.OssClient.URL(key, config.GConfig.URLExpiresDuration())
	if err != nil {
		logs.Logger.Error().Err(err).Str("key", key).Msg("sign detoxified url")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	c.JSON(http.StatusOK, response.Creation{
		Id:                 image.Id,
		TreatmentPoints:    image.TreatmentPoints,
		DetoxifiedImageUrl: url,
		ShareableUrl:       image.SharePath(),
	})
}

// uploadThumbnail is best effort. The gallery falls back to the
// full-size object when the thumbnail is missing.
func uploadThumbnail(key string, data []byte) {
	thumb, err := tools.Thumbnail(bytes.NewReader(data), 0.25, imaging.JPEG)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("key", key).Msg("render thumbnail")
		return
	}
	if err = ali.OssClient.UploadWithKey(ali.ThumbKey(key), thumb); err != nil {
		logs.Logger.Warn().Err(err).Str("key", key).Msg("upload thumbnail")
	}
}
