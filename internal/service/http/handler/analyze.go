package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/modules/ai/vision"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/storage/ali"
	"github.com/reusedev/ghibli-detox/internal/modules/storage/local"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
	"github.com/reusedev/ghibli-detox/tools"
)

const detoxPromptFormat = "Scene: %s \nCreate a realistic photographic image that represents " +
	"what this scene would look like in real life, completely free of any Studio Ghibli " +
	"or anime aesthetics."

func buildDetoxPrompt(description string) string {
	return fmt.Sprintf(detoxPromptFormat, description)
}

// Analyze runs phase 1: validate the upload, store the original, get the
// clinic report from the vision model. Nothing is persisted to the
// database until the client completes phase 2.
func Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(response.MsgNoImage))
		return
	}
	if fileHeader.Size > consts.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(response.MsgImageTooLarge))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	defer file.Close()
	path, err := local.SaveTemp(file, "")
	if err != nil {
		logs.Logger.Error().Err(err).Msg("spool upload")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	defer local.Remove(path)
	data, err := tools.ReadFile(path)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("read upload")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	imgType := tools.DetectImageType(data)
	if imgType == tools.ImageTypeUnknown {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(response.MsgInvalidImage))
		return
	}

	key, err := ali.OssClient.UploadImage(data)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("upload original image")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	report, err := vision.Analyze(c.Request.Context(), data, imgType.Mime())
	if err != nil {
		logs.Logger.Error().Err(err).Str("key", key).Msg("vision analyze")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	url, err := ali.OssClient.URL(key, config.GConfig.URLExpiresDuration())
	if err != nil {
		logs.Logger.Error().Err(err).Str("key", key).Msg("sign original url")
		c.JSON(http.StatusInternalServerError, response.InternalErrorWithMessage(response.MsgProcessingError))
		return
	}
	c.JSON(http.StatusOK, response.PartialAnalysis{
		DiagnosisPoints:    report.DiagnosisPoints,
		ContaminationLevel: report.ContaminationLevel,
		OriginalImageUrl:   url,
		OriginalImageKey:   key,
		Description:        report.Description,
		PromptForDalle:     buildDetoxPrompt(report.Description),
	})
}
