package response

import "github.com/gin-gonic/gin"

// Client-facing error bodies. Upstream error text never lands here;
// handlers log the raw error and answer with the category message.
var (
	ParamError            = gin.H{"code": 10001, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10001, "message": message}
	}

	InternalError            = gin.H{"code": 10002, "message": "internal error"}
	InternalErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10002, "message": message}
	}

	QuotaExceededWithMessage = func(message string) gin.H {
		return gin.H{"code": 10003, "message": message}
	}

	NotFound = gin.H{"code": 10004, "message": "image not found"}

	ForbiddenWithMessage = func(message string) gin.H {
		return gin.H{"code": 10005, "message": message}
	}
)

const (
	MsgNoImage = "no image file uploaded"

	MsgInvalidImage = "Image format error: Please upload a valid JPG, JPEG, PNG, or WEBP file less than 4MB"

	MsgImageTooLarge = "Image is too large. Please upload an image smaller than 4MB."

	MsgProcessingError = "Error processing image"

	MsgDeleteWindowElapsed = "Images can only be deleted within 2 minutes of creation. Please contact support for removal requests."
)
