package stylist_controller

import (
	"net/http"
	"strings"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/Violet-Essentials/violet-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

var stylist *services.StylistService

func Init(s *services.StylistService) {
	stylist = s
}

// Chat godoc
// @Summary Send a message to the AI stylist
// @Description Exchange one turn with Vi. The reply is always present; inference failures surface as a fixed fallback message, never as an error.
// @Tags Storefront - Stylist
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "User message"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/stylist/chat [post]
func Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Message must not be empty"))
		return
	}

	sessionID, reply := stylist.Send(c.Request.Context(), message)
	_, transcript := stylist.Transcript()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stylist replied", models.ChatResult{
		SessionID: sessionID,
		Reply:     reply,
		Messages:  len(transcript),
	}))
}

// GetMessages godoc
// @Summary Get the stylist transcript
// @Description Full visible conversation log for the session, opening with Vi's greeting
// @Tags Storefront - Stylist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/stylist/messages [get]
func GetMessages(c *gin.Context) {
	sessionID, transcript := stylist.Transcript()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Transcript fetched", gin.H{
		"session_id": sessionID,
		"messages":   transcript,
	}))
}
