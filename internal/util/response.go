package util

import (
	"errors"
	"net/http"

	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Data:    data,
		Message: message,
	})
}

func Error(c *gin.Context, code int, err interface{}) {
	msg := ""
	switch e := err.(type) {
	case string:
		msg = e
	case error:
		msg = e.Error()
	default:
		msg = "Internal Server Error"
	}

	zap.S().Errorf("API Error: %s", msg)

	c.JSON(code, Response{
		Code:    -1,
		Data:    nil,
		Message: msg,
	})
}

// EngineError maps a scoreboard directive rejection to the right HTTP status
// and sends the error envelope. Every rejection is non-fatal and local to the
// offending directive.
func EngineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scoreboard.ErrTeamNotFound),
		errors.Is(err, scoreboard.ErrProblemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scoreboard.ErrDuplicateTeam):
		status = http.StatusConflict
	case errors.Is(err, scoreboard.ErrStarted),
		errors.Is(err, scoreboard.ErrNotStarted),
		errors.Is(err, scoreboard.ErrEnded),
		errors.Is(err, scoreboard.ErrFrozen),
		errors.Is(err, scoreboard.ErrNotFrozen):
		status = http.StatusConflict
	case errors.Is(err, scoreboard.ErrInvalidOutcome):
		status = http.StatusBadRequest
	}
	Error(c, status, err)
}
