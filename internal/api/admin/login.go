package admin

import (
	"net/http"

	"github.com/ZJUSCT/CSRANK/internal/auth"
	"github.com/ZJUSCT/CSRANK/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	if err := auth.VerifyOperator(h.cfg.Admin, req.Username, req.Password); err != nil {
		zap.S().Warnf("failed operator login for %q", req.Username)
		util.Error(c, http.StatusUnauthorized, err)
		return
	}

	token, err := auth.GenerateJWT(req.Username, h.cfg.Auth.JWT.Secret, h.cfg.Auth.JWT.ExpireHours)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err)
		return
	}
	util.Success(c, gin.H{"token": token}, "Login successful")
}
