package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) DashboardOverview(c *gin.Context) {
	overview, err := s.dashboardSvc.Overview(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": overview})
}
