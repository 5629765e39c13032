package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListCustomerFields feeds the invoice form's customer select: id and
// name only, every customer, name order.
func (s *Server) ListCustomerFields(c *gin.Context) {
	fields, err := s.customerSvc.ListFields(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fields})
}

func (s *Server) ListCustomersTable(c *gin.Context) {
	rows, err := s.customerSvc.ListFiltered(c.Request.Context(), strings.TrimSpace(c.Query("query")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}
