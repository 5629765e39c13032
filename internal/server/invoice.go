package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
	"github.com/acmelabs/facture/pkg/db/pagination"
)

// Failed form actions answer 200 with the action's result message; the
// dashboard renders it inline next to the form.
const (
	msgCreateFailed = "Database Error: Failed to Create Invoice."
	msgUpdateFailed = "Database Error: Failed to Update Invoice."
	msgDeleteFailed = "Database Error: Failed to Delete Invoice."
)

func (s *Server) CreateInvoice(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgCreateFailed})
		return
	}

	input, err := invoicedomain.ParseInvoiceInput(c.Request.PostForm)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgCreateFailed})
		return
	}

	if err := s.invoiceSvc.Create(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgCreateFailed})
		return
	}

	c.Redirect(http.StatusSeeOther, invoicedomain.ListingPath)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgUpdateFailed})
		return
	}

	input, err := invoicedomain.ParseInvoiceInput(c.Request.PostForm)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgUpdateFailed})
		return
	}

	if err := s.invoiceSvc.Update(c.Request.Context(), id, input); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgUpdateFailed})
		return
	}

	c.Redirect(http.StatusSeeOther, invoicedomain.ListingPath)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msgDeleteFailed})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()
	query := strings.TrimSpace(c.Query("query"))

	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	// Only the default listing view is cached, under the same path the
	// write actions invalidate. Filtered or paged variants always hit
	// the database.
	cacheable := query == "" && page.Page <= 1 && page.PageSize == 0
	if cacheable {
		if payload, ok := s.pageCache.Get(ctx, invoicedomain.ListingPath); ok {
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	resp, err := s.invoiceSvc.List(ctx, invoicedomain.ListInvoicesRequest{
		Query: query,
		Page:  page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if cacheable {
		s.pageCache.Set(ctx, invoicedomain.ListingPath, payload)
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (s *Server) InvoicePages(c *gin.Context) {
	total, err := s.invoiceSvc.TotalPages(c.Request.Context(), strings.TrimSpace(c.Query("query")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total_pages": total}})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	item, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}
