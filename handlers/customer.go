package handlers

import (
	"net/http"

	customerRepo "stitchdesk/database/repository/customer"
	"stitchdesk/models"
	"stitchdesk/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes customer record endpoints.
type CustomerHandler struct {
	Repo customerRepo.CustomerRepository
}

func NewCustomerHandler(repo customerRepo.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

// CreateCustomerHandler handles POST /customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}
	if customer.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Customer name is required", "")
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), customer)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetCustomerByIDHandler handles GET /customers/:id.
func (h *CustomerHandler) GetCustomerByIDHandler(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Customer not found", id)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ListCustomersHandler handles GET /customers.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// UpdateCustomerHandler handles PUT /customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}
	customer.ID = id

	if err := h.Repo.Update(c.Request.Context(), customer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomerHandler handles DELETE /customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
