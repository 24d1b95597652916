// controllers/invoice.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-backend/models"
	"invoice-backend/services"
	"invoice-backend/utils"
)

// InvoiceController handles invoice-number previews and invoice creation.
type InvoiceController struct {
	DB      *gorm.DB
	Numbers *services.InvoiceNumberService
}

// NextNumberInput defines the expected JSON structure for previewing the
// next invoice number
type NextNumberInput struct {
	CompanyName    string `json:"companyName" binding:"required"`
	WarrantyStatus string `json:"warrantyStatus" binding:"required"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an
// invoice. Subtotal, tax and total are accepted verbatim and never checked
// against the product list.
type CreateInvoiceInput struct {
	QueryID         string          `json:"queryId" binding:"required"`
	CustomerName    string          `json:"customerName" binding:"required"`
	CustomerAddress string          `json:"customerAddress" binding:"required"`
	CompanyName     string          `json:"companyName" binding:"required"`
	Products        models.Products `json:"products" binding:"required"`
	WarrantyStatus  string          `json:"warrantyStatus" binding:"required,oneof=Before After"`
	GeneratedDate   time.Time       `json:"generatedDate"`
	Subtotal        float64         `json:"subtotal"`
	TaxAmount       float64         `json:"taxAmount"`
	Total           float64         `json:"total"`
}

// NextNumber allocates and returns the next invoice number for a company
// and warranty status. Note that allocation is not reversible: previewing a
// number consumes it.
func (ic *InvoiceController) NextNumber(c *gin.Context) {
	var input NextNumberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Company name and warranty status are required")
		return
	}

	invoiceNumber, err := ic.Numbers.Next(input.CompanyName, input.WarrantyStatus)
	if err != nil {
		log.Printf("Error getting next invoice number: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoiceNumber": invoiceNumber})
}

// CreateInvoice allocates an invoice number and persists the invoice. A
// uniqueness violation on the number is answered distinctly from other
// storage failures.
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	invoiceNumber, err := ic.Numbers.Next(input.CompanyName, input.WarrantyStatus)
	if err != nil {
		log.Printf("Error generating invoice number: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	invoice := models.Invoice{
		InvoiceNumber:   invoiceNumber,
		QueryID:         input.QueryID,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CompanyName:     input.CompanyName,
		Products:        input.Products,
		WarrantyStatus:  input.WarrantyStatus,
		Subtotal:        input.Subtotal,
		TaxAmount:       input.TaxAmount,
		Total:           input.Total,
		GeneratedDate:   input.GeneratedDate,
	}

	if err := ic.DB.Create(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invoice with this number already exists")
			return
		}
		log.Printf("Error creating invoice: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Invoice created successfully",
		"invoice": gin.H{
			"id":             invoice.ID,
			"invoiceNumber":  invoice.InvoiceNumber,
			"queryId":        invoice.QueryID,
			"customerName":   invoice.CustomerName,
			"companyName":    invoice.CompanyName,
			"warrantyStatus": invoice.WarrantyStatus,
			"total":          invoice.Total,
			"createdAt":      invoice.CreatedAt,
		},
	})
}
